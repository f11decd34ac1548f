package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"peoplereport/internal/person"
)

// execute runs the root command in a temp workspace with a small workload.
// An empty logFile means app.log inside the workspace.
func execute(t *testing.T, logFile string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	ws := t.TempDir()
	if logFile == "" {
		logFile = filepath.Join(ws, "app.log")
	}
	t.Setenv("PEOPLEREPORT_LOG_FILE", logFile)
	t.Setenv("PEOPLEREPORT_LOG_LEVEL", "")
	t.Setenv("PEOPLEREPORT_WORKLOAD_SIZE", "1000")

	origPath, origClock := configPath, clock
	configPath = filepath.Join(ws, "peoplereport.yaml")
	clock = func() time.Time { return person.Date(2025, time.January, 1) }
	defer func() { configPath, clock = origPath, origClock }()

	if args == nil {
		// nil makes cobra fall back to os.Args.
		args = []string{}
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_EndToEnd(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")
	stdout, stderr, err := execute(t, logFile)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "Отфильтрованные данные:(>18)\nName: Alisa, Address: alisa@example.com\n"))
	assert.Contains(t, stdout, "Люди, родившиеся в високосный год:\nAlisa, alisa@example.com\nDima, dima@example.com\n")
	assert.Contains(t, stdout, "Elderly:\n  Diana, diana@example.com\n")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	for _, out := range []string{string(data), stderr} {
		assert.Contains(t, out, "Average age")
		assert.Contains(t, out, "Processing finished")
		assert.Contains(t, out, "elapsed_ms")
		assert.Contains(t, out, "run_id")
	}
}

func TestRootCmd_UnopenableLogFileStillReports(t *testing.T) {
	// A directory cannot be opened as the log file.
	stdout, stderr, err := execute(t, t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, stderr, "Logger setup failed")
	assert.Contains(t, stdout, "Группировка людей по возрастным группам:")
	assert.Contains(t, stderr, "Processing finished")
}

func TestRootCmd_BadConfigFallsBackToDefaults(t *testing.T) {
	ws := t.TempDir()
	path := filepath.Join(ws, "peoplereport.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [broken"), 0644))

	origPath := configPath
	configPath = path
	defer func() { configPath = origPath }()
	// Defaults point at ./app.log, so run from the temp workspace.
	origWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(ws))
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	t.Setenv("PEOPLEREPORT_LOG_FILE", "")
	t.Setenv("PEOPLEREPORT_LOG_LEVEL", "")
	t.Setenv("PEOPLEREPORT_WORKLOAD_SIZE", "")

	var errOut bytes.Buffer
	cmd := rootCmd
	cmd.SetErr(&errOut)
	defer cmd.SetErr(nil)

	require.NoError(t, setup(cmd, nil))
	defer sink.Close()

	assert.Equal(t, "app.log", cfg.Logging.File)
	assert.Contains(t, errOut.String(), "Config rejected, using defaults")
	assert.FileExists(t, filepath.Join(ws, "app.log"))
}

func TestRootCmd_IgnoresArgs(t *testing.T) {
	plain, _, err := execute(t, "")
	require.NoError(t, err)

	for _, args := range [][]string{{"extra"}, {"one", "two"}, {"--unknown-flag", "x"}} {
		stdout, stderr, err := execute(t, "", args...)

		require.NoError(t, err, "args %v", args)
		assert.Equal(t, plain, stdout, "args %v", args)
		assert.Contains(t, stderr, "Processing finished", "args %v", args)
	}
}

func TestGuard(t *testing.T) {
	t.Run("success logs nothing", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		err := guard(zap.New(core), func() error { return nil })

		assert.NoError(t, err)
		assert.Zero(t, logs.Len())
	})

	t.Run("error is logged at the highest non-fatal level", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		err := guard(zap.New(core), func() error { return errors.New("boom") })

		require.Error(t, err)
		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.DPanicLevel, entries[0].Level)
		assert.Equal(t, "boom", entries[0].ContextMap()["error"])
		assert.NotEmpty(t, entries[0].ContextMap()["stack"])
	})

	t.Run("panic becomes an error", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		err := guard(zap.New(core), func() error { panic("index out of range") })

		require.Error(t, err)
		assert.Contains(t, err.Error(), "index out of range")
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.DPanicLevel, logs.All()[0].Level)
	})
}
