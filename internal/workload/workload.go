// Package workload burns CPU on a large sort so there is something to time.
package workload

import (
	"math"
	"slices"
	"time"

	"go.uber.org/zap"

	"peoplereport/internal/config"
)

// DefaultSize is the number of integers sorted by default.
const DefaultSize = config.DefaultWorkloadSize

// MaxSize is the largest n whose values fit in an int32.
const MaxSize = math.MaxInt32

// Fill returns n integers in strictly descending order: values[i] = n - i.
// Values are 32-bit; n is clamped to [0, MaxSize].
func Fill(n int) []int32 {
	n = min(max(n, 0), MaxSize)
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(n - i)
	}
	return values
}

// Sort sorts values ascending in place.
func Sort(values []int32) {
	slices.Sort(values)
}

// Simulate fills and sorts n integers and returns the sorted values together with
// the wall time spent, measured from before allocation to after the sort.
func Simulate(n int) ([]int32, time.Duration) {
	start := time.Now()
	values := Fill(n)
	Sort(values)
	return values, time.Since(start)
}

// Run simulates a workload of n integers, discards the result and logs the
// elapsed time in milliseconds.
func Run(logger *zap.Logger, n int) time.Duration {
	_, elapsed := Simulate(n)
	logger.Info("Processing finished",
		zap.Int("size", n),
		zap.Int64("elapsed_ms", elapsed.Milliseconds()))
	return elapsed
}
