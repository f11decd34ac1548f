package config

import "strconv"

// DefaultWorkloadSize is the number of integers the workload simulator sorts.
const DefaultWorkloadSize = 100_000_000

// WorkloadConfig configures the workload simulator.
type WorkloadConfig struct {
	Size int `yaml:"size" json:"size"`
}

func parseSize(s string) (int, error) {
	return strconv.Atoi(s)
}
