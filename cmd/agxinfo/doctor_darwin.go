//go:build darwin

package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// machineModel returns the Mac model identifier (e.g. "Mac14,6") using
// sysctl, avoiding the need to fork system_profiler and parse its output.
func machineModel() (string, error) {
	model, err := unix.Sysctl("hw.model")
	if err != nil {
		return "", fmt.Errorf("sysctl hw.model: %w", err)
	}
	return model, nil
}

// cpuBrand returns the marketing name of the CPU (e.g. "Apple M2 Max").
func cpuBrand() string {
	brand, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return "unknown"
	}
	return brand
}
