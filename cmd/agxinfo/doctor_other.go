//go:build !darwin

package main

import "errors"

func machineModel() (string, error) {
	return "", errors.New("machine model is only readable on macOS")
}

func cpuBrand() string {
	return "unknown"
}
