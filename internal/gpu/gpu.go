// Package gpu reports static facts about the Apple silicon GPU.
//
// The GPU is located through the AGXAccelerator service class, which is
// deliberately narrower than IOGPU: it matches only the silicon-specific
// accelerator, never generic or virtual GPU classes. Supported hardware
// carries exactly one such entry; any other cardinality is an error.
package gpu

import (
	"errors"
	"fmt"

	"github.com/philipturner/agxinfo/internal/ioreg"
)

const (
	// AcceleratorClass is the service class of the Apple silicon GPU
	// driver stack (IOGPU -> AGXAccelerator -> AGXFamilyAccelerator).
	AcceleratorClass = "AGXAccelerator"

	coreCountKey = "gpu-core-count"
	modelKey     = "model"
)

var (
	// ErrNoAccelerator is returned when no entry matches AcceleratorClass.
	ErrNoAccelerator = errors.New("no Apple GPU accelerator entry found")

	// ErrMultipleAccelerators is returned when more than one entry matches.
	ErrMultipleAccelerators = errors.New("multiple GPU accelerator entries found")
)

// Info holds the facts reported for the GPU.
type Info struct {
	Model           string `json:"model"`
	CoreCount       int64  `json:"core_count"`
	ClockSpeedMHz   int64  `json:"clock_speed_mhz"`
	ClockSpeedKnown bool   `json:"clock_speed_known"`
}

// Query locates the accelerator and reads everything Info carries.
// Each call walks the registry anew; callers needing cheap repeated
// access should hold on to the result themselves.
func Query(reg ioreg.Registry) (Info, error) {
	entry, err := Locate(reg)
	if err != nil {
		return Info{}, err
	}
	defer entry.Release()

	cores, err := CoreCount(entry)
	if err != nil {
		return Info{}, err
	}
	model, err := Model(entry)
	if err != nil {
		return Info{}, err
	}
	mhz, known := MaxClockSpeedMHz(model)

	return Info{
		Model:           model,
		CoreCount:       cores,
		ClockSpeedMHz:   mhz,
		ClockSpeedKnown: known,
	}, nil
}

// Locate returns the unique accelerator entry. The caller owns the
// returned handle and must release it.
func Locate(reg ioreg.Registry) (ioreg.Entry, error) {
	entries, err := reg.MatchingEntries(AcceleratorClass)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", AcceleratorClass, err)
	}
	switch len(entries) {
	case 1:
		return entries[0], nil
	case 0:
		return nil, ErrNoAccelerator
	default:
		for _, e := range entries {
			e.Release()
		}
		return nil, fmt.Errorf("%w: %d matched", ErrMultipleAccelerators, len(entries))
	}
}

// CoreCount reads the number of GPU execution cores.
func CoreCount(entry ioreg.Entry) (int64, error) {
	count, err := entry.Int64Property(ioreg.ServicePlane, coreCountKey)
	if err != nil {
		return 0, fmt.Errorf("reading core count: %w", err)
	}
	return count, nil
}

// Model reads the chip variant string, e.g. "Apple M1 Max".
func Model(entry ioreg.Entry) (string, error) {
	model, err := entry.StringProperty(ioreg.ServicePlane, modelKey)
	if err != nil {
		return "", fmt.Errorf("reading model: %w", err)
	}
	return model, nil
}
