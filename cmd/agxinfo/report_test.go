package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/philipturner/agxinfo/internal/gpu"
	"github.com/philipturner/agxinfo/internal/ioreg"
)

// Tests run the real root command with openRegistry swapped for a fake,
// so everything from flag parsing to output formatting is exercised.

func fakeRegistry(entries ...*ioreg.FakeEntry) *ioreg.FakeRegistry {
	return &ioreg.FakeRegistry{
		Entries: map[string][]*ioreg.FakeEntry{gpu.AcceleratorClass: entries},
	}
}

func runRoot(t *testing.T, reg ioreg.Registry, args ...string) (string, error) {
	t.Helper()

	orig := openRegistry
	openRegistry = func() (ioreg.Registry, error) { return reg, nil }
	defer func() { openRegistry = orig }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.PersistentFlags().Set("json", "false")
		rootCmd.PersistentFlags().Set("verbose", "false")
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

func TestReport(t *testing.T) {
	entry := ioreg.NewFakeEntry(map[string]any{
		"gpu-core-count": int64(10),
		"model":          "Apple M2",
	})

	out, err := runRoot(t, fakeRegistry(entry))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "The GPU has 10 cores.\nThe GPU runs at 1398 MHz.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if entry.Released != 1 {
		t.Errorf("expected entry released once, got %d", entry.Released)
	}
}

func TestReportJSON(t *testing.T) {
	entry := ioreg.NewFakeEntry(map[string]any{
		"gpu-core-count": int64(38),
		"model":          "Apple M2 Max",
	})

	out, err := runRoot(t, fakeRegistry(entry), "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var info gpu.Info
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if info.Model != "Apple M2 Max" {
		t.Errorf("Model = %q, want %q", info.Model, "Apple M2 Max")
	}
	if info.CoreCount != 38 {
		t.Errorf("CoreCount = %d, want 38", info.CoreCount)
	}
	if info.ClockSpeedMHz != 1398 {
		t.Errorf("ClockSpeedMHz = %d, want 1398", info.ClockSpeedMHz)
	}
}

func TestReportNoAccelerator(t *testing.T) {
	out, err := runRoot(t, fakeRegistry())
	if !errors.Is(err, gpu.ErrNoAccelerator) {
		t.Errorf("expected ErrNoAccelerator, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output on failure, got %q", out)
	}
}

func TestReportMultipleAccelerators(t *testing.T) {
	a := ioreg.NewFakeEntry(map[string]any{"model": "Apple M1"})
	b := ioreg.NewFakeEntry(map[string]any{"model": "Apple M1"})

	out, err := runRoot(t, fakeRegistry(a, b))
	if !errors.Is(err, gpu.ErrMultipleAccelerators) {
		t.Errorf("expected ErrMultipleAccelerators, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output on failure, got %q", out)
	}
}

func TestReportRegistryUnavailable(t *testing.T) {
	orig := openRegistry
	openRegistry = func() (ioreg.Registry, error) { return nil, ioreg.ErrUnsupported }
	defer func() { openRegistry = orig }()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	if !errors.Is(err, ioreg.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on failure, got %q", out.String())
	}
}

func TestReportWrongCoreCountType(t *testing.T) {
	entry := ioreg.NewFakeEntry(map[string]any{
		"gpu-core-count": int32(10),
		"model":          "Apple M2",
	})

	out, err := runRoot(t, fakeRegistry(entry))
	if !errors.Is(err, ioreg.ErrPropertyType) {
		t.Errorf("expected ErrPropertyType, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output on failure, got %q", out)
	}
}

func TestWriteReportUnknownClock(t *testing.T) {
	var buf strings.Builder
	writeReport(&buf, gpu.Info{CoreCount: 7})

	want := "The GPU has 7 cores.\nThe GPU runs at 0 MHz.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
