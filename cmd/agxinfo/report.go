package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/philipturner/agxinfo/internal/gpu"
	"github.com/philipturner/agxinfo/internal/ioreg"
	"github.com/spf13/cobra"
)

// openRegistry is swapped out in tests.
var openRegistry = ioreg.Open

func runReport(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	info, err := gpu.Query(reg)
	if err != nil {
		return err
	}
	slog.Debug("accelerator queried",
		"model", info.Model,
		"cores", info.CoreCount,
		"mhz", info.ClockSpeedMHz)

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(cmd.OutOrStdout(), info)
	}

	writeReport(cmd.OutOrStdout(), info)
	return nil
}

// writeReport prints the two report lines. An unknown clock speed prints
// as 0 rather than dropping the line, so the output shape never varies.
func writeReport(w io.Writer, info gpu.Info) {
	fmt.Fprintf(w, "The GPU has %d cores.\n", info.CoreCount)
	fmt.Fprintf(w, "The GPU runs at %d MHz.\n", info.ClockSpeedMHz)
}
