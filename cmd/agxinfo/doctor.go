package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/philipturner/agxinfo/internal/gpu"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type doctorResult struct {
	Check  string `json:"check"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose GPU reporting on this machine",
	Long: "Run each step of the GPU query separately and show where it " +
		"breaks: registry access, accelerator match, property reads, and " +
		"clock table coverage. Host details are included for bug reports.",
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var (
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func statusLabel(ok bool) string {
	label, style := "OK  ", styleOK
	if !ok {
		label, style = "FAIL", styleFail
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return label
	}
	return style.Render(label)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	results := append(hostChecks(), acceleratorChecks()...)

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(cmd.OutOrStdout(), results)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	var failed int
	for _, r := range results {
		detail := r.Detail
		if !r.OK {
			detail = r.Error
			failed++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", statusLabel(r.OK), r.Check, detail)
	}
	w.Flush()

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

// hostChecks reports machine facts. These never gate the GPU query;
// they exist so a pasted doctor run identifies the hardware.
func hostChecks() []doctorResult {
	var results []doctorResult

	if model, err := machineModel(); err == nil {
		results = append(results, doctorResult{Check: "machine", OK: true, Detail: model})
	} else {
		results = append(results, doctorResult{Check: "machine", Error: err.Error()})
	}

	if hostStat, err := host.Info(); err == nil {
		results = append(results, doctorResult{
			Check:  "os",
			OK:     true,
			Detail: fmt.Sprintf("%s %s (%s)", hostStat.Platform, hostStat.PlatformVersion, hostStat.KernelArch),
		})
	} else {
		results = append(results, doctorResult{Check: "os", Error: err.Error()})
	}

	cpuDetail := cpuBrand()
	if cores, err := cpu.Counts(false); err == nil {
		cpuDetail = fmt.Sprintf("%s, %d cores", cpuDetail, cores)
	}
	results = append(results, doctorResult{Check: "cpu", OK: true, Detail: cpuDetail})

	if vmStat, err := mem.VirtualMemory(); err == nil {
		results = append(results, doctorResult{
			Check:  "memory",
			OK:     true,
			Detail: fmt.Sprintf("%.0f GB", float64(vmStat.Total)/(1024*1024*1024)),
		})
	} else {
		results = append(results, doctorResult{Check: "memory", Error: err.Error()})
	}

	return results
}

// acceleratorChecks walks the GPU query step by step, recording one
// result per step so the first failure is easy to spot.
func acceleratorChecks() []doctorResult {
	reg, err := openRegistry()
	if err != nil {
		return []doctorResult{{
			Check: "registry",
			Error: fmt.Sprintf("%v (%s/%s)", err, runtime.GOOS, runtime.GOARCH),
		}}
	}
	results := []doctorResult{{Check: "registry", OK: true, Detail: "I/O Registry reachable"}}

	entry, err := gpu.Locate(reg)
	if err != nil {
		return append(results, doctorResult{Check: "accelerator", Error: err.Error()})
	}
	defer entry.Release()
	results = append(results, doctorResult{
		Check: "accelerator", OK: true,
		Detail: fmt.Sprintf("one %s entry", gpu.AcceleratorClass),
	})

	if cores, err := gpu.CoreCount(entry); err == nil {
		results = append(results, doctorResult{
			Check: "core count", OK: true, Detail: fmt.Sprintf("%d cores", cores),
		})
	} else {
		results = append(results, doctorResult{Check: "core count", Error: err.Error()})
	}

	model, err := gpu.Model(entry)
	if err != nil {
		return append(results, doctorResult{Check: "model", Error: err.Error()})
	}
	results = append(results, doctorResult{Check: "model", OK: true, Detail: model})

	if mhz, known := gpu.MaxClockSpeedMHz(model); known {
		results = append(results, doctorResult{
			Check: "clock table", OK: true, Detail: fmt.Sprintf("%d MHz", mhz),
		})
	} else {
		results = append(results, doctorResult{
			Check: "clock table",
			Error: fmt.Sprintf("no entry for %q, report will show 0 MHz", model),
		})
	}

	return results
}
