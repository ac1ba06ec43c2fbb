package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/dbglog/internal/category"
	"github.com/suryansh-23/dbglog/internal/debug"
)

func newDoctorCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Print environment and configuration diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.OutOrStdout(), state)
		},
	}
}

func runDoctor(w io.Writer, state *appState) error {
	info := readEnvInfo()
	fmt.Fprintf(w, "platform=%s\n", info.platform)
	fmt.Fprintf(w, "shell=%s\n", info.shell)
	fmt.Fprintf(w, "term=%s\n", info.term)
	fmt.Fprintf(w, "stdout_tty=%t\n", info.stdoutTTY)
	fmt.Fprintf(w, "stderr_tty=%t\n", info.stderrTTY)
	fmt.Fprintf(w, "size=%dx%d\n", info.cols, info.rows)
	fmt.Fprintf(w, "config_path=%s\n", state.cfgPath)
	fmt.Fprintf(w, "config_found=%t\n", state.cfgFound)
	fmt.Fprintf(w, "output=%s\n", state.cfg.Output)
	fmt.Fprintf(w, "color=%t\n", state.color)
	fmt.Fprintf(w, "timestamps=%t\n", state.cfg.Timestamps)
	fmt.Fprintf(w, "debug_enabled=%t\n", state.cfg.Debug.Enabled)
	fmt.Fprintf(w, "compiled=%t\n", debug.Compiled)
	fmt.Fprintf(w, "categories_enabled=%s\n", joinCategories(category.Get().Enabled()))
	return nil
}

func joinCategories(cats []category.Category) string {
	if len(cats) == 0 {
		return "none"
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}
