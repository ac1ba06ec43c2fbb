package main

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/suryansh-23/dbglog/internal/category"
	"github.com/suryansh-23/dbglog/internal/config"
	"github.com/suryansh-23/dbglog/internal/debug"
)

type rootFlags struct {
	cfgPath string
	verbose bool
	noColor bool
	off     bool
	enable  string
	disable string
	noHints bool
}

func newRootCmd(state *appState) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:          "dbglog",
		Short:        "Categorized debug logging",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolvedPath, err := resolveConfigPath(flags.cfgPath)
			if err != nil {
				return err
			}
			cfg, found, err := config.Load(resolvedPath)
			if err != nil {
				return err
			}
			applyOverrides(&cfg, flags)
			state.cfg = cfg
			state.cfgFound = found
			state.cfgPath = resolvedPath
			state.log = newDiagnostics(cmd.ErrOrStderr(), cfg.Debug.Verbose)
			state.log.Debug("config loaded", "path", resolvedPath, "found", found)

			var out io.Writer = cfg.Writer()
			if state.out != nil {
				out = state.out
			}
			state.color = colorAllowed(cfg, out)
			state.logger = debug.New(out,
				debug.WithEnabled(cfg.Debug.Enabled),
				debug.WithColor(state.color),
			)
			if !debug.Compiled {
				state.log.Warn("debug output compiled out (nodebuglog build)")
			}
			if err := applyCategoryFlags(category.Get(), flags.enable, flags.disable); err != nil {
				return err
			}
			if !found && !flags.noHints && cmd.Name() != "init" && cmd.Name() != "reset" {
				state.log.Debug("no config found; run `dbglog init` to create one")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			category.Destroy()
			if state.log != nil {
				state.log.Debug("category registry released")
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.cfgPath, "config", "", "config file path")
	pf.BoolVar(&flags.verbose, "debug", false, "print tool diagnostics to stderr")
	pf.BoolVar(&flags.noColor, "no-color", false, "never write color escapes")
	pf.BoolVar(&flags.off, "off", false, "turn all debug output off")
	pf.StringVar(&flags.enable, "enable", "", "comma-separated categories to enable")
	pf.StringVar(&flags.disable, "disable", "", "comma-separated categories to disable")
	pf.BoolVar(&flags.noHints, "no-init-hints", false, "suppress init guidance")

	rootCmd.AddCommand(newEmitCmd(state))
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newColorsCmd(state))
	rootCmd.AddCommand(newRunCmd(state))
	rootCmd.AddCommand(newInitCmd(&flags.cfgPath))
	rootCmd.AddCommand(newResetCmd(&flags.cfgPath))
	rootCmd.AddCommand(newDoctorCmd(state))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func applyOverrides(cfg *config.Config, flags rootFlags) {
	if flags.verbose {
		cfg.Debug.Verbose = true
	}
	if flags.noColor {
		cfg.Color = false
	}
	if flags.off {
		cfg.Debug.Enabled = false
	}
}

// applyCategoryFlags disables first, then enables, so a category named in
// both lists ends up enabled.
func applyCategoryFlags(reg *category.Registry, enable, disable string) error {
	disabled, err := category.ParseList(disable)
	if err != nil {
		return fmt.Errorf("--disable: %w", err)
	}
	enabled, err := category.ParseList(enable)
	if err != nil {
		return fmt.Errorf("--enable: %w", err)
	}
	for _, c := range disabled {
		reg.Disable(c)
	}
	for _, c := range enabled {
		reg.Enable(c)
	}
	return nil
}

func newDiagnostics(w io.Writer, verbose bool) *clog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := clog.WarnLevel
	if verbose {
		level = clog.DebugLevel
	}
	return clog.NewWithOptions(w, clog.Options{
		Prefix: "dbglog",
		Level:  level,
	})
}
