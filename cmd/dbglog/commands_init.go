package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/suryansh-23/dbglog/internal/config"
	"github.com/suryansh-23/dbglog/internal/ui"
)

func newInitCmd(cfgPath *string) *cobra.Command {
	var useDefaults bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(*cfgPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			cfg := config.DefaultConfig()
			if useDefaults {
				if exists(path) {
					fmt.Fprintf(out, "Config exists, overwriting: %s\n", path)
				}
				if err := config.Write(path, cfg); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote config to %s\n", path)
				return nil
			}
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("init requires --default when not running interactively")
			}

			output := string(cfg.Output)
			color := cfg.Color
			timestamps := cfg.Timestamps
			overwrite := false

			form := huh.NewForm(
				huh.NewGroup(huh.NewNote().Title("Environment").Description(envSummary()).Next(true)),
				huh.NewGroup(
					huh.NewConfirm().Title("Config exists. Overwrite?").Value(&overwrite),
				).WithHideFunc(func() bool { return !exists(path) }),
				huh.NewGroup(
					huh.NewSelect[string]().Title("Write debug lines to").Value(&output).Options(
						huh.NewOption("stderr (default)", string(config.OutputStderr)),
						huh.NewOption("stdout", string(config.OutputStdout)),
					),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Use colors when writing to a terminal?").Value(&color),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Print timestamps by default?").Value(&timestamps),
				),
			).WithTheme(ui.Theme())

			if err := form.Run(); err != nil {
				return err
			}
			if exists(path) && !overwrite {
				return errors.New("init cancelled")
			}

			cfg.Output = config.Output(output)
			cfg.Color = color
			cfg.Timestamps = timestamps
			if err := config.Write(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote config to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useDefaults, "default", false, "write default config without prompts")
	return cmd
}

func newResetCmd(cfgPath *string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(*cfgPath)
			if err != nil {
				return err
			}
			if !yes {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return errors.New("reset requires --yes when not running interactively")
				}
				confirm := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().Title("Remove dbglog config?").Value(&confirm),
				)).WithTheme(ui.Theme())
				if err := form.Run(); err != nil {
					return err
				}
				if !confirm {
					return errors.New("reset cancelled")
				}
			}
			removed, err := config.Remove(path)
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed config: %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config not found: %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation prompt")
	return cmd
}
