package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/dbglog/internal/ansi"
	"github.com/suryansh-23/dbglog/internal/category"
	"github.com/suryansh-23/dbglog/internal/debug"
)

type emitFlags struct {
	category string
	color    string
	time     bool
	format   string
}

func newEmitCmd(state *appState) *cobra.Command {
	var flags emitFlags
	cmd := &cobra.Command{
		Use:   "emit [args...]",
		Short: "Print a debug message if its category is enabled",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("time") {
				flags.time = state.cfg.Timestamps
			}
			entry, err := buildEntry(flags.category, flags.color, flags.time)
			if err != nil {
				return err
			}
			if !state.logger.Enabled(entry.Category) {
				state.log.Debug("message suppressed", "category", entry.Category)
				return nil
			}
			state.logger.Emit(entry, renderMessage(flags.format, args))
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.category, "category", "c", category.Default.String(), "message category")
	cmd.Flags().StringVar(&flags.color, "color", "", "message color (see `dbglog colors`)")
	cmd.Flags().BoolVar(&flags.time, "time", false, "print the call time before the message")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "printf-style format applied to args")
	return cmd
}

func buildEntry(categoryName, colorName string, showTime bool) (debug.Entry, error) {
	c, err := category.Parse(categoryName)
	if err != nil {
		return debug.Entry{}, err
	}
	entry := debug.Entry{Category: c, ShowTime: showTime}
	if strings.TrimSpace(colorName) != "" {
		color, err := ansi.ParseColor(colorName)
		if err != nil {
			return debug.Entry{}, err
		}
		entry.Color = color
		entry.HasColor = true
	}
	return entry, nil
}

func renderMessage(format string, args []string) string {
	if format == "" {
		return strings.Join(args, " ")
	}
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = arg
	}
	return fmt.Sprintf(format, values...)
}
