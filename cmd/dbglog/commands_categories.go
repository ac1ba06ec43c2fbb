package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/dbglog/internal/category"
	"github.com/suryansh-23/dbglog/internal/ui"
)

func newCategoriesCmd() *cobra.Command {
	var namesOnly bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories and their state for this invocation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := category.Get()
			out := cmd.OutOrStdout()
			if namesOnly {
				for _, c := range reg.Enabled() {
					fmt.Fprintln(out, c)
				}
				return nil
			}
			fmt.Fprintln(out, ui.CategoryTable(reg.Snapshot()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&namesOnly, "enabled", false, "print only the names of enabled categories")
	return cmd
}

func newColorsCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Show the supported message colors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), ui.ColorSwatch(state.color))
		},
	}
}
