package main

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/suryansh-23/dbglog/internal/ptywrap"
)

type runFlags struct {
	category string
	color    string
	time     bool
}

func newRunCmd(state *appState) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run -- <cmd...>",
		Short: "Run a command and re-emit each output line under a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash == -1 || len(args) <= dash {
				return errors.New("run requires a command after --")
			}
			argv := args[dash:]
			entry, err := buildEntry(flags.category, flags.color, flags.time)
			if err != nil {
				return err
			}
			child := exec.Command(argv[0], argv[1:]...)
			child.Env = append(os.Environ(), "DBGLOG_WRAPPED=1")

			var input io.Reader
			if term.IsTerminal(int(os.Stdin.Fd())) {
				input = os.Stdin
			}
			relay := ptywrap.NewLineWriter(state.logger, entry, !state.color)
			code, err := ptywrap.RunCommand(cmd.Context(), child, ptywrap.Options{
				Input:  input,
				Output: relay,
				Log:    state.log,
			})
			if err != nil {
				return err
			}
			if code != 0 {
				return &exitCodeError{code: code}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.category, "category", "c", "default", "category for relayed lines")
	cmd.Flags().StringVar(&flags.color, "color", "", "color for relayed lines")
	cmd.Flags().BoolVar(&flags.time, "time", false, "print the time before every relayed line")
	return cmd
}
