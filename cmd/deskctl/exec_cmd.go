package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newExecCmd(env *appEnv) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "exec [--dir DIR] -- <command...>",
		Short: "Run a command the way the assistant does",
		Long: `Run a command through the same executor the desktop app uses.

Arguments are joined with spaces and split again on whitespace; quotes are
not interpreted. The run is recorded in command history when enabled.`,
		Example: `  deskctl exec -- git status
  deskctl exec --dir ~/src/app -- ls -la`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := env.svc.Commands.ExecuteCommand(strings.Join(args, " "), dir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			if out != "" && !strings.HasSuffix(out, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "working directory (ignored if it does not exist)")
	cmd.Flags().SetInterspersed(false)
	return cmd
}
