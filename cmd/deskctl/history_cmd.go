package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHistoryCmd(env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear command history",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent command runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := env.svc.Commands.ListCommandHistory(limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No command history")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWHEN\tSTATUS\tDURATION\tCOMMAND")
			for _, r := range runs {
				status := "ok"
				if !r.Succeeded {
					status = r.ErrorKind
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%dms\t%s\n", r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), status, r.DurationMs, ellipsize(r.Command, 60))
			}
			return w.Flush()
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show (0 for all)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded command runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.svc.Commands.ClearCommandHistory(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Command history cleared")
			return nil
		},
	}

	cmd.AddCommand(list, clearCmd)
	return cmd
}
