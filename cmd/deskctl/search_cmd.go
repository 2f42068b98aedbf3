package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd(env *appEnv) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "search <query...>",
		Short:   "Run a web search with the Brave key from settings",
		Example: `  deskctl search golang generics -n 3`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := env.svc.Search.WebSearch(strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No results")
				return nil
			}
			for i, r := range results {
				fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, r.Title, r.URL)
				if r.Description != "" {
					fmt.Fprintf(out, "   %s\n", r.Description)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results (default from config)")
	return cmd
}
