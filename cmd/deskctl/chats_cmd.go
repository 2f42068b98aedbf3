package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"deskpilot/internal/models"
)

func newChatsCmd(env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "List, search and delete saved chats",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List chats, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printChats(cmd.OutOrStdout(), env.svc.Chats.GetAllChats())
			},
		},
		&cobra.Command{
			Use:     "search <query>",
			Short:   "Fuzzy-search chat titles",
			Example: `  deskctl chats search docker`,
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printChats(cmd.OutOrStdout(), env.svc.Chats.SearchChats(strings.Join(args, " ")))
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a chat by ID",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := env.svc.Chats.DeleteChat(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted chat %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func printChats(out io.Writer, chats []models.SavedChat) error {
	if len(chats) == 0 {
		fmt.Fprintln(out, "No chats")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUPDATED\tMODE\tMESSAGES\tTITLE")
	for _, c := range chats {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", c.ID, formatMillis(c.Timestamp), c.Mode, len(c.Messages), ellipsize(c.TitleOrPreview(), 60))
	}
	return w.Flush()
}

func formatMillis(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

func ellipsize(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
