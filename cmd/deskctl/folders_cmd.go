package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"deskpilot/internal/models"
)

func newFoldersCmd(env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "List and delete chat folders",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List folders, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printFolders(cmd.OutOrStdout(), env.svc.Folders.GetAllFolders())
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a folder by ID",
			Long: `Delete a folder by ID.

Child folders are left in place and keep pointing at the deleted parent.`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := env.svc.Folders.DeleteFolder(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted folder %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func printFolders(out io.Writer, folders []models.Folder) error {
	if len(folders) == 0 {
		fmt.Fprintln(out, "No folders")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPARENT\tUPDATED")
	for _, f := range folders {
		parent := "-"
		if f.ParentID != nil {
			parent = *f.ParentID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, f.Name, parent, formatMillis(f.Timestamp))
	}
	return w.Flush()
}
