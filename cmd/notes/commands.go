package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"example.com/notes-app/internal/notes"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, nil, func(_ context.Context, c *notes.Controller) error {
			v := c.View()
			out := cmd.OutOrStdout()
			if len(v.Notes) == 0 {
				fmt.Fprintln(out, "No notes yet.")
				return nil
			}
			for _, n := range v.Notes {
				if n.Title != "" {
					fmt.Fprintf(out, "%s  %s: %s\n", n.ID, n.Title, n.Preview())
				} else {
					fmt.Fprintf(out, "%s  %s\n", n.ID, n.Preview())
				}
			}
			return nil
		})
	},
}

var addTitle string

var addCmd = &cobra.Command{
	Use:   "add [note]",
	Short: "Save a new note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, nil, func(ctx context.Context, c *notes.Controller) error {
			c.SetDraft(addTitle, args[0])
			n, err := c.Create(ctx, addTitle, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note saved: %s\n", n.ID)
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, nil, func(_ context.Context, c *notes.Controller) error {
			n, ok := c.Note(args[0])
			if !ok {
				return fmt.Errorf("note %s not found", args[0])
			}
			c.Select(n, false)
			printNote(cmd, *c.View().Selected)
			return nil
		})
	},
}

var (
	editTitle string
	editBody  string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change the title and body of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, nil, func(ctx context.Context, c *notes.Controller) error {
			n, ok := c.Note(args[0])
			if !ok {
				return fmt.Errorf("note %s not found", args[0])
			}
			c.Select(n, true)

			title, body := n.Title, n.Body
			if cmd.Flags().Changed("title") {
				title = editTitle
			}
			if cmd.Flags().Changed("body") {
				body = editBody
			}
			if err := c.Update(ctx, n.ID, title, body); err != nil {
				return err
			}

			updated, ok := c.Note(n.ID)
			if !ok {
				return fmt.Errorf("note %s not found after update", n.ID)
			}
			printNote(cmd, updated)
			return nil
		})
	},
}

var assumeYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note. There is no undo.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var confirm notes.Confirmer = promptConfirmer{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
		if assumeYes {
			confirm = notes.ConfirmFunc(func(context.Context, string) bool { return true })
		}
		return withController(cmd, confirm, func(ctx context.Context, c *notes.Controller) error {
			err := c.Remove(ctx, args[0])
			if errors.Is(err, notes.ErrNotConfirmed) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			return err
		})
	},
}

func printNote(cmd *cobra.Command, n notes.Note) {
	out := cmd.OutOrStdout()
	if n.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", n.Title)
	}
	fmt.Fprintf(out, "Created: %s\n", n.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(out, "Note:\n%s\n", n.Body)
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")

	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editBody, "body", "b", "", "New note text")

	deleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Delete without asking")

	rootCmd.AddCommand(listCmd, addCmd, showCmd, editCmd, deleteCmd)
}
