package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change a note's title or content",
	Long: `Edit overwrites the title and/or content of an existing note.
The ID and creation date never change.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		note, err := findNote(ctx, app, args[0])
		if err != nil {
			fatal("Failed to resolve note", err)
		}

		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") {
			fatal("Nothing to change", fmt.Errorf("pass --title and/or --content"))
		}
		if cmd.Flags().Changed("title") {
			note.Title = editTitle
		}
		if cmd.Flags().Changed("content") {
			note.Content = editContent
		}

		if err := app.Service.UpdateNote(ctx, note); err != nil {
			fatal("Failed to update note", err)
		}

		fmt.Printf("Note %s updated.\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
}
