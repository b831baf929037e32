package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		note, err := findNote(ctx, app, args[0])
		if err != nil {
			fatal("Failed to resolve note", err)
		}

		if err := app.Service.DeleteNote(ctx, note); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Note %s deleted.\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
