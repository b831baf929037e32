package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print one note in full",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		note, err := findNote(ctx, app, args[0])
		if err != nil {
			fatal("Failed to resolve note", err)
		}

		fmt.Printf("ID:      %s\n", note.ID)
		fmt.Printf("Created: %s\n", note.CreationDate.Format("2006-01-02 15:04:05"))
		fmt.Printf("Title:   %s\n", note.Title)
		if note.Content != "" {
			fmt.Printf("\n%s\n", note.Content)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
