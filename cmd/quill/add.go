package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillstack/quill/pkg/core"
)

var (
	addTitle   string
	addContent string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Long:  `Create a note with the given title and content. The ID and creation timestamp are assigned automatically.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if addTitle == "" {
			fmt.Println("Error: --title is required")
			cmd.Usage()
			os.Exit(1)
		}

		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		note := core.NewNote(addTitle, addContent)
		if err := app.Service.AddNote(ctx, note); err != nil {
			fatal("Failed to add note", err)
		}

		fmt.Printf("Note %s created.\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Note content")
	addCmd.MarkFlagRequired("title")
}
