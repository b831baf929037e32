package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quillstack/quill/pkg/core"
	"github.com/quillstack/quill/pkg/view"
)

var (
	listJSON  bool
	listYAML  bool
	listQuery string
)

// listNote is the serialization shape for --json/--yaml output.
type listNote struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Content      string `json:"content" yaml:"content"`
	CreationDate string `json:"creation_date" yaml:"creation_date"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		notes, err := app.Service.FetchNotes(ctx)
		if err != nil {
			fatal("Failed to list notes", err)
		}
		notes = view.Filter(notes, listQuery)

		if listJSON || listYAML {
			out := make([]listNote, 0, len(notes))
			for _, n := range notes {
				out = append(out, listNote{
					ID:           n.ID.String(),
					Title:        n.Title,
					Content:      n.Content,
					CreationDate: n.CreationDate.Format("2006-01-02 15:04:05"),
				})
			}
			if listJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(out); err != nil {
					fatal("Failed to encode JSON", err)
				}
			} else {
				if err := yaml.NewEncoder(os.Stdout).Encode(out); err != nil {
					fatal("Failed to encode YAML", err)
				}
			}
			return
		}

		printNotes(notes)
	},
}

func printNotes(notes []core.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes.")
		return
	}
	for _, n := range notes {
		fmt.Printf("%s  %s  %s\n", n.ID, n.CreationDate.Format("2006-01-02 15:04"), n.Title)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output as YAML")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter by case-insensitive title/content match")
}
