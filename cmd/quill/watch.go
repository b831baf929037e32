package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quillstack/quill"
	"github.com/quillstack/quill/pkg/core"
)

var watchQuery string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the note set live",
	Long: `Watch renders the (optionally query-filtered) note list and
re-renders it whenever the database changes, including changes made by
other quill processes. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		app, err := quill.New(ctx, dbPath,
			quill.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to open note store", err)
		}
		defer app.Close()

		vm, err := app.NewView(ctx)
		if err != nil {
			fatal("Failed to build view", err)
		}
		defer vm.Close()
		vm.SetQuery(watchQuery)

		render(vm.Query(), vm.Filtered())
		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nStopped.")
				return
			case <-vm.Changed():
				render(vm.Query(), vm.Filtered())
			}
		}
	},
}

func render(query string, notes []core.Note) {
	if query != "" {
		fmt.Printf("--- query: %q ---\n", query)
	} else {
		fmt.Println("--- all notes ---")
	}
	printNotes(notes)
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchQuery, "query", "q", "", "Filter by case-insensitive title/content match")
}
