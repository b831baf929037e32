package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quillstack/quill"
)

var (
	verbose bool
	dbPath  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "A local note keeper with a live, filterable view",
	Long: `Quill stores notes in a local SQLite database and keeps every
observer current: each change broadcasts a fresh snapshot of the note set,
and 'quill watch' renders a query-filtered view that follows along.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if dbPath == "" {
			dbPath = cfg.Database
		}
		if dbPath == "" {
			dbPath = defaultDatabasePath()
		}

		level := slog.LevelInfo
		if verbose || cfg.Verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file (default ~/.quill/notes.db)")
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "notes.db"
	}
	return filepath.Join(home, ".quill", "notes.db")
}

// openApp wires the stack for a one-shot command. Watching is off: a CLI
// invocation reads, mutates and exits.
func openApp(ctx context.Context) *quill.App {
	app, err := quill.New(ctx, dbPath,
		quill.WithLogger(slog.Default()),
		quill.WithWatch(false),
	)
	if err != nil {
		fatal("Failed to open note store", err)
	}
	return app
}
