// Package cli implements the command-line interface for gocube.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer/internal/config"
	"github.com/SeamusWaldron/gocube_viewer/internal/storage"
)

const version = "0.2.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube",
	Short: "GoCube Viewer",
	Long: `GoCube Viewer - A terminal viewer that scans a Rubik's Cube from a
color service and animates the solution move by move.

Scan data and solutions are fetched over HTTP. Run 'gocube serve' for a local
service that hands out a scrambled cube and its solution.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger())
	},
}

// Execute runs the root command. Ctrl+C cancels the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.gocube_viewer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.gocube_viewer/history.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the config from the flag path or the default one.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(path)
}

// openDB opens the history database: --db first, then the config, then the
// default path.
func openDB(cfg *config.Config) (*storage.DB, error) {
	path := dbPath
	if path == "" && cfg != nil {
		path = cfg.Storage.DBPath
	}

	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// openHistory returns a recorder for cfg, or nil when history is disabled
// and no --db was given. The returned close func is never nil.
func openHistory(cfg *config.Config, source string) (*storage.History, func(), error) {
	if !cfg.Storage.Enabled && dbPath == "" {
		return nil, func() {}, nil
	}
	db, err := openDB(cfg)
	if err != nil {
		return nil, func() {}, err
	}
	return storage.NewHistory(db, source), func() { db.Close() }, nil
}
