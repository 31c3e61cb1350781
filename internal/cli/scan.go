package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer"
	"github.com/SeamusWaldron/gocube_viewer/internal/api"
	"github.com/SeamusWaldron/gocube_viewer/internal/config"
)

var scanURL string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the cube from the color service",
	Long: `Fetch all six faces from the color service, print the resulting cube and
its phase, and store the scan in the history database.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanURL, "url", "", "Color service base URL (default from config)")
}

// newClient builds an API client from the config and the --url flag.
func newClient(cfg *config.Config) *api.Client {
	base := cfg.API.BaseURL
	if scanURL != "" {
		base = scanURL
	}
	return api.New(base, api.WithTimeout(cfg.API.Timeout), api.WithLogger(slog.Default()))
}

// scanInto imports every face from client into store.
func scanInto(ctx context.Context, client *api.Client, store *gocube.Store) error {
	fmt.Printf("Scanning from %s...\n", client.BaseURL())
	importer := gocube.NewImporter(store, gocube.WithLogger(slog.Default()))
	if err := importer.ImportAll(ctx, client); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	store := gocube.NewStore(gocube.WithLogger(slog.Default()))
	if err := scanInto(cmd.Context(), client, store); err != nil {
		return err
	}

	c := store.Cube()
	fmt.Println()
	fmt.Print(c.String())
	fmt.Println()
	fmt.Printf("Phase: %s\n", c.DetectPhase().DisplayName())

	history, closeHistory, err := openHistory(cfg, client.BaseURL())
	if err != nil {
		return err
	}
	defer closeHistory()
	if history != nil {
		if err := history.RecordScan(c); err != nil {
			return fmt.Errorf("failed to record scan: %w", err)
		}
		fmt.Printf("Scan saved: %s\n", history.ScanID())
	}
	return nil
}
