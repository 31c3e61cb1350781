package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer/internal/api"
	"github.com/SeamusWaldron/gocube_viewer/internal/viewer"
)

var viewCamera string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive cube viewer",
	Long: `Open the terminal cube viewer.

Keys:
  s       Scan the cube from the color service
  enter   Fetch the solution and play it
  1-6     Camera presets: top, bottom, front, back, left, right
  arrows  Orbit the camera
  q       Quit`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&viewCamera, "camera", "", "Initial camera preset (default from config)")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	name := cfg.Viewer.Camera
	if viewCamera != "" {
		name = viewCamera
	}
	camera, ok := viewer.PresetCamera(name)
	if !ok {
		return fmt.Errorf("unknown camera preset: %s", name)
	}

	history, closeHistory, err := openHistory(cfg, cfg.API.BaseURL)
	if err != nil {
		return err
	}
	defer closeHistory()

	// The TUI owns the terminal; keep logs quiet unless asked for.
	logger := slog.Default()
	if !verbose {
		logger = slog.New(slog.DiscardHandler)
	}

	client := api.New(cfg.API.BaseURL, api.WithTimeout(cfg.API.Timeout), api.WithLogger(logger))
	viewCfg := viewer.Config{
		Service: client,
		Camera:  camera,
		Timeout: cfg.API.Timeout,
		Options: cfg.PlaybackOptions(),
		Logger:  logger,
	}
	if history != nil {
		viewCfg.Recorder = history
	}

	p := tea.NewProgram(viewer.New(viewCfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
