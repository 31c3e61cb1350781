package cli

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer/internal/mockapi"
)

var (
	serveAddr     string
	serveScramble string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local color and solution service",
	Long: `Serve a scrambled cube over HTTP for 'gocube view', 'gocube scan' and
'gocube solve' to use.

The cube is the scramble applied to a solved cube in the standard color scheme
(white up, green front); the served solution is the scramble's inverse.

Endpoints:
  GET /api/colors/:face   Face 0-5 as nine color codes
  GET /api/solution       The solution in standard notation
  GET /healthz            Liveness
  GET /metrics            Prometheus metrics`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().StringVar(&serveScramble, "scramble", "", "Scramble to serve (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := cfg.MockServer.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	scramble := cfg.MockServer.Scramble
	if cmd.Flags().Changed("scramble") {
		scramble = serveScramble
	}

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := mockapi.New(scramble, slog.Default())
	if err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}

	fmt.Printf("Serving on http://%s\n", addr)
	fmt.Printf("Scramble: %s\n", srv.Scramble())
	fmt.Printf("Solution: %s\n", srv.Solution())
	fmt.Println("Press Ctrl+C to stop.")

	return srv.ListenAndServe(cmd.Context(), addr)
}
