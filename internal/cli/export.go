package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer"
	"github.com/SeamusWaldron/gocube_viewer/internal/storage"
)

var (
	exportSolveID string
	exportFormat  string
	exportOutput  string
	exportLast    bool
	exportInverse bool
)

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the moves of a solve",
	Long: `Export the move sequence played in a solve in text or JSON format.

Examples:
  gocube history export --last
  gocube history export --id <solve_id> --format json
  gocube history export --last --inverse -o scramble.txt`,
	RunE: runExportMoves,
}

func init() {
	historyCmd.AddCommand(historyExportCmd)
	historyExportCmd.Flags().StringVar(&exportSolveID, "id", "", "Solve ID to export")
	historyExportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last solve")
	historyExportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	historyExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	historyExportCmd.Flags().BoolVar(&exportInverse, "inverse", false, "Export the inverse sequence (txt only)")
}

// moveJSON is one exported move.
type moveJSON struct {
	MoveIndex int    `json:"move_index"`
	TsMs      int64  `json:"ts_ms"`
	Face      string `json:"face"`
	Turn      int    `json:"turn"`
	Notation  string `json:"notation"`
}

func runExportMoves(cmd *cobra.Command, args []string) error {
	if exportSolveID == "" && !exportLast {
		return fmt.Errorf("specify --id or --last")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var ids []string
	if exportSolveID != "" {
		ids = append(ids, exportSolveID)
	}
	solveID, err := resolveSolveID(db, ids, exportLast)
	if err != nil {
		return err
	}

	records, err := storage.NewMoveRepository(db).GetBySolve(solveID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no moves found for solve %s", solveID)
	}

	output, err := formatExport(records, exportFormat, exportInverse)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Println(output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Exported %d moves to %s\n", len(records), exportOutput)
	return nil
}

// formatExport renders move records as space-separated notation or as a
// JSON array.
func formatExport(records []storage.MoveRecord, format string, inverse bool) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		moves, err := storage.ToMoves(records)
		if err != nil {
			return "", fmt.Errorf("stored moves are corrupt: %w", err)
		}
		if inverse {
			moves = gocube.InverseMoves(moves)
		}
		return gocube.FormatMoves(moves), nil

	case "json":
		if inverse {
			return "", fmt.Errorf("--inverse is only supported with txt")
		}
		out := make([]moveJSON, 0, len(records))
		for _, m := range records {
			out = append(out, moveJSON{
				MoveIndex: m.MoveIndex,
				TsMs:      m.TsMs,
				Face:      m.Face,
				Turn:      m.Turn,
				Notation:  m.Notation,
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt or json)", format)
	}
}
