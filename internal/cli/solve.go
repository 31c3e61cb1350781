package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer"
	"github.com/SeamusWaldron/gocube_viewer/internal/analysis"
	"github.com/SeamusWaldron/gocube_viewer/internal/notation"
)

var (
	solveSolution string
	solveInterval time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scan the cube and play its solution headless",
	Long: `Scan the cube from the color service, fetch the solution and play it move by
move without animation. Each move and every new phase reached is printed.

Use --solution to play your own move sequence instead of the service's.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveSolution, "solution", "", "Move sequence to play instead of fetching one")
	solveCmd.Flags().DurationVar(&solveInterval, "interval", 0, "Time between moves (default from config)")
	solveCmd.Flags().StringVar(&scanURL, "url", "", "Color service base URL (default from config)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	client := newClient(cfg)

	opts := append(cfg.PlaybackOptions(), gocube.WithLogger(slog.Default()))
	if solveInterval > 0 {
		opts = append(opts, gocube.WithMoveInterval(solveInterval))
	}

	store := gocube.NewStore(opts...)
	if err := scanInto(ctx, client, store); err != nil {
		return err
	}
	scanned := store.Cube()
	fmt.Printf("Scanned: %s\n", scanned.DetectPhase().DisplayName())

	solution := solveSolution
	if solution == "" {
		solution, err = client.FetchSolution(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch solution: %w", err)
		}
	}

	history, closeHistory, err := openHistory(cfg, client.BaseURL())
	if err != nil {
		return err
	}
	defer closeHistory()

	// Headless: no presenter, so every tick lands on the store only.
	player := gocube.NewPlayer(store, nil, opts...)
	tracker := gocube.NewTracker()
	tracker.Start(store)
	tracker.SetPhaseCallback(func(p gocube.Phase) {
		fmt.Printf("  -> %s\n", p.DisplayName())
	})
	player.SetTracker(tracker)

	count := 0
	player.OnMove(func(m gocube.Move) {
		count++
		fmt.Printf("%3d  %-3s %s\n", count, m.Notation(), notation.Describe(m))
		if history != nil {
			if err := history.RecordMove(m); err != nil {
				slog.Warn("failed to record move", "error", err)
			}
		}
	})

	if moves, err := gocube.ParseMoves(solution); err == nil {
		optimized := analysis.OptimizeMoves(moves)
		fmt.Printf("Solution: %s (%d moves, %d quarter turns)\n", solution, len(moves), analysis.QuarterTurnCount(moves))
		if len(optimized) < len(moves) {
			fmt.Printf("  could be %d moves: %s\n", len(optimized), gocube.FormatMoves(optimized))
		}
	}

	// Solve validates the whole sequence before anything is recorded.
	startedAt := time.Now()
	if err := player.Solve(solution); err != nil {
		return err
	}
	if history != nil {
		if err := history.RecordScan(scanned); err != nil {
			return fmt.Errorf("failed to record scan: %w", err)
		}
		if err := history.RecordSolveStart(solution); err != nil {
			return fmt.Errorf("failed to record solve: %w", err)
		}
	}
	runErr := player.Run(ctx)

	final := store.Cube().DetectPhase()
	if history != nil {
		if err := history.RecordSolveEnd(final); err != nil {
			slog.Warn("failed to record solve end", "error", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Println()
	fmt.Printf("Played %d moves in %s\n", count, formatDuration(time.Since(startedAt)))
	fmt.Printf("Final phase: %s\n", final.DisplayName())
	if !final.IsComplete() {
		fmt.Println("The cube is not solved.")
	}
	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
