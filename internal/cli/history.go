package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_viewer/internal/analysis"
	"github.com/SeamusWaldron/gocube_viewer/internal/storage"
)

var (
	listLimit int
	showLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent scans and solves",
	Long:  `Display recent scans and solve playbacks from the history database.`,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a solve",
	Long: `Display a solve: the scan it was played on, timing, final phase and the
move sequence.

Use --last to show the most recent solve.`,
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of entries to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent solve")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	scans, err := storage.NewScanRepository(db).List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list scans: %w", err)
	}
	solveRepo := storage.NewSolveRepository(db)
	solves, err := solveRepo.List(listLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	fmt.Println("Scans")
	fmt.Println("-----")
	if len(scans) == 0 {
		fmt.Println("No scans recorded.")
	}
	for _, s := range scans {
		fmt.Printf("%-36s  %-20s  %-13s  %s\n",
			s.ScanID,
			s.ScannedAt.Local().Format("2006-01-02 15:04:05"),
			s.Phase,
			s.Source,
		)
	}
	fmt.Println()

	fmt.Println("Solves")
	fmt.Println("------")
	if len(solves) == 0 {
		fmt.Println("No solves recorded.")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %-10s  %-6s  %s\n", "ID", "Started", "Duration", "Moves", "Final")
	for _, s := range solves {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}

		moves := "-"
		if count, err := solveRepo.GetMoveCount(s.SolveID); err == nil {
			moves = fmt.Sprintf("%d", count)
		}

		final := "(active)"
		if s.FinalPhase != nil {
			final = *s.FinalPhase
		}

		fmt.Printf("%-36s  %-20s  %-10s  %-6s  %s\n",
			s.SolveID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			duration,
			moves,
			final,
		)
	}
	return nil
}

// resolveSolveID picks the solve named by args or, with last, the most
// recent one.
func resolveSolveID(db *storage.DB, args []string, last bool) (string, error) {
	if last {
		solve, err := storage.NewSolveRepository(db).GetLast()
		if err != nil {
			return "", fmt.Errorf("failed to get last solve: %w", err)
		}
		if solve == nil {
			return "", fmt.Errorf("no solves found")
		}
		return solve.SolveID, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return "", fmt.Errorf("please provide a solve ID or use --last")
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	solveID, err := resolveSolveID(db, args, showLast)
	if err != nil {
		return err
	}

	solve, err := storage.NewSolveRepository(db).Get(solveID)
	if err != nil {
		return fmt.Errorf("failed to get solve: %w", err)
	}
	if solve == nil {
		return fmt.Errorf("solve not found: %s", solveID)
	}

	records, err := storage.NewMoveRepository(db).GetBySolve(solveID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	fmt.Println("Solve Details")
	fmt.Println("=============")
	fmt.Println()

	fmt.Printf("ID:       %s\n", solve.SolveID)
	fmt.Printf("Started:  %s\n", solve.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if solve.EndedAt != nil {
		fmt.Printf("Ended:    %s\n", solve.EndedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if solve.DurationMs != nil {
		fmt.Printf("Duration: %s\n", formatDuration(time.Duration(*solve.DurationMs)*time.Millisecond))
	}
	if solve.FinalPhase != nil {
		fmt.Printf("Final:    %s\n", *solve.FinalPhase)
	}
	fmt.Printf("Solution: %s\n", solve.Solution)
	fmt.Println()

	if solve.ScanID != nil {
		scan, err := storage.NewScanRepository(db).Get(*solve.ScanID)
		if err != nil {
			return fmt.Errorf("failed to get scan: %w", err)
		}
		if scan != nil {
			c, err := scan.Cube()
			if err != nil {
				return fmt.Errorf("stored scan is corrupt: %w", err)
			}
			fmt.Printf("Scan %s (%s)\n", scan.ScanID, scan.Phase)
			fmt.Print(c.String())
			fmt.Println()
		}
	}

	fmt.Printf("Moves (%d)\n", len(records))
	fmt.Println("-----")
	notations := make([]string, 0, len(records))
	for _, m := range records {
		notations = append(notations, m.Notation)
	}
	fmt.Println(strings.Join(notations, " "))

	moves, err := storage.ToMoves(records)
	if err != nil {
		return fmt.Errorf("stored moves are corrupt: %w", err)
	}
	timed := make([]analysis.TimedMove, len(moves))
	for i, m := range moves {
		timed[i] = analysis.TimedMove{Move: m, TsMs: records[i].TsMs}
	}
	fmt.Println()
	printSummary(analysis.Summarize(timed))

	ngrams := analysis.MineNGrams(moves, 4, 8, 3)
	for n := 4; n <= 8; n++ {
		for _, ng := range ngrams.TopNGrams[n] {
			fmt.Printf("Repeated: %s (x%d)\n", strings.Join(ng.Sequence, " "), ng.Count)
		}
	}
	return nil
}

func printSummary(s *analysis.SolveSummary) {
	fmt.Println("Statistics")
	fmt.Println("----------")
	fmt.Printf("Moves:         %d (%d quarter turns)\n", s.TotalMoves, s.QuarterTurns)
	fmt.Printf("Optimized:     %d (%.0f%%)\n", s.OptimizedMoves, s.Efficiency*100)
	if s.DurationMs > 0 {
		fmt.Printf("TPS:           %.2f\n", s.TPSOverall)
		fmt.Printf("Longest pause: %s\n", formatDuration(time.Duration(s.LongestPauseMs)*time.Millisecond))
	}
	if s.TotalMoves > 0 {
		fmt.Printf("Most used:     %s face, %d of %d moves\n",
			s.Profile.MostUsedFace.DisplayName(), s.Profile.FaceCounts[s.Profile.MostUsedFace], s.TotalMoves)
	}
	if s.Repetitions.TotalWastedMoves > 0 {
		fmt.Printf("Wasted moves:  %d\n", s.Repetitions.TotalWastedMoves)
	}
}
