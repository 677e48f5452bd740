package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/registry"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a game mode, or a summary of every
mode when none is given.

Examples:
  omnitrix scores
  omnitrix scores arena
  omnitrix scores classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent runs",
	Long: `Display the most recent mission attempts.

Examples:
  omnitrix runs
  omnitrix runs --limit 50`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoreSummary()
		return
	}

	mode := args[0]
	if !registry.Exists(mode) {
		fail("unknown mode %q\nRun 'omnitrix list' to see available modes.", mode)
	}
	game, err := registry.Create(mode)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := mustOpenStore()
	defer store.Close()

	scores, err := store.TopScores(mode, 10)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(mode); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func runScoreSummary() {
	store := mustOpenStore()
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fail("retrieving scores: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	modes := make([]string, 0, len(stats))
	for m := range stats {
		modes = append(modes, m)
	}
	slices.Sort(modes)

	fmt.Printf("  %-8s  %-6s  %-8s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	for _, m := range modes {
		s := stats[m]
		fmt.Printf("  %-8s  %-6d  %-8d  %-8.0f  %s\n",
			s.Mode, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func runRuns(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-22s  %-12s  %-8s  %-5s  %s\n", "Date", "Mission", "Alien", "Score", "Stars", "Result")
	for _, r := range runs {
		name := r.MissionID
		if m, err := defs.LookupMission(r.MissionID); err == nil {
			name = m.Name
		}
		result := "failed"
		if r.Completed {
			result = "cleared"
		}
		fmt.Printf("  %-16s  %-22s  %-12s  %-8d  %-5s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), name, r.Alien, r.Score, stars(r.Stars), result)
	}
}
