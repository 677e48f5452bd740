package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/progress"
	"github.com/vovakirdan/omnitrix-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long:  `Shows every registered game mode.`,
	Run:   runList,
}

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "Show the campaign",
	Long: `Lists every world and mission with the stars earned so far.
Locked missions need a star on the previous mission.`,
	Run: runMissions,
}

var aliensCmd = &cobra.Command{
	Use:   "aliens",
	Short: "Show the Omnitrix roster",
	Run:   runAliens,
}

var flagReset bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset campaign progress",
	Long: `Shows stars, unlocked aliens and the next mission.

Examples:
  omnitrix progress
  omnitrix progress --reset`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Erase campaign progress")
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range modes {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'omnitrix play' or 'omnitrix classic' to start.")
}

func runMissions(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	save, err := store.LoadSave()
	if err != nil {
		fail("loading progress: %v", err)
	}

	for _, w := range defs.Worlds() {
		fmt.Println(w.Name)
		for _, m := range w.Missions {
			status := stars(save.Stars(m.ID))
			if !progress.IsMissionUnlocked(save, m) {
				status = "locked"
			}
			boss := ""
			if m.IsBoss {
				boss = " [boss]"
			}
			fmt.Printf("  %-12s  %-22s  %s%s\n", m.ID, m.Name, status, boss)
		}
		fmt.Println()
	}
	fmt.Printf("Next: %s\n", progress.NextMission(save).ID)
}

func runAliens(_ *cobra.Command, _ []string) {
	for _, id := range defs.AllAliens() {
		a := defs.MustAlien(id)
		fmt.Printf("  %-12s  %-12s  hp %-3d  %s / %s\n", a.ID, a.Name, a.Health, a.Basic.Name, a.Special.Name)
		if a.Description != "" {
			fmt.Printf("  %-12s  %s\n", "", a.Description)
		}
	}
}

func runProgress(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagReset {
		if err := store.ResetSave(); err != nil {
			fail("resetting progress: %v", err)
		}
		fmt.Println("Campaign progress erased.")
		return
	}

	save, err := store.LoadSave()
	if err != nil {
		fail("loading progress: %v", err)
	}

	total := 3 * len(defs.Missions())
	fmt.Printf("Stars:  %d / %d\n", save.TotalStars(), total)

	names := make([]string, len(save.UnlockedAliens))
	for i, id := range save.UnlockedAliens {
		names[i] = defs.MustAlien(id).Name
	}
	fmt.Printf("Aliens: %s\n", strings.Join(names, ", "))

	next := progress.NextMission(save)
	if progress.IsFinal(next) && save.Stars(next.ID) > 0 {
		fmt.Println("Campaign complete.")
		return
	}
	fmt.Printf("Next:   %s (%s)\n", next.Name, next.ID)
}

func stars(n int) string {
	n = min(max(n, 0), 3)
	return strings.Repeat("*", n) + strings.Repeat(".", 3-n)
}
