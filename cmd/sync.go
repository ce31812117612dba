package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncSeason  string
	syncDryRun  bool
	syncRefresh bool
	syncReport  string
)

// syncCmd rebuilds the rosters from the stats API.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize rosters with the stats API",
	Long: `Fetch the current roster of every registry team and rebuild the directory.

Teams whose fetch fails or returns nothing keep their stored roster. An id
already claimed by an earlier team is dropped and reported as duplicated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := bootstrap("sync")
		if err != nil {
			return err
		}
		defer rt.Close()

		svc, err := rt.rosterService()
		if err != nil {
			return err
		}

		season := syncSeason
		if season == "" {
			season = rt.cfg.Stats.Season
		}
		if syncRefresh {
			reg, err := rt.registry()
			if err != nil {
				return err
			}
			rt.invalidateCache(ctx, season, reg.Teams())
		}

		rt.logger.Info("Synchronizing rosters", zap.String("season", season))
		report, err := svc.Sync(ctx, season, syncDryRun)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		fmt.Println("\n=== Sync Summary ===")
		fmt.Printf("Season: %s\n", report.Season)
		fmt.Printf("Refreshed teams: %d\n", len(report.Refreshed))
		fmt.Printf("Players: %d\n", report.Players)
		printSection("Teams kept from stored data", report.Preserved)
		printSection("Teams left empty", report.Emptied)

		dropped := make([]string, len(report.Dropped))
		for i, d := range report.Dropped {
			dropped[i] = fmt.Sprintf("%d %s: %s (kept in %s)", d.ID, d.Name, d.Team, d.KeptIn)
		}
		printSection("Duplicated IDs dropped", dropped)
		printSection("Duplicated IDs", report.Duplicates.Lines())

		if syncDryRun {
			rt.logger.Info("Dry-run mode: No changes were made.")
		}
		if syncReport != "" {
			return writeJSON(syncReport, report)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncSeason, "season", "", "Season to fetch (defaults to stats.season)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Fetch and report without saving")
	syncCmd.Flags().BoolVar(&syncRefresh, "refresh", false, "Drop cached rosters before fetching")
	syncCmd.Flags().StringVar(&syncReport, "report", "", "Write the JSON run report to this file ('-' for stdout)")

	RootCmd.AddCommand(syncCmd)
}
