package cmd

import (
	"fmt"

	"roster-manager/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	resolveDryRun    bool
	resolveReference string
	resolveReport    string
)

// resolveCmd rewrites player identities against the reference directory.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve player ids against the reference directory",
	Long: `Look every rostered player up in the reference directory by name.

Exact (case-insensitive) matches rewrite id and name. Otherwise the closest
name by token-sort similarity is accepted when it scores at least 85.
Names without an acceptable match are listed for manual review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := bootstrap("resolve")
		if err != nil {
			return err
		}
		defer rt.Close()

		svc, err := rt.rosterService()
		if err != nil {
			return err
		}
		if resolveReference != "" {
			svc.WithReference(&reconcile.FileReferenceSource{Path: resolveReference})
		}

		report, err := svc.Resolve(ctx, resolveDryRun, true)
		if err != nil {
			return fmt.Errorf("resolve failed: %w", err)
		}

		fmt.Println("\n=== Resolve Summary ===")
		fmt.Printf("Corrections: %d\n", report.Corrections)
		fmt.Printf("Exact matches: %d\n", report.Exact)
		fmt.Printf("Fuzzy matches: %d\n", report.Fuzzy)

		var fuzzy []string
		for _, c := range report.Changes {
			if c.Fuzzy {
				fuzzy = append(fuzzy, fmt.Sprintf("%s -> %s (%d, score %.0f)", c.OldName, c.NewName, c.NewID, c.Score))
			}
		}
		printSection("Fuzzy matches", fuzzy)
		printSection("Players not found", report.Unmatched)
		printSection("Duplicated IDs", report.Duplicates.Lines())

		if resolveDryRun {
			rt.logger.Info("Dry-run mode: No changes were made.")
		} else {
			rt.logger.Info("Rosters saved", zap.Int("corrections", report.Corrections))
		}
		if resolveReport != "" {
			return writeJSON(resolveReport, report)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveDryRun, "dry-run", false, "Report corrections without saving")
	resolveCmd.Flags().StringVar(&resolveReference, "reference", "", "Reference directory JSON file (overrides roster.reference_file)")
	resolveCmd.Flags().StringVar(&resolveReport, "report", "", "Write the JSON run report to this file ('-' for stdout)")

	RootCmd.AddCommand(resolveCmd)
}
