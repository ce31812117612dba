package cmd

import (
	"fmt"

	"roster-manager/feature/rosters"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	applyDryRun      bool
	applyYes         bool
	applySkipInvalid bool
	applyRemoveAll   bool
	applyReport      string
)

// applyCmd applies a transfer diff to the roster directory.
var applyCmd = &cobra.Command{
	Use:   "apply <diff.json>",
	Short: "Apply a transfer diff to the rosters",
	Long: `Apply a diff of player moves to the roster directory.

The diff is a JSON list of entries or a mapping of team code to entries.
Each entry moves the player out of the team that currently lists it and into
the target team. The run is previewed first and saved only after confirmation.

Examples:
  # Preview only
  apply diff.json --dry-run

  # Apply, skipping malformed entries, without prompting
  apply diff.json --skip-invalid --yes

  # Read the diff from stdin
  cat diff.json | apply -`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Preview the run without saving")
	applyCmd.Flags().BoolVar(&applyYes, "yes", false, "Auto-confirm saving (non-interactive)")
	applyCmd.Flags().BoolVar(&applySkipInvalid, "skip-invalid", false, "Record malformed entries and apply the rest")
	applyCmd.Flags().BoolVar(&applyRemoveAll, "remove-all", false, "Remove every occurrence of a moved id, not only the first")
	applyCmd.Flags().StringVar(&applyReport, "report", "", "Write the JSON run report to this file ('-' for stdout)")

	RootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := bootstrap("apply")
	if err != nil {
		return err
	}
	defer rt.Close()

	payload, err := readInput(args[0])
	if err != nil {
		return err
	}

	svc, err := rt.rosterService()
	if err != nil {
		return err
	}

	opts := svc.DefaultOptions()
	if cmd.Flags().Changed("skip-invalid") {
		opts.SkipInvalid = applySkipInvalid
	}
	if cmd.Flags().Changed("remove-all") {
		opts.RemoveAllOccurrences = applyRemoveAll
	}

	// Step 1: Preview (always runs)
	rt.logger.Info("Planning diff", zap.String("file", args[0]))
	preview, err := svc.ApplyDiff(ctx, payload, opts, true)
	if err != nil {
		return fmt.Errorf("diff rejected: %w", err)
	}
	printApplyReport(preview)

	report := preview
	if applyDryRun {
		rt.logger.Info("Dry-run mode: No changes were made.")
	} else if len(preview.Moves) == 0 {
		rt.logger.Info("No moves to apply.")
	} else if !confirm(rt.logger, "Save the updated rosters?", applyYes) {
		rt.logger.Warn("Operation cancelled by user. No changes were made.")
	} else {
		// Step 2: Apply against a fresh load
		report, err = svc.ApplyDiff(ctx, payload, opts, false)
		if err != nil {
			return fmt.Errorf("failed to apply diff: %w", err)
		}
		rt.logger.Info("Rosters saved", zap.Int("moves", len(report.Moves)))
	}

	if applyReport != "" {
		return writeJSON(applyReport, report)
	}
	return nil
}

func printApplyReport(r *rosters.ApplyReport) {
	s := r.Summary
	fmt.Println("\n=== Diff Summary ===")
	fmt.Printf("Entries: %d (valid %d, invalid %d)\n", s.TotalEntries, s.ValidEntries, s.InvalidEntries)
	fmt.Printf("Moves: %d\n", s.Moves)
	fmt.Printf("Additions: %d\n", s.Additions)
	fmt.Printf("Already in team: %d\n", s.NoOps)
	fmt.Printf("Teams created: %d\n", s.TeamsCreated)
	fmt.Printf("Rookies: %d\n", s.Rookies)

	failures := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		failures[i] = fmt.Sprintf("#%d: %s", f.Index, f.Error)
	}
	printSection("Skipped entries", failures)

	var nameless []string
	for _, m := range r.Moves {
		if m.Name == "" {
			nameless = append(nameless, fmt.Sprintf("%d -> %s", m.ID, m.To))
		}
	}
	printSection("Players without name (run resolve)", nameless)
	printSection("Duplicated IDs", r.Duplicates.Lines())
}
