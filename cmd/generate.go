package cmd

import (
	"fmt"
	"time"

	"roster-manager/core/reconcile"
	"roster-manager/feature/news"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generateOut       string
	generateTradeURL  string
	generateAgencyURL string
	generateDraftURL  string
	generateAll       bool
)

// generateCmd builds a diff skeleton from offseason news pages.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a diff from offseason news pages",
	Long: `Scrape the trade tracker, free agency and draft pages, resolve every
veteran name against the reference directory and write a diff list.

Entries carry no team: fill in "equipo" for each one before running apply.
Pass an empty URL to skip a page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := bootstrap("generate")
		if err != nil {
			return err
		}
		defer rt.Close()

		source := rt.referenceSource(!generateAll)
		ref, err := reconcile.GetOrBuildReference(ctx, source, rt.cfg.Reconcile.ReferenceCacheTTL)
		if err != nil {
			return fmt.Errorf("failed to load reference directory: %w", err)
		}
		rt.logger.Info("Reference directory loaded", zap.String("source", source.Name()), zap.Int("players", ref.Len()))

		timeout := time.Duration(rt.cfg.Stats.TimeoutSeconds) * time.Second
		pages := news.NewHTTPPageSource(timeout, rt.cfg.Stats.UserAgent)
		gen := news.NewGenerator(pages, news.Sources{
			TradeURL:      generateTradeURL,
			FreeAgencyURL: generateAgencyURL,
			DraftURL:      generateDraftURL,
		})

		report, err := gen.Generate(ctx, ref)
		if err != nil {
			return fmt.Errorf("failed to generate diff: %w", err)
		}

		fmt.Println("\n=== Generated Diff ===")
		fmt.Printf("Trades: %d\n", report.Trades)
		fmt.Printf("Signings: %d\n", report.Signings)
		fmt.Printf("Rookies: %d\n", report.Rookies)
		fmt.Printf("Entries: %d\n", len(report.Entries))
		printSection("Players without ID", report.Missing)

		if err := writeJSON(generateOut, report.Entries); err != nil {
			return err
		}
		rt.logger.Info("Diff written", zap.String("file", generateOut), zap.Int("entries", len(report.Entries)))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "diff_generated.json", "Output file ('-' for stdout)")
	generateCmd.Flags().StringVar(&generateTradeURL, "trade-url", news.DefaultTradeURL, "Trade tracker page")
	generateCmd.Flags().StringVar(&generateAgencyURL, "free-agency-url", news.DefaultFreeAgencyURL, "Free agency tracker page")
	generateCmd.Flags().StringVar(&generateDraftURL, "draft-url", news.DefaultDraftURL, "Draft results page")
	generateCmd.Flags().BoolVar(&generateAll, "all-players", false, "Resolve against every historical player, not only active ones")

	RootCmd.AddCommand(generateCmd)
}
