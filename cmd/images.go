package cmd

import (
	"fmt"
	"time"

	"roster-manager/feature/images"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	imagesPlayers   bool
	imagesLogos     bool
	imagesOverwrite bool
	imagesWorkers   int
	imagesTimeout   time.Duration
	imagesReport    string
)

// imagesCmd downloads headshots and logos into the bucket.
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Upload player headshots and team logos to storage",
	Long: `Download the headshot of every rostered player and the logo of every
registry team, and store them in the bucket. Existing objects are skipped
unless --overwrite is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if !imagesPlayers && !imagesLogos {
			imagesPlayers, imagesLogos = true, true
		}

		rt, err := bootstrap("images")
		if err != nil {
			return err
		}
		defer rt.Close()

		client, err := rt.storage()
		if err != nil {
			return err
		}
		svc := images.NewService(images.NewFetcher(imagesTimeout), client, rt.cfg.Storage, rt.logger)
		svc.SetWorkers(imagesWorkers)

		reports := make(map[string]*images.Report)

		if imagesPlayers {
			repo, err := rt.repository()
			if err != nil {
				return err
			}
			dir, err := repo.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load rosters: %w", err)
			}

			report, err := svc.UploadPlayerImages(ctx, images.PlayerIDs(dir), imagesOverwrite)
			if err != nil {
				return fmt.Errorf("player image upload failed: %w", err)
			}
			reports["players"] = report
			printImageReport("Player images", report)
		}

		if imagesLogos {
			reg, err := rt.registry()
			if err != nil {
				return err
			}
			report, err := svc.UploadTeamLogos(ctx, reg.Teams(), imagesOverwrite)
			if err != nil {
				return fmt.Errorf("logo upload failed: %w", err)
			}
			reports["logos"] = report
			printImageReport("Team logos", report)
		}

		rt.logger.Info("Image upload completed", zap.String("bucket", rt.cfg.Storage.Bucket))
		if imagesReport != "" {
			return writeJSON(imagesReport, reports)
		}
		return nil
	},
}

func init() {
	imagesCmd.Flags().BoolVar(&imagesPlayers, "players", false, "Upload player headshots")
	imagesCmd.Flags().BoolVar(&imagesLogos, "logos", false, "Upload team logos")
	imagesCmd.Flags().BoolVar(&imagesOverwrite, "overwrite", false, "Replace existing objects")
	imagesCmd.Flags().IntVar(&imagesWorkers, "workers", 8, "Concurrent downloads")
	imagesCmd.Flags().DurationVar(&imagesTimeout, "timeout", 10*time.Second, "Per-request download timeout")
	imagesCmd.Flags().StringVar(&imagesReport, "report", "", "Write the JSON run report to this file ('-' for stdout)")

	RootCmd.AddCommand(imagesCmd)
}

func printImageReport(title string, r *images.Report) {
	fmt.Printf("\n=== %s ===\n", title)
	fmt.Printf("Uploaded: %d\n", len(r.Uploaded))
	fmt.Printf("Skipped: %d\n", len(r.Skipped))
	fmt.Printf("Failed: %d\n", len(r.Failed))

	failed := make([]string, len(r.Failed))
	for i, f := range r.Failed {
		failed[i] = fmt.Sprintf("%s: %s", f.Subject, f.Error)
	}
	printSection("Failures", failed)
}
