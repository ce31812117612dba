package cmd

import (
	"fmt"

	"roster-manager/core/roster"
	"roster-manager/feature/integrity"
	"roster-manager/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixFlag         bool
	integrityReport string
)

// integrityCmd runs every integrity check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on rosters, storage and database",
	Long:  `Checks roster consistency, the bucket folder structure, stored images and the database schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, svc, err := integrityService("integrity")
		if err != nil {
			return err
		}
		defer rt.Close()

		report := svc.Report(cmd.Context())
		for name, entry := range report {
			if m, ok := entry.(map[string]any); ok && m["status"] != "ok" {
				rt.logger.Warn("Check did not run", zap.String("check", name), zap.Any("error", m["error"]))
			}
		}
		if integrityReport == "" {
			integrityReport = "-"
		}
		return writeJSON(integrityReport, report)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, svc, err := integrityService("integrity structure")
		if err != nil {
			return err
		}
		defer rt.Close()

		rt.logger.Info("Checking folder structure...", zap.Strings("folders", svc.Folders()))
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			rt.logger.Info("Structure is intact.")
			return nil
		}
		rt.logger.Warn("Missing folders detected", zap.Strings("missing", missing))

		if !fixFlag {
			rt.logger.Info("Run with --fix to create missing folders.")
			return nil
		}
		rt.logger.Info("Fixing missing folders...")
		if err := svc.FixStructure(ctx, missing); err != nil {
			return fmt.Errorf("failed to fix structure: %w", err)
		}
		rt.logger.Info("Structure fixed successfully.")
		return nil
	},
}

// assetsCmd represents the integrity assets command
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Check stored player images and team logos",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, svc, err := integrityService("integrity assets")
		if err != nil {
			return err
		}
		defer rt.Close()

		report, err := svc.CheckAssets(cmd.Context())
		if err != nil {
			return fmt.Errorf("asset check failed: %w", err)
		}

		fmt.Println("\n=== Asset Integrity ===")
		fmt.Printf("Roster object %s present: %t\n", report.RosterObject, report.RosterPresent)
		fmt.Printf("Missing player images: %d\n", len(report.MissingPlayerImages))
		fmt.Printf("Missing logos: %d\n", len(report.MissingLogos))
		fmt.Printf("Unreferenced images: %d\n", len(report.UnreferencedImages))
		printSection("Missing logos", report.MissingLogos)

		if integrityReport != "" {
			return writeJSON(integrityReport, report)
		}
		return nil
	},
}

// rostersCheckCmd represents the integrity rosters command
var rostersCheckCmd = &cobra.Command{
	Use:   "rosters",
	Short: "Check roster consistency",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, svc, err := integrityService("integrity rosters")
		if err != nil {
			return err
		}
		defer rt.Close()

		report, err := svc.CheckRosters(cmd.Context())
		if err != nil {
			return fmt.Errorf("roster check failed: %w", err)
		}
		printRosterReport(report)

		if report.Matched {
			rt.logger.Info("Rosters are consistent.", zap.Int("teams", report.Teams), zap.Int("players", report.Players))
		} else {
			rt.logger.Warn("Roster issues found")
		}
		if integrityReport != "" {
			return writeJSON(integrityReport, report)
		}
		return nil
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the roster tables of the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, svc, err := integrityService("integrity server")
		if err != nil {
			return err
		}
		defer rt.Close()

		rt.logger.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		if err != nil {
			return fmt.Errorf("server schema check failed: %w", err)
		}

		if report.Matched {
			rt.logger.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
			return nil
		}

		rt.logger.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if tblReport.Status == "missing" {
				rt.logger.Warn("Missing table", zap.String("table", table))
			}
			if len(tblReport.MissingColumns) > 0 {
				rt.logger.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				rt.logger.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			rt.logger.Error("Inspection Error", zap.String("error", e))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, assetsCmd, rostersCheckCmd, serverCmd)

	integrityCmd.PersistentFlags().StringVar(&integrityReport, "report", "", "Write the JSON report to this file ('-' for stdout)")
	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

// integrityService builds the integrity service for a command run.
func integrityService(run string) (*runtime, *integrity.Service, error) {
	rt, err := bootstrap(run)
	if err != nil {
		return nil, nil, err
	}

	deps, err := rt.integrityDependencies()
	if err != nil {
		rt.Close()
		return nil, nil, err
	}
	return rt, integrity.NewService(deps, rt.logger), nil
}

// integrityDependencies collects the integrity collaborators. Storage and
// database are optional: checks needing them report unavailable.
func (rt *runtime) integrityDependencies() (integrity.Dependencies, error) {
	repo, err := rt.repository()
	if err != nil {
		return integrity.Dependencies{}, err
	}
	reg, err := rt.registry()
	if err != nil {
		return integrity.Dependencies{}, err
	}

	deps := integrity.Dependencies{
		Storage:    rt.cfg.Storage,
		Repository: repo,
		Registry:   reg,
		DB:         rt.optionalDatabase(),
	}
	if client, err := rt.storage(); err != nil {
		rt.logger.Warn("Storage unavailable, bucket checks disabled", zap.Error(err))
	} else {
		deps.Client = client
	}
	// the roster object is only expected in the bucket when rosters live there
	if rt.cfg.Roster.Backend == roster.BackendStorage {
		deps.RosterObject = rt.cfg.Roster.ObjectName
	}
	return deps, nil
}

func printRosterReport(r *checks.RosterReport) {
	fmt.Println("\n=== Roster Integrity ===")
	fmt.Printf("Teams: %d\n", r.Teams)
	fmt.Printf("Players: %d\n", r.Players)
	printSection("Duplicated IDs", r.Duplicates.Lines())
	printSection("Teams not in registry", r.UnknownTeams)
	printSection("Registry teams missing", r.MissingTeams)
	printSection("Empty teams", r.EmptyTeams)

	nameless := make([]string, len(r.NamelessPlayers))
	for i, id := range r.NamelessPlayers {
		nameless[i] = fmt.Sprint(id)
	}
	printSection("Players without name", nameless)
}
