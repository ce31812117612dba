package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"roster-manager/core/loader"
	"roster-manager/core/logger"
	"roster-manager/core/middleware/auth"
	"roster-manager/core/middleware/rayid"

	"roster-manager/feature/integrity"
	"roster-manager/feature/rosters"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "roster-manager/docs/swagger"
)

// @title Roster Manager API
// @version 1.0
// @description API for reconciling team rosters.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the roster manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration and Logger
		rt, err := bootstrap("server")
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer rt.Close()
		cfg := rt.cfg
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		// 2. Roster service (required)
		rosterSvc, err := rt.rosterService()
		if err != nil {
			logg.Fatal("Failed to initialize roster service", zap.Error(err))
		}

		// 3. Integrity service (storage and database optional)
		deps, err := rt.integrityDependencies()
		if err != nil {
			logg.Fatal("Failed to initialize integrity service", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(rosters.NewFeature(rosterSvc))
		mgr.Register(integrity.NewFeature(integrity.NewService(deps, logg)))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects every route registered after it
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, AllowsMethod: cfg.Server.AllowsMethod}))

		// 6. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.Bool("read_only", cfg.Server.ReadOnly))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
