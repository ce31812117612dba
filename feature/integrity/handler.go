package integrity

import (
	"errors"

	"roster-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/assets", h.HandleAssetCheck)
	group.Get("/rosters", h.HandleRosterCheck)
	group.Get("/server", h.HandleServerCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every integrity check (Structure, Assets, Rosters, Server). Checks without a configured backend are reported as skipped.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.Report(c.Context()))
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks that the roster and image folders exist in the storage bucket. Optionally creates the missing ones.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix")

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return fail(c, err)
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleAssetCheck checks stored headshots and logos.
// @Summary Check Assets
// @Description Lists the player headshots and team logos missing from storage, and headshots of players no team lists.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.AssetReport "Asset Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/assets [get]
func (h *Handler) HandleAssetCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckAssets(c.Context())
	if err != nil {
		l.Error("Asset check failed", zap.Error(err))
		return fail(c, err)
	}

	l.Info("Asset check completed",
		zap.Int("missing_images", len(report.MissingPlayerImages)),
		zap.Int("missing_logos", len(report.MissingLogos)))
	return c.JSON(report)
}

// HandleRosterCheck checks roster consistency.
// @Summary Check Rosters
// @Description Reports duplicate ids, teams missing from or unknown to the registry, empty teams and players without a name.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.RosterReport "Roster Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/rosters [get]
func (h *Handler) HandleRosterCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckRosters(c.Context())
	if err != nil {
		l.Error("Roster check failed", zap.Error(err))
		return fail(c, err)
	}
	if !report.Matched {
		l.Warn("Roster check found issues",
			zap.Int("duplicates", len(report.Duplicates)),
			zap.Int("nameless", len(report.NamelessPlayers)))
	}
	return c.JSON(report)
}

// HandleServerCheck checks server schema integrity.
// @Summary Check Server Schema
// @Description Checks that the roster tables match the expected models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Database not configured"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting server schema check")

	report, err := h.service.CheckServer()
	if err != nil {
		l.Error("Server schema check failed", zap.Error(err))
		return fail(c, err)
	}

	return c.JSON(report)
}

func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrStorageUnavailable) || errors.Is(err, ErrDatabaseUnavailable) {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
