package rosters

import (
	"encoding/json"
	"errors"

	"roster-manager/core/logger"
	"roster-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rosters.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the roster routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rosters")
	group.Get("/", h.HandleGetRosters)
	group.Get("/duplicates", h.HandleDuplicates)
	group.Get("/:team", h.HandleGetTeam)
	group.Post("/diff", h.HandleApplyDiff)
	group.Post("/sync", h.HandleSync)
	group.Post("/resolve", h.HandleResolve)
}

// HandleGetRosters returns the whole directory.
// @Summary Get Rosters
// @Description Returns every team with its players, in persisted order.
// @Tags rosters
// @Produce json
// @Success 200 {object} map[string]interface{} "Roster Directory"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /rosters [get]
func (h *Handler) HandleGetRosters(c *fiber.Ctx) error {
	dir, err := h.service.Directory(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dir)
}

// HandleGetTeam returns one team.
// @Summary Get Team
// @Description Returns one team roster by code.
// @Tags rosters
// @Produce json
// @Param team path string true "Team code (e.g. 'PHX')"
// @Success 200 {object} roster.Team "Team"
// @Failure 404 {object} map[string]string "Team Not Found"
// @Router /rosters/{team} [get]
func (h *Handler) HandleGetTeam(c *fiber.Ctx) error {
	team, err := h.service.Team(c.Context(), c.Params("team"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"code":            team.Code,
		"nombre_completo": team.Name,
		"jugadores":       team.Players,
	})
}

// HandleDuplicates reports ids listed under more than one team.
// @Summary Get Duplicates
// @Description Lists player ids that appear in more than one team.
// @Tags rosters
// @Produce json
// @Success 200 {object} map[string]interface{} "Duplicates Report"
// @Router /rosters/duplicates [get]
func (h *Handler) HandleDuplicates(c *fiber.Ctx) error {
	dups, err := h.service.Duplicates(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"count":      len(dups),
		"duplicates": dups,
		"lines":      dups.Lines(),
	})
}

// HandleApplyDiff applies a diff to the rosters.
// @Summary Apply Diff
// @Description Applies a diff (list of entries or team-keyed mapping) as player moves.
// @Tags rosters
// @Accept json
// @Produce json
// @Param dry_run query boolean false "Compute without saving"
// @Param skip_invalid query boolean false "Skip invalid entries instead of rejecting the diff"
// @Param remove_all query boolean false "Remove every prior occurrence of a moved id"
// @Success 200 {object} ApplyReport "Diff Report"
// @Failure 400 {object} map[string]string "Malformed JSON"
// @Failure 422 {object} map[string]interface{} "Invalid Diff"
// @Router /rosters/diff [post]
func (h *Handler) HandleApplyDiff(c *fiber.Ctx) error {
	opts := h.service.DefaultOptions()
	opts.SkipInvalid = c.QueryBool("skip_invalid", opts.SkipInvalid)
	opts.RemoveAllOccurrences = c.QueryBool("remove_all", opts.RemoveAllOccurrences)

	report, err := h.service.ApplyDiff(c.Context(), c.Body(), opts, c.QueryBool("dry_run"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleSync rebuilds the rosters from the remote stats source.
// @Summary Sync Rosters
// @Description Replaces every team with its remote roster, keeping prior data for teams the source returns nothing for.
// @Tags rosters
// @Produce json
// @Param season query string false "Season (e.g. 2025-26)"
// @Param dry_run query boolean false "Compute without saving"
// @Success 200 {object} SyncReport "Sync Report"
// @Failure 503 {object} map[string]string "Source Not Configured"
// @Router /rosters/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting roster sync")

	report, err := h.service.Sync(c.Context(), c.Query("season"), c.QueryBool("dry_run"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleResolve rewrites identities against the reference directory.
// @Summary Resolve Identities
// @Description Corrects player ids and names by exact then fuzzy match against the reference directory.
// @Tags rosters
// @Produce json
// @Param dry_run query boolean false "Compute without saving"
// @Param refresh query boolean false "Reload the reference directory"
// @Success 200 {object} ResolveReport "Resolve Report"
// @Failure 503 {object} map[string]string "Reference Not Configured"
// @Router /rosters/resolve [post]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	report, err := h.service.Resolve(c.Context(), c.QueryBool("dry_run"), c.QueryBool("refresh"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// fail maps service errors to status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)

	var (
		missingTeam *reconcile.MissingTeamError
		badID       *reconcile.InvalidIdentityError
		badShape    *reconcile.UnsupportedDiffShapeError
		syntaxErr   *json.SyntaxError
	)

	switch {
	case errors.Is(err, ErrTeamNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrSyncUnavailable), errors.Is(err, ErrResolveUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &syntaxErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &missingTeam):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error(), "index": missingTeam.Index})
	case errors.As(err, &badID):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error(), "index": badID.Index})
	case errors.As(err, &badShape):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error(), "index": badShape.Index})
	default:
		l.Error("Roster request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
