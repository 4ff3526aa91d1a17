package bill

import (
	"craft-calculator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bill resolution.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bill routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/bill")
	group.Post("/resolve", h.HandleResolve)
}

// HandleResolve resolves a bill into consolidated raw components.
// @Summary Resolve Bill
// @Description Expand a list of (identifier, quantity) bill entries into the consolidated raw materials required.
// @Tags bill
// @Accept json
// @Produce json
// @Param bill body []Entry true "Bill entries"
// @Success 200 {array} ResolvedComponent "Consolidated components"
// @Failure 400 {object} map[string]string "Malformed body"
// @Router /bill/resolve [post]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var entries []Entry
	if err := c.BodyParser(&entries); err != nil {
		l.Warn("Malformed bill body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body must be a JSON array of bill entries",
		})
	}

	components := h.service.Resolve(c.Context(), entries)
	l.Info("Bill resolved",
		zap.Int("entries", len(entries)),
		zap.Int("components", len(components)),
	)
	return c.JSON(components)
}
