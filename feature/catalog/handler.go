package catalog

import (
	"errors"
	"strconv"

	core "craft-calculator/core/catalog"
	"craft-calculator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleGetCatalog)
	group.Get("/meta", h.HandleGetMeta)
	group.Get("/:identifier", h.HandleGetItem)
	group.Post("/:kind", h.HandleAdd)
	group.Put("/:kind/:id", h.HandleUpdate)
	group.Delete("/:kind/:id", h.HandleRemove)
}

// HandleGetCatalog returns the full catalog.
// @Summary Get Catalog
// @Description Get the full catalog document in the interchange shape.
// @Tags catalog
// @Produce json
// @Success 200 {object} core.File "Catalog"
// @Router /catalog [get]
func (h *Handler) HandleGetCatalog(c *fiber.Ctx) error {
	return c.JSON(h.service.Catalog(c.Context()))
}

// HandleGetMeta returns the skill metadata.
// @Summary Get Catalog Metadata
// @Tags catalog
// @Produce json
// @Success 200 {object} core.Meta "Metadata"
// @Router /catalog/meta [get]
func (h *Handler) HandleGetMeta(c *fiber.Ctx) error {
	return c.JSON(h.service.Meta(c.Context()))
}

// HandleGetItem returns one item by id or name.
// @Summary Get Catalog Item
// @Description Look up a single item by numeric id or case-insensitive name.
// @Tags catalog
// @Produce json
// @Param identifier path string true "Item id or name"
// @Success 200 {object} core.Item "Item"
// @Failure 404 {object} map[string]string "Not found (with optional suggestion)"
// @Router /catalog/{identifier} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	identifier := c.Params("identifier")
	l := logger.WithRayID(h.service.logger, c)

	item, suggestion, ok := h.service.Find(c.Context(), identifier)
	if !ok {
		l.Info("Catalog item not found",
			zap.String("identifier", identifier), zap.String("suggestion", suggestion))
		body := fiber.Map{"error": "item not found"}
		if suggestion != "" {
			body["suggestion"] = suggestion
		}
		return c.Status(fiber.StatusNotFound).JSON(body)
	}
	return c.JSON(item)
}

// HandleAdd adds an item to one catalog slice.
// @Summary Add Catalog Item
// @Tags catalog
// @Accept json
// @Produce json
// @Param kind path string true "Catalog kind (raw, intermediate, crafted)"
// @Param item body core.Item true "Item"
// @Success 200 {object} core.Result "Result"
// @Failure 400 {object} core.Result "Validation failure"
// @Failure 409 {object} core.Result "Duplicate id"
// @Router /catalog/{kind} [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	kind, err := core.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var item core.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed item body"})
	}

	res := h.service.Add(c.Context(), kind, item)
	return c.Status(statusFor(res)).JSON(res)
}

// HandleUpdate merges partial updates into an existing item.
// @Summary Update Catalog Item
// @Tags catalog
// @Accept json
// @Produce json
// @Param kind path string true "Catalog kind"
// @Param id path int true "Item id"
// @Param updates body object true "Partial updates"
// @Success 200 {object} core.Result "Result"
// @Failure 404 {object} core.Result "Unknown id"
// @Router /catalog/{kind}/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	kind, err := core.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id must be an integer"})
	}

	var updates map[string]any
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed update body"})
	}

	res := h.service.Update(c.Context(), kind, id, updates)
	return c.Status(statusFor(res)).JSON(res)
}

// HandleRemove deletes an item.
// @Summary Remove Catalog Item
// @Tags catalog
// @Produce json
// @Param kind path string true "Catalog kind"
// @Param id path int true "Item id"
// @Success 200 {object} core.Result "Result with removed item"
// @Failure 404 {object} core.Result "Unknown id"
// @Router /catalog/{kind}/{id} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	kind, err := core.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id must be an integer"})
	}

	res := h.service.Remove(c.Context(), kind, id)
	return c.Status(statusFor(res)).JSON(res)
}

// statusFor maps a gateway result onto an HTTP status.
func statusFor(res core.Result) int {
	if res.Success {
		return fiber.StatusOK
	}
	switch {
	case errors.Is(res.Err, core.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(res.Err, core.ErrDuplicateID):
		return fiber.StatusConflict
	case errors.Is(res.Err, core.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
