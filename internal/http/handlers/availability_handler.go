package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "niknaks/internal/log"
	"niknaks/internal/repos"
	"niknaks/internal/services"
	"niknaks/internal/validate"
)

type AvailabilityHandler struct {
	Catalog *services.CatalogService
}

// Check reports a piece's availability as JSON for the product page widget.
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Query("piece"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "piece"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing or invalid piece",
		})
	}
	info, err := h.Catalog.Availability(slug)
	if errors.Is(err, repos.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown piece"})
	}
	if err != nil {
		applog.Error(c, "availability.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not check availability"})
	}
	return c.JSON(info)
}
