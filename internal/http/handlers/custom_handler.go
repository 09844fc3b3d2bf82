package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "niknaks/internal/log"
	"niknaks/internal/repos"
	"niknaks/internal/services"
)

// CustomHandler drives the custom-order section: pitch page, intake form,
// inspiration gallery.
type CustomHandler struct {
	Catalog *services.CatalogService
	Intake  *services.IntakeService
}

func (h *CustomHandler) HowItWorks(c *fiber.Ctx) error {
	return render(c, "custom_how", nil)
}

func (h *CustomHandler) IntakeForm(c *fiber.Ctx) error {
	return render(c, "custom_intake", nil)
}

func (h *CustomHandler) IntakeSubmit(c *fiber.Ctx) error {
	in := services.CustomRequestInput{
		FullName:    c.FormValue("full_name"),
		Email:       c.FormValue("email"),
		PieceType:   c.FormValue("piece_type"),
		Description: c.FormValue("description"),
		Budget:      c.FormValue("budget"),
	}
	id, err := h.Intake.SubmitCustomRequest(in)
	if err != nil {
		applog.Security(c, "intake.reject", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).Render("custom_intake", fiber.Map{
			"Err": "Please check the form and try again.",
		})
	}
	applog.Audit(c, "intake.received", map[string]any{"id": id})
	return render(c, "custom_intake", fiber.Map{"Submitted": true})
}

func (h *CustomHandler) Inspiration(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(repos.ProductFilter{})
	if err != nil {
		applog.Error(c, "inspiration.error", err, nil)
		return err
	}
	return render(c, "custom_inspiration", fiber.Map{"Products": products})
}
