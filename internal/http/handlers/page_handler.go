package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "niknaks/internal/log"
	"niknaks/internal/repos"
	"niknaks/internal/services"
	"niknaks/internal/validate"
)

// PageHandler covers the home page and the static/editorial pages.
type PageHandler struct {
	Catalog *services.CatalogService
	Content *services.ContentService
	Intake  *services.IntakeService
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "home.error", err, nil)
		return err
	}
	limited := true
	drops, err := h.Catalog.ListProducts(repos.ProductFilter{LimitedOnly: &limited})
	if err != nil {
		applog.Error(c, "home.error", err, nil)
		return err
	}
	reviews, err := h.Content.ListReviews(3)
	if err != nil {
		applog.Error(c, "home.error", err, nil)
		return err
	}
	return render(c, "home", fiber.Map{"Categories": cats, "Drops": drops, "Reviews": reviews})
}

func (h *PageHandler) About(c *fiber.Ctx) error   { return render(c, "about", nil) }
func (h *PageHandler) FAQ(c *fiber.Ctx) error     { return render(c, "faq", nil) }
func (h *PageHandler) Care(c *fiber.Ctx) error    { return render(c, "care", nil) }
func (h *PageHandler) Privacy(c *fiber.Ctx) error { return render(c, "privacy", nil) }
func (h *PageHandler) Returns(c *fiber.Ctx) error { return render(c, "returns", nil) }

func (h *PageHandler) Reviews(c *fiber.Ctx) error {
	reviews, err := h.Content.ListReviews(0)
	if err != nil {
		applog.Error(c, "reviews.error", err, nil)
		return err
	}
	return render(c, "reviews", fiber.Map{"Reviews": reviews})
}

func (h *PageHandler) Visit(c *fiber.Ctx) error {
	cities, err := h.Content.ListCityPages()
	if err != nil {
		applog.Error(c, "visit.error", err, nil)
		return err
	}
	return render(c, "visit", fiber.Map{"Cities": cities})
}

func (h *PageHandler) City(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "city"})
		return notFound(c, "We aren't in that city yet")
	}
	city, err := h.Content.GetCityPage(slug)
	if errors.Is(err, repos.ErrNotFound) {
		return notFound(c, "We aren't in that city yet")
	}
	if err != nil {
		applog.Error(c, "city.error", err, nil)
		return err
	}
	return render(c, "city", fiber.Map{"City": city})
}

func (h *PageHandler) ContactForm(c *fiber.Ctx) error {
	return render(c, "contact", nil)
}

func (h *PageHandler) ContactSubmit(c *fiber.Ctx) error {
	in := services.CustomRequestInput{
		FullName:    c.FormValue("full_name"),
		Email:       c.FormValue("email"),
		PieceType:   c.FormValue("subject"),
		Description: c.FormValue("message"),
	}
	id, err := h.Intake.SubmitCustomRequest(in)
	if err != nil {
		applog.Security(c, "contact.reject", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).Render("contact", fiber.Map{
			"Err": "Please check your name, email, and message and try again.",
		})
	}
	if c.FormValue("subscribe_opt_in") != "" {
		if err := h.Intake.Subscribe(in.Email, ""); err != nil {
			applog.Error(c, "contact.subscribe.error", err, nil)
		}
	}
	applog.Audit(c, "contact.received", map[string]any{"id": id})
	return render(c, "contact", fiber.Map{"Submitted": true})
}

// Subscribe handles the footer mailing-list form.
func (h *PageHandler) Subscribe(c *fiber.Ctx) error {
	if err := h.Intake.Subscribe(c.FormValue("email"), ""); err != nil {
		applog.Security(c, "subscribe.reject", map[string]any{"reason": err.Error()})
	}
	return c.Redirect("/")
}

// SubscribeLocal handles the local-drops callout (email + ZIP).
func (h *PageHandler) SubscribeLocal(c *fiber.Ctx) error {
	if err := h.Intake.Subscribe(c.FormValue("email"), c.FormValue("zip")); err != nil {
		applog.Security(c, "subscribe.local.reject", map[string]any{"reason": err.Error()})
	}
	return c.Redirect("/")
}
