package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "niknaks/internal/log"
	"niknaks/internal/repos"
	"niknaks/internal/services"
	"niknaks/internal/validate"
)

type ShopHandler struct {
	Catalog *services.CatalogService
}

func (h *ShopHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(repos.ProductFilter{})
	if err != nil {
		applog.Error(c, "shop.list.error", err, nil)
		return err
	}
	return h.withCategories(c, "shop", fiber.Map{"Title": "All Products", "Products": products})
}

func (h *ShopHandler) Limited(c *fiber.Ctx) error {
	limited := true
	products, err := h.Catalog.ListProducts(repos.ProductFilter{LimitedOnly: &limited})
	if err != nil {
		applog.Error(c, "shop.limited.error", err, nil)
		return err
	}
	return h.withCategories(c, "shop", fiber.Map{"Title": "Limited Drops", "Products": products})
}

func (h *ShopHandler) Seasonal(c *fiber.Ctx) error {
	products, err := h.Catalog.ListSeasonal()
	if err != nil {
		applog.Error(c, "shop.seasonal.error", err, nil)
		return err
	}
	return h.withCategories(c, "shop", fiber.Map{"Title": "Seasonal Highlights", "Products": products})
}

func (h *ShopHandler) Category(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return notFound(c, "We don't have that collection")
	}
	cat, err := h.Catalog.GetCategory(slug)
	if errors.Is(err, repos.ErrNotFound) {
		return notFound(c, "We don't have that collection")
	}
	if err != nil {
		applog.Error(c, "shop.category.error", err, nil)
		return err
	}
	products, err := h.Catalog.ListProducts(repos.ProductFilter{CategorySlug: slug})
	if err != nil {
		applog.Error(c, "shop.category.error", err, nil)
		return err
	}
	return h.withCategories(c, "category", fiber.Map{"Category": cat, "Products": products})
}

func (h *ShopHandler) Detail(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return notFound(c, "This piece is no longer available")
	}
	p, err := h.Catalog.GetProduct(slug)
	if errors.Is(err, repos.ErrNotFound) {
		return notFound(c, "This piece is no longer available")
	}
	if err != nil {
		applog.Error(c, "shop.detail.error", err, nil)
		return err
	}
	related, err := h.Catalog.Related(p.Product, 3)
	if err != nil {
		applog.Error(c, "shop.detail.error", err, nil)
		return err
	}
	return render(c, "product", fiber.Map{
		"P":               p,
		"Personalization": p.Personalization(),
		"Options":         p.PurchaseOptions(),
		"Related":         related,
	})
}

func (h *ShopHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		// Initial page load: empty search state, not an error
		return render(c, "search", fiber.Map{"Q": "", "Products": []any{}, "Count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
			"Q": "", "Products": []any{}, "Count": 0, "Err": "Enter a valid keyword (letters/numbers only)",
		})
	}
	products, err := h.Catalog.ListProducts(repos.ProductFilter{SearchTerm: q})
	if err != nil {
		applog.Error(c, "search.error", err, nil)
		return err
	}
	return render(c, "search", fiber.Map{"Q": q, "Products": products, "Count": len(products)})
}

// withCategories renders a shop page with the category nav injected, the way
// every listing template expects.
func (h *ShopHandler) withCategories(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "shop.categories.error", err, nil)
		return err
	}
	data["Categories"] = cats
	return render(c, tmpl, data)
}
