package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "niknaks/internal/log"
)

// CheckoutHandler is a stub flow: the cart lives client-side and no payment
// processor is wired up.
type CheckoutHandler struct{}

func (h *CheckoutHandler) Cart(c *fiber.Ctx) error {
	return render(c, "cart", nil)
}

func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	return render(c, "checkout", nil)
}

func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	applog.Audit(c, "checkout.stub", nil)
	return c.Redirect("/checkout/success")
}

func (h *CheckoutHandler) Success(c *fiber.Ctx) error {
	return render(c, "checkout_success", nil)
}

// APIAddToCart backs the add-to-cart button; the count echoes back for the
// header badge while the real cart stays in the browser.
func (h *CheckoutHandler) APIAddToCart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"count": 1})
}
