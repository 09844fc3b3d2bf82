package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"niknaks/internal/config"
	"niknaks/internal/http/handlers"
	applog "niknaks/internal/log"
	"niknaks/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		// Without a ContextKey the middleware never stores the token in
		// Locals and rendered forms go out empty.
		ContextKey:     "csrf",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db)

	// Home & editorial pages
	app.Get("/", deps.PageHandler.Home)
	app.Get("/about", deps.PageHandler.About)
	app.Get("/faq", deps.PageHandler.FAQ)
	app.Get("/reviews", deps.PageHandler.Reviews)
	app.Get("/care", deps.PageHandler.Care)
	app.Get("/privacy", deps.PageHandler.Privacy)
	app.Get("/returns", deps.PageHandler.Returns)
	app.Get("/contact", deps.PageHandler.ContactForm)
	app.Post("/contact", deps.PageHandler.ContactSubmit)

	// Visit / city pages
	app.Get("/visit", deps.PageHandler.Visit)
	app.Get("/visit/:slug", deps.PageHandler.City)

	// Shop
	shop := app.Group("/shop")
	shop.Get("/", deps.ShopHandler.List)
	shop.Get("/limited", deps.ShopHandler.Limited)
	shop.Get("/seasonal", deps.ShopHandler.Seasonal)
	shop.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.ShopHandler.Search)
	shop.Get("/category/:slug", deps.ShopHandler.Category)
	shop.Get("/product/:slug", deps.ShopHandler.Detail)

	// Custom orders
	custom := app.Group("/custom")
	custom.Get("/how-it-works", deps.CustomHandler.HowItWorks)
	custom.Get("/start", deps.CustomHandler.IntakeForm)
	custom.Post("/start", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.intake.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("custom_intake", fiber.Map{"Err": "Too many requests. Please try again later."})
		},
	}), deps.CustomHandler.IntakeSubmit)
	custom.Get("/inspiration", deps.CustomHandler.Inspiration)

	// Videos
	app.Get("/videos", deps.MediaHandler.Videos)

	// Checkout stubs
	app.Get("/cart", deps.CheckoutHandler.Cart)
	app.Get("/checkout", deps.CheckoutHandler.Checkout)
	app.Post("/checkout", deps.CheckoutHandler.Place)
	app.Get("/checkout/success", deps.CheckoutHandler.Success)

	// Mailing list
	app.Post("/subscribe", deps.PageHandler.Subscribe)
	app.Post("/subscribe/local", deps.PageHandler.SubscribeLocal)

	// API
	api := app.Group("/api/v1")
	availLimiter := limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|avail"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.availability.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Get("/availability", availLimiter, deps.AvailabilityHandler.Check)
	api.Post("/cart/add", deps.CheckoutHandler.APIAddToCart)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
