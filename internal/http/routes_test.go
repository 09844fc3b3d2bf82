package handlers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"niknaks/internal/http/handlers"
	applog "niknaks/internal/log"
	"niknaks/internal/repos"
)

// newSiteApp wires the routes the way main does, minus rate limiting and
// CSRF so tests can POST directly.
func newSiteApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
		},
	})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db)
	app.Get("/", deps.PageHandler.Home)
	app.Get("/reviews", deps.PageHandler.Reviews)
	app.Get("/visit", deps.PageHandler.Visit)
	app.Get("/visit/:slug", deps.PageHandler.City)
	app.Get("/videos", deps.MediaHandler.Videos)
	shop := app.Group("/shop")
	shop.Get("/", deps.ShopHandler.List)
	shop.Get("/limited", deps.ShopHandler.Limited)
	shop.Get("/search", deps.ShopHandler.Search)
	shop.Get("/category/:slug", deps.ShopHandler.Category)
	shop.Get("/product/:slug", deps.ShopHandler.Detail)
	custom := app.Group("/custom")
	custom.Get("/start", deps.CustomHandler.IntakeForm)
	custom.Post("/start", deps.CustomHandler.IntakeSubmit)
	api := app.Group("/api/v1")
	api.Get("/availability", deps.AvailabilityHandler.Check)

	return app
}

func body(t *testing.T, app *fiber.App, method, target string, form url.Values) (int, string) {
	t.Helper()
	if form != nil {
		r := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(r)
		if err != nil {
			t.Fatalf("%s %s: %v", method, target, err)
		}
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(b)
	}
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestHomeRenders(t *testing.T) {
	app := newSiteApp(t)
	status, s := body(t, app, "GET", "/", nil)
	if status != 200 {
		t.Fatalf("want 200, got %d", status)
	}
	if !strings.Contains(s, "Earrings") || !strings.Contains(s, "Limited Drops") {
		t.Fatalf("home missing catalog content: %s", s)
	}
}

func TestProductPageAndNotFound(t *testing.T) {
	app := newSiteApp(t)

	status, s := body(t, app, "GET", "/shop/product/cosmic-mica-earrings", nil)
	if status != 200 {
		t.Fatalf("want 200, got %d", status)
	}
	if !strings.Contains(s, "Cosmic Mica Earrings") || !strings.Contains(s, "Engraving available") {
		t.Fatalf("product page incomplete: %s", s)
	}

	status, s = body(t, app, "GET", "/shop/product/does-not-exist", nil)
	if status != 404 {
		t.Fatalf("want 404, got %d", status)
	}
	if !strings.Contains(s, "no longer available") {
		t.Fatalf("missing friendly message: %s", s)
	}
}

func TestCategoryPageAndNotFound(t *testing.T) {
	app := newSiteApp(t)

	status, s := body(t, app, "GET", "/shop/category/earrings", nil)
	if status != 200 || !strings.Contains(s, "Cosmic Mica Earrings") {
		t.Fatalf("category page: %d %s", status, s)
	}
	status, _ = body(t, app, "GET", "/shop/category/nope", nil)
	if status != 404 {
		t.Fatalf("want 404, got %d", status)
	}
}

func TestSearchStates(t *testing.T) {
	app := newSiteApp(t)

	// Empty query renders the blank search page.
	status, _ := body(t, app, "GET", "/shop/search", nil)
	if status != 200 {
		t.Fatalf("want 200, got %d", status)
	}

	status, s := body(t, app, "GET", "/shop/search?q=tray", nil)
	if status != 200 {
		t.Fatalf("want 200, got %d", status)
	}
	if !strings.Contains(s, "Riverstone Serving Tray") || !strings.Contains(s, "Ember Ashtray") {
		t.Fatalf("search results incomplete: %s", s)
	}

	// No hits is still a 200 with an empty listing.
	status, s = body(t, app, "GET", "/shop/search?q=zzzz", nil)
	if status != 200 || !strings.Contains(s, "0 result") {
		t.Fatalf("empty search: %d %s", status, s)
	}

	// Disallowed characters are rejected.
	status, _ = body(t, app, "GET", "/shop/search?q=%3Cscript%3E", nil)
	if status != 400 {
		t.Fatalf("want 400, got %d", status)
	}
}

func TestCityPages(t *testing.T) {
	app := newSiteApp(t)

	status, s := body(t, app, "GET", "/visit/harrisburg", nil)
	if status != 200 || !strings.Contains(s, "Harrisburg Studio") {
		t.Fatalf("city page: %d %s", status, s)
	}
	status, _ = body(t, app, "GET", "/visit/philadelphia", nil)
	if status != 404 {
		t.Fatalf("want 404, got %d", status)
	}
}

func TestVideosPage(t *testing.T) {
	app := newSiteApp(t)
	status, s := body(t, app, "GET", "/videos", nil)
	if status != 200 {
		t.Fatalf("want 200, got %d", status)
	}
	for _, title := range []string{"Glow Pour Setup", "Demold Moment", "Finishing Pass", "Studio Tour"} {
		if !strings.Contains(s, title) {
			t.Fatalf("missing video %q: %s", title, s)
		}
	}
}

func TestAvailabilityAPI(t *testing.T) {
	app := newSiteApp(t)

	status, s := body(t, app, "GET", "/api/v1/availability?piece=riverstone-serving-tray", nil)
	if status != 200 {
		t.Fatalf("want 200, got %d", status)
	}
	var info struct {
		Status string `json:"status"`
		Lead   string `json:"lead"`
	}
	if err := json.Unmarshal([]byte(s), &info); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if info.Status != "made_to_order" || info.Lead == "" {
		t.Fatalf("availability: %+v", info)
	}

	status, _ = body(t, app, "GET", "/api/v1/availability", nil)
	if status != 400 {
		t.Fatalf("want 400 for missing piece, got %d", status)
	}
	status, _ = body(t, app, "GET", "/api/v1/availability?piece=nope", nil)
	if status != 404 {
		t.Fatalf("want 404 for unknown piece, got %d", status)
	}
}

func TestIntakeSubmission(t *testing.T) {
	app := newSiteApp(t)

	form := url.Values{}
	form.Set("full_name", "Jo Maker")
	form.Set("email", "jo@example.com")
	form.Set("piece_type", "tray")
	form.Set("description", "A riverstone-style tray with gold leaf initials.")
	status, s := body(t, app, "POST", "/custom/start", form)
	if status != 200 || !strings.Contains(s, "Custom request received") {
		t.Fatalf("intake submit: %d %s", status, s)
	}

	bad := url.Values{}
	bad.Set("full_name", "Jo")
	bad.Set("email", "nope")
	bad.Set("description", "short")
	status, _ = body(t, app, "POST", "/custom/start", bad)
	if status != 400 {
		t.Fatalf("want 400 for invalid intake, got %d", status)
	}
}
