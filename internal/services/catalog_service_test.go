package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"niknaks/internal/repos"
	"niknaks/internal/services"
)

func seededDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	db := seededDB(t)
	return services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))
}

func TestCatalogEnrichment(t *testing.T) {
	svc := newCatalog(t)

	views, err := svc.ListProducts(repos.ProductFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 6 {
		t.Fatalf("want 6 products, got %d", len(views))
	}
	for _, v := range views {
		if v.HeroImage == "" {
			t.Fatalf("%s: empty hero image", v.Slug)
		}
		if len(v.Images) > 0 && v.HeroImage != v.Images[0].ImageURL {
			t.Fatalf("%s: hero must be the first gallery image", v.Slug)
		}
	}
}

func TestCatalogSeasonal(t *testing.T) {
	svc := newCatalog(t)

	views, err := svc.ListSeasonal()
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 2 {
		t.Fatalf("want 2 seasonal pieces, got %d", len(views))
	}
	for _, v := range views {
		if !v.Seasonal {
			t.Fatalf("non-seasonal piece in seasonal listing: %s", v.Slug)
		}
	}
}

func TestCatalogRelated(t *testing.T) {
	svc := newCatalog(t)

	p, err := svc.GetProduct("riverstone-serving-tray")
	if err != nil {
		t.Fatal(err)
	}
	related, err := svc.Related(p.Product, 3)
	if err != nil {
		t.Fatal(err)
	}
	// Trays has a single product, so nothing related.
	if len(related) != 0 {
		t.Fatalf("want no related pieces, got %d", len(related))
	}

	if _, err := svc.GetProduct("does-not-exist"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCatalogAvailability(t *testing.T) {
	svc := newCatalog(t)

	info, err := svc.Availability("cosmic-mica-earrings")
	if err != nil {
		t.Fatal(err)
	}
	if info.Status != "in_stock" || info.Lead != "" {
		t.Fatalf("want in_stock with no lead, got %+v", info)
	}

	info, err = svc.Availability("riverstone-serving-tray")
	if err != nil {
		t.Fatal(err)
	}
	if info.Status != "made_to_order" || info.Lead == "" {
		t.Fatalf("made-to-order pieces carry a lead time, got %+v", info)
	}

	if _, err := svc.Availability("nope"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestIntakeSubmitAndSubscribe(t *testing.T) {
	db := seededDB(t)
	intakeRepo := repos.NewIntakeRepo(db)
	svc := services.NewIntakeService(intakeRepo)

	id, err := svc.SubmitCustomRequest(services.CustomRequestInput{
		FullName:    "Jo Maker",
		Email:       "jo@example.com",
		PieceType:   "tray",
		Description: "A riverstone-style tray with my dog's name in gold leaf.",
		Budget:      "under 200",
	})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("no request id")
	}
	stored, err := intakeRepo.GetCustomRequest(id)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Email != "jo@example.com" {
		t.Fatalf("stored request: %+v", stored)
	}

	// Bad submissions are rejected before touching storage.
	if _, err := svc.SubmitCustomRequest(services.CustomRequestInput{
		FullName: "Jo", Email: "not-an-email", Description: "long enough text here",
	}); err == nil {
		t.Fatal("want error for bad email")
	}
	if _, err := svc.SubmitCustomRequest(services.CustomRequestInput{
		FullName: "Jo", Email: "jo@example.com", Description: "short",
	}); err == nil {
		t.Fatal("want error for short description")
	}

	// Subscribing twice keeps one row.
	if err := svc.Subscribe("jo@example.com", ""); err != nil {
		t.Fatal(err)
	}
	if err := svc.Subscribe("jo@example.com", "17101"); err != nil {
		t.Fatal(err)
	}
	n, err := intakeRepo.CountSubscribers()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want 1 subscriber, got %d", n)
	}
	if err := svc.Subscribe("jo@example.com", "abc"); err == nil {
		t.Fatal("want error for bad zip")
	}
}

func TestMediaGroups(t *testing.T) {
	db := seededDB(t)
	svc := services.NewMediaService(repos.NewVideoRepo(db))

	groups, err := svc.VideoGroups()
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 4 {
		t.Fatalf("want 4 groups, got %d", len(groups))
	}
}
