package repos

import "github.com/jmoiron/sqlx"

// seed inserts the fixed demonstration catalog. It runs inside the caller's
// transaction so a failure leaves no partial data; duplicate-slug errors here
// mean the baked-in dataset itself is broken and abort startup.
func seed(tx *sqlx.Tx) error {
	categories := []struct {
		Slug, Name, Description, Hero string
	}{
		{"earrings", "Earrings", "Macro sparkle, featherlight feel.",
			"https://images.unsplash.com/photo-1542293787938-4d2226a6767f?auto=format&fit=crop&w=1200&q=80"},
		{"trays", "Trays", "Display-worthy trays with resin clarity.",
			"https://images.unsplash.com/photo-1530023367847-a683933f417f?auto=format&fit=crop&w=1200&q=80"},
		{"ashtrays", "Ashtrays", "Built to look good, made to last.",
			"https://images.unsplash.com/photo-1503602642458-232111445657?auto=format&fit=crop&w=1200&q=80"},
		{"dominoes", "Dominoes", "Game night with a resin glow.",
			"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1200&q=80"},
		{"bottle-openers", "Bottle Openers", "Solid grip with custom inclusions.",
			"https://images.unsplash.com/photo-1527169402691-feff5539e52c?auto=format&fit=crop&w=1200&q=80"},
		{"wearables", "Wearables", "Pins, pendants, and all the ways to carry resin.",
			"https://images.unsplash.com/photo-1518544801976-3e158c89b286?auto=format&fit=crop&w=1200&q=80"},
	}
	for _, c := range categories {
		if _, err := tx.Exec(
			`INSERT INTO category(slug, name, description, hero_image) VALUES(?, ?, ?, ?)`,
			c.Slug, c.Name, c.Description, c.Hero); err != nil {
			return err
		}
	}

	type productRow struct {
		Slug, Name      string
		CategoryID      int64
		Description     string
		Price           float64
		MadeToOrder     bool
		LimitedDrop     bool
		Seasonal        bool
		BundleEligible  bool
		Personalization string
		Availability    string
		Options         string
	}
	products := []productRow{
		{"cosmic-mica-earrings", "Cosmic Mica Earrings", 1,
			"Hand-poured earrings with violet mica, gold leaf, and hypoallergenic hooks.",
			68.0, false, true, false, true,
			`{"engrave": true, "colorways": ["Violet", "Emerald", "Sunset"], "inlays": ["Gold leaf", "Pressed florals"]}`,
			"in_stock",
			`{"sizes": ["Standard"], "inlays": ["Gold leaf", "Pressed florals"], "colorways": ["Violet", "Emerald", "Sunset"]}`},
		{"riverstone-serving-tray", "Riverstone Serving Tray", 2,
			"24-inch tray with riverstone pattern and walnut handles.",
			180.0, true, false, true, false,
			`{"engrave": true, "colorways": ["Glacier", "Amber"], "inlays": ["River rock", "Copper flake"]}`,
			"made_to_order",
			`{"sizes": ["18 inch", "24 inch"], "inlays": ["River rock", "Copper flake"], "colorways": ["Glacier", "Amber"]}`},
		{"ember-ashtray", "Ember Ashtray", 3,
			"Heat-resistant ashtray with copper shimmer and beveled edges.",
			48.0, false, false, false, true,
			`{"engrave": false, "colorways": ["Copper", "Midnight"], "inlays": ["Mica", "Opal fleck"]}`,
			"in_stock",
			`{"sizes": ["Standard"], "colorways": ["Copper", "Midnight"]}`},
		{"aurora-domino-set", "Aurora Domino Set", 4,
			"Double-six domino set with aurora gradient and storage box.",
			125.0, true, false, true, false,
			`{"engrave": true, "colorways": ["Aurora", "Midnight"], "inlays": ["Iridescent flakes"]}`,
			"made_to_order",
			`{"sizes": ["Standard"], "colorways": ["Aurora", "Midnight"]}`},
		{"flora-bottle-opener", "Flora Bottle Opener", 5,
			"Heavyweight opener with embedded dried florals.",
			32.0, false, true, false, false,
			`{"engrave": true, "colorways": ["Garden", "Meadow"], "inlays": ["Florals", "Leaf"]}`,
			"in_stock",
			`{"sizes": ["Standard"], "colorways": ["Garden", "Meadow"]}`},
		{"opal-pendant", "Opal Drift Pendant", 6,
			"Pendant with opal drift and adjustable chain.",
			58.0, false, false, false, true,
			`{"engrave": false, "colorways": ["Opal", "Tide"], "inlays": ["Iridescent"]}`,
			"in_stock",
			`{"sizes": ["Adjustable"], "colorways": ["Opal", "Tide"]}`},
	}
	for _, p := range products {
		if _, err := tx.Exec(`
			INSERT INTO product(
			  slug, name, category_id, description, price,
			  made_to_order, limited_drop, seasonal, bundle_eligible,
			  personalization_schema, availability, options
			) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Slug, p.Name, p.CategoryID, p.Description, p.Price,
			p.MadeToOrder, p.LimitedDrop, p.Seasonal, p.BundleEligible,
			p.Personalization, p.Availability, p.Options); err != nil {
			return err
		}
	}

	images := []struct {
		ProductID int64
		URL, Alt  string
	}{
		{1, "https://images.unsplash.com/photo-1503341504253-dff4815485f1?auto=format&fit=crop&w=900&q=80", "Cosmic earrings on velvet"},
		{1, "https://images.unsplash.com/photo-1522312346375-d1a52e2b99b3?auto=format&fit=crop&w=900&q=80", "Earrings close up"},
		{2, "https://images.unsplash.com/photo-1560448205-4d9b7deb70b9?auto=format&fit=crop&w=900&q=80", "Riverstone tray macro"},
		{3, "https://images.unsplash.com/photo-1470337458703-46ad1756a187?auto=format&fit=crop&w=900&q=80", "Ember ashtray with glow"},
		{4, "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?auto=format&fit=crop&w=900&q=80", "Aurora domino set on table"},
		{5, "https://images.unsplash.com/photo-1517686469429-8bdb88b9cb0b?auto=format&fit=crop&w=900&q=80", "Bottle opener with florals"},
		{6, "https://images.unsplash.com/photo-1529946825183-536aff452f5d?auto=format&fit=crop&w=900&q=80", "Opal pendant detail"},
	}
	for _, img := range images {
		if _, err := tx.Exec(
			`INSERT INTO product_image(product_id, image_url, alt_text) VALUES(?, ?, ?)`,
			img.ProductID, img.URL, img.Alt); err != nil {
			return err
		}
	}

	reviews := []struct {
		Quote, Name, PieceRef string
	}{
		{"Gorgeous detail. The tray catches light like glass.", "A., Harrisburg", "Riverstone Serving Tray"},
		{"They turned my idea into something I want to keep forever.", "M., Camp Hill", "Custom Pendant"},
		{"Insanely thoughtful. The inclusions are perfect.", "J., Carlisle", "Cosmic Mica Earrings"},
		{"Worth the wait. Packaging was stunning.", "S., Mechanicsburg", "Aurora Domino Set"},
		{"Feels like holding a memory.", "T., Harrisburg", "Custom Ashtray"},
	}
	for _, r := range reviews {
		if _, err := tx.Exec(
			`INSERT INTO review(quote, name, piece_ref) VALUES(?, ?, ?)`,
			r.Quote, r.Name, r.PieceRef); err != nil {
			return err
		}
	}

	cityPages := []struct {
		Slug, Title, Intro, Directions, Hours string
	}{
		{"harrisburg", "Harrisburg Studio",
			"Our HQ for limited drops and pickups.",
			"Located off Third Street Market. Parking available in the lot after 5pm.",
			"Fri-Sun 11am-6pm"},
		{"camp-hill", "Camp Hill Pop-ups",
			"Weekend pop-ups with make-and-take minis.",
			"Find us at Market on Market. Street parking available.",
			"Select Saturdays 10am-3pm"},
		{"mechanicsburg", "Mechanicsburg Markets",
			"Seasonal fairs focused on custom commissions.",
			"Hosted at Liberty Commons. Park in the east lot.",
			"First Sundays 12pm-4pm"},
		{"carlisle", "Carlisle Events",
			"Trunk shows with collaborative artists.",
			"Downtown arts corridor near Pomfret Street.",
			"Monthly, see Instagram"},
	}
	for _, cp := range cityPages {
		if _, err := tx.Exec(
			`INSERT INTO city_page(slug, title, intro, directions, hours) VALUES(?, ?, ?, ?, ?)`,
			cp.Slug, cp.Title, cp.Intro, cp.Directions, cp.Hours); err != nil {
			return err
		}
	}

	videos := []struct {
		Slug, Title, Category, Thumb, URL string
	}{
		{"glow-pour", "Glow Pour Setup", "pours",
			"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=900&q=80",
			"https://samplelib.com/lib/preview/mp4/sample-5s.mp4"},
		{"demold-moment", "Demold Moment", "demolds",
			"https://images.unsplash.com/photo-1600508774685-0e7c0f30b7bb?auto=format&fit=crop&w=900&q=80",
			"https://samplelib.com/lib/preview/mp4/sample-10s.mp4"},
		{"finishing-pass", "Finishing Pass", "finishing",
			"https://images.unsplash.com/photo-1582719478181-2cf4eac7ef2b?auto=format&fit=crop&w=900&q=80",
			"https://samplelib.com/lib/preview/mp4/sample-15s.mp4"},
		{"studio-tour", "Studio Tour", "behind-the-scenes",
			"https://images.unsplash.com/photo-1545239351-1141bd82e8a6?auto=format&fit=crop&w=900&q=80",
			"https://samplelib.com/lib/preview/mp4/sample-20s.mp4"},
	}
	for _, v := range videos {
		if _, err := tx.Exec(
			`INSERT INTO video(slug, title, category, thumbnail_url, video_url) VALUES(?, ?, ?, ?, ?)`,
			v.Slug, v.Title, v.Category, v.Thumb, v.URL); err != nil {
			return err
		}
	}

	return nil
}
