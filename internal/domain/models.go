package domain

import "encoding/json"

type Category struct {
	ID          int64  `db:"id"`
	Slug        string `db:"slug"`
	Name        string `db:"name"`
	Description string `db:"description"`
	HeroImage   string `db:"hero_image"`
}

type Product struct {
	ID             int64   `db:"id"`
	Slug           string  `db:"slug"`
	Name           string  `db:"name"`
	CategoryID     int64   `db:"category_id"`
	Description    string  `db:"description"`
	Price          float64 `db:"price"`
	MadeToOrder    bool    `db:"made_to_order"`
	LimitedDrop    bool    `db:"limited_drop"`
	Seasonal       bool    `db:"seasonal"`
	BundleEligible bool    `db:"bundle_eligible"`
	// Raw JSON documents as stored; decode with Personalization/PurchaseOptions.
	PersonalizationJSON string `db:"personalization_schema"`
	Availability        string `db:"availability"` // in_stock | made_to_order
	OptionsJSON         string `db:"options"`
	// Joined in from category on reads.
	CategorySlug string `db:"category_slug"`
	CategoryName string `db:"category_name"`
}

type ProductImage struct {
	ID        int64  `db:"id"`
	ProductID int64  `db:"product_id"`
	ImageURL  string `db:"image_url"`
	AltText   string `db:"alt_text"`
	Position  int    `db:"position"`
}

type Review struct {
	ID       int64  `db:"id"`
	Quote    string `db:"quote"`
	Name     string `db:"name"`
	PieceRef string `db:"piece_ref"`
}

type CityPage struct {
	ID         int64  `db:"id"`
	Slug       string `db:"slug"`
	Title      string `db:"title"`
	Intro      string `db:"intro"`
	Directions string `db:"directions"`
	Hours      string `db:"hours"`
}

type Video struct {
	ID           int64  `db:"id"`
	Slug         string `db:"slug"`
	Title        string `db:"title"`
	Category     string `db:"category"`
	ThumbnailURL string `db:"thumbnail_url"`
	VideoURL     string `db:"video_url"`
}

// VideoGroup keeps videos in category order for templates; a plain map would
// lose it.
type VideoGroup struct {
	Category string
	Videos   []Video
}

// Personalization describes the customization choices offered for a piece.
type Personalization struct {
	Engrave   bool     `json:"engrave"`
	Colorways []string `json:"colorways"`
	Inlays    []string `json:"inlays"`
}

// PurchaseOptions is the options document offered at purchase time.
type PurchaseOptions struct {
	Sizes     []string `json:"sizes"`
	Inlays    []string `json:"inlays"`
	Colorways []string `json:"colorways"`
}

// Personalization decodes the stored personalization document. Malformed or
// empty text yields the zero document; the storage layer never fails on bad
// JSON, decoding is the consumer's problem.
func (p Product) Personalization() Personalization {
	var doc Personalization
	if p.PersonalizationJSON == "" {
		return doc
	}
	if err := json.Unmarshal([]byte(p.PersonalizationJSON), &doc); err != nil {
		return Personalization{}
	}
	return doc
}

// PurchaseOptions decodes the stored options document, zero value on bad JSON.
func (p Product) PurchaseOptions() PurchaseOptions {
	var doc PurchaseOptions
	if p.OptionsJSON == "" {
		return doc
	}
	if err := json.Unmarshal([]byte(p.OptionsJSON), &doc); err != nil {
		return PurchaseOptions{}
	}
	return doc
}

// AvailabilityInfo is what the availability API returns for a piece.
type AvailabilityInfo struct {
	Status string `json:"status"` // in_stock | made_to_order
	Lead   string `json:"lead,omitempty"`
}

// CustomRequest is a persisted custom-order intake submission.
type CustomRequest struct {
	ID          string `db:"id"`
	FullName    string `db:"full_name"`
	Email       string `db:"email"`
	PieceType   string `db:"piece_type"`
	Description string `db:"description"`
	Budget      string `db:"budget"`
	CreatedAt   string `db:"created_at"`
}

// Subscriber is a mailing-list signup, optionally tied to a ZIP for the
// local-drops list.
type Subscriber struct {
	ID        int64  `db:"id"`
	Email     string `db:"email"`
	Zip       string `db:"zip"`
	CreatedAt string `db:"created_at"`
}
