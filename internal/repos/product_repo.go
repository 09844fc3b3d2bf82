package repos

import (
	"strings"

	"niknaks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// ProductFilter narrows List. Zero value means no filtering. A CategorySlug
// of "all" is the storefront's explicit everything filter and behaves like
// empty.
type ProductFilter struct {
	CategorySlug string
	LimitedOnly  *bool
	SearchTerm   string
}

const productColumns = `
  p.id, p.slug, p.name, p.category_id, p.description, p.price,
  p.made_to_order, p.limited_drop, p.seasonal, p.bundle_eligible,
  p.personalization_schema, p.availability, p.options,
  c.slug AS category_slug, c.name AS category_name`

// List returns products joined with their category, AND-combining whichever
// filters are set. Limited drops sort first, then seasonal, then name.
func (r *ProductRepo) List(f ProductFilter) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if f.CategorySlug != "" && f.CategorySlug != "all" {
		where += ` AND c.slug = ?`
		args = append(args, f.CategorySlug)
	}
	if f.LimitedOnly != nil {
		where += ` AND p.limited_drop = ?`
		args = append(args, *f.LimitedOnly)
	}
	if f.SearchTerm != "" {
		where += ` AND (LOWER(p.name) LIKE ? OR LOWER(p.description) LIKE ?)`
		like := "%" + strings.ToLower(f.SearchTerm) + "%"
		args = append(args, like, like)
	}

	sql := `
	  SELECT` + productColumns + `
	  FROM product p
	  JOIN category c ON c.id = p.category_id
	  WHERE ` + where + `
	  ORDER BY p.limited_drop DESC, p.seasonal DESC, p.name`

	out := []domain.Product{}
	err := r.db.Select(&out, sql, args...)
	return out, err
}

func (r *ProductRepo) GetBySlug(slug string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT`+productColumns+`
	  FROM product p
	  JOIN category c ON c.id = p.category_id
	  WHERE p.slug = ?
	`, slug)
	if isNoRows(err) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

// Images returns a product's gallery ordered by position, then id.
func (r *ProductRepo) Images(productID int64) ([]domain.ProductImage, error) {
	out := []domain.ProductImage{}
	err := r.db.Select(&out, `
	  SELECT id, product_id, image_url, alt_text, position
	  FROM product_image
	  WHERE product_id = ?
	  ORDER BY position, id
	`, productID)
	return out, err
}
