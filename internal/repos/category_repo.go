package repos

import (
	"niknaks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `
	  SELECT id, slug, name, description, hero_image
	  FROM category
	  ORDER BY name
	`)
	return out, err
}

func (r *CategoryRepo) GetBySlug(slug string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT id, slug, name, description, hero_image
	  FROM category
	  WHERE slug = ?
	`, slug)
	if isNoRows(err) {
		return domain.Category{}, ErrNotFound
	}
	return c, err
}
