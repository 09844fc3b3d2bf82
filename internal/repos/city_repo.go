package repos

import (
	"niknaks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CityRepo struct{ db *sqlx.DB }

func NewCityRepo(db *sqlx.DB) *CityRepo { return &CityRepo{db: db} }

func (r *CityRepo) List() ([]domain.CityPage, error) {
	out := []domain.CityPage{}
	err := r.db.Select(&out, `
	  SELECT id, slug, title, intro, directions, hours
	  FROM city_page ORDER BY id
	`)
	return out, err
}

func (r *CityRepo) GetBySlug(slug string) (domain.CityPage, error) {
	var cp domain.CityPage
	err := r.db.Get(&cp, `
	  SELECT id, slug, title, intro, directions, hours
	  FROM city_page WHERE slug = ?
	`, slug)
	if isNoRows(err) {
		return domain.CityPage{}, ErrNotFound
	}
	return cp, err
}
