package repos

import (
	"niknaks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// List returns reviews in insertion order. limit <= 0 returns everything.
func (r *ReviewRepo) List(limit int) ([]domain.Review, error) {
	out := []domain.Review{}
	if limit > 0 {
		err := r.db.Select(&out, `
		  SELECT id, quote, name, piece_ref
		  FROM review ORDER BY id LIMIT ?
		`, limit)
		return out, err
	}
	err := r.db.Select(&out, `
	  SELECT id, quote, name, piece_ref
	  FROM review ORDER BY id
	`)
	return out, err
}
