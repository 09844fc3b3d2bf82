package repos

import (
	"niknaks/internal/domain"

	"github.com/jmoiron/sqlx"
)

type VideoRepo struct{ db *sqlx.DB }

func NewVideoRepo(db *sqlx.DB) *VideoRepo { return &VideoRepo{db: db} }

// ListGrouped returns every video bucketed by its category, groups in
// category order and titles sorted within each group.
func (r *VideoRepo) ListGrouped() ([]domain.VideoGroup, error) {
	rows := []domain.Video{}
	if err := r.db.Select(&rows, `
	  SELECT id, slug, title, category, thumbnail_url, video_url
	  FROM video ORDER BY category, title
	`); err != nil {
		return nil, err
	}

	groups := []domain.VideoGroup{}
	for _, v := range rows {
		if n := len(groups); n == 0 || groups[n-1].Category != v.Category {
			groups = append(groups, domain.VideoGroup{Category: v.Category})
		}
		last := &groups[len(groups)-1]
		last.Videos = append(last.Videos, v)
	}
	return groups, nil
}
