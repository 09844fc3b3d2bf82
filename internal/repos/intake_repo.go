package repos

import (
	"niknaks/internal/domain"

	"github.com/jmoiron/sqlx"
)

// IntakeRepo stores visitor submissions (custom-order requests and mailing
// list signups). These tables are outside the catalog reset: a schema bump
// never discards them.
type IntakeRepo struct{ db *sqlx.DB }

func NewIntakeRepo(db *sqlx.DB) *IntakeRepo { return &IntakeRepo{db: db} }

func (r *IntakeRepo) InsertCustomRequest(req domain.CustomRequest) error {
	_, err := r.db.Exec(`
	  INSERT INTO custom_request(id, full_name, email, piece_type, description, budget)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, req.ID, req.FullName, req.Email, req.PieceType, req.Description, req.Budget)
	return err
}

func (r *IntakeRepo) GetCustomRequest(id string) (domain.CustomRequest, error) {
	var req domain.CustomRequest
	err := r.db.Get(&req, `
	  SELECT id, full_name, email, piece_type, description, budget, created_at
	  FROM custom_request WHERE id = ?
	`, id)
	if isNoRows(err) {
		return domain.CustomRequest{}, ErrNotFound
	}
	return req, err
}

// UpsertSubscriber records an email once; re-subscribing updates the ZIP if a
// new one was given.
func (r *IntakeRepo) UpsertSubscriber(email, zip string) error {
	_, err := r.db.Exec(`
	  INSERT INTO subscriber(email, zip) VALUES(?, ?)
	  ON CONFLICT(email) DO UPDATE SET zip = CASE WHEN excluded.zip != '' THEN excluded.zip ELSE subscriber.zip END
	`, email, zip)
	return err
}

func (r *IntakeRepo) CountSubscribers() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM subscriber`)
	return n, err
}
