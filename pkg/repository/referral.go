package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mahimamj/bdspro/models"
)

type ReferralPostgres struct {
	db *sqlx.DB
}

func NewReferralPostgres(db *sqlx.DB) *ReferralPostgres {
	return &ReferralPostgres{db: db}
}

// Level1Referrals returns users directly referred by userID together with
// their verified deposit totals. Only verified deposits count towards the
// invested total.
func (r *ReferralPostgres) Level1Referrals(ctx context.Context, userID int64) ([]models.ReferralRow, error) {
	rows := []models.ReferralRow{}
	query := `
		SELECT u.user_id, u.name, u.email, u.created_at,
			COALESCE(SUM(d.amount), 0) AS total_invested,
			COUNT(d.id) AS deposit_count
		FROM users u
		LEFT JOIN deposits d ON u.user_id = d.user_id AND d.status = 'verified'
		WHERE u.referrer_id = $1
		GROUP BY u.user_id, u.name, u.email, u.created_at
		ORDER BY u.created_at DESC
	`
	err := r.db.SelectContext(ctx, &rows, query, userID)
	if err != nil {
		return nil, errors.Wrap(err, "select level 1 referrals")
	}
	return rows, nil
}

// Level2Referrals returns users referred by userID's direct referrals,
// carrying the intermediary's name.
func (r *ReferralPostgres) Level2Referrals(ctx context.Context, userID int64) ([]models.ReferralRow, error) {
	rows := []models.ReferralRow{}
	query := `
		SELECT u2.user_id, u2.name, u2.email, u2.created_at,
			COALESCE(SUM(d.amount), 0) AS total_invested,
			COUNT(d.id) AS deposit_count,
			u1.name AS level1_referral_name
		FROM users u1
		JOIN users u2 ON u2.referrer_id = u1.user_id
		LEFT JOIN deposits d ON u2.user_id = d.user_id AND d.status = 'verified'
		WHERE u1.referrer_id = $1
		GROUP BY u2.user_id, u2.name, u2.email, u2.created_at, u1.name
		ORDER BY u2.created_at DESC
	`
	err := r.db.SelectContext(ctx, &rows, query, userID)
	if err != nil {
		return nil, errors.Wrap(err, "select level 2 referrals")
	}
	return rows, nil
}

// ReferrerName resolves the name of the user who referred userID, nil when
// the user has no referrer.
func (r *ReferralPostgres) ReferrerName(ctx context.Context, userID int64) (*string, error) {
	var name sql.NullString
	query := `
		SELECT r.name
		FROM users u
		JOIN users r ON u.referrer_id = r.user_id
		WHERE u.user_id = $1
	`
	err := r.db.GetContext(ctx, &name, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "select referrer name")
	}
	if !name.Valid {
		return nil, nil
	}
	return &name.String, nil
}
