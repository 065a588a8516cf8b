package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mahimamj/bdspro/models"
)

const userColumns = `user_id, name, email, password_hash, referral_code, referrer_id,
	account_balance, total_earning, rewards, phone, created_at, updated_at`

type AuthPostgres struct {
	db *sqlx.DB
}

func NewAuthPostgres(db *sqlx.DB) *AuthPostgres {
	return &AuthPostgres{db: db}
}

func (r *AuthPostgres) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrNotFound
	}
	return user, err
}

func (r *AuthPostgres) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrNotFound
	}
	return user, err
}

func (r *AuthPostgres) GetUserByReferralCode(ctx context.Context, code string) (models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE referral_code = $1`
	err := r.db.GetContext(ctx, &user, query, code)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrNotFound
	}
	return user, err
}

func (r *AuthPostgres) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE referral_code = $1)`, code)
	return exists, err
}

func (r *AuthPostgres) CreateUser(ctx context.Context, user models.User) (int64, error) {
	var id int64
	query := `
		INSERT INTO users (name, email, password_hash, referral_code, referrer_id,
			account_balance, total_earning, rewards, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, 0, 0, $6, NOW(), NOW())
		RETURNING user_id
	`
	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.ReferralCode,
		user.ReferrerID,
		user.Phone,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert user")
	}
	return id, nil
}
