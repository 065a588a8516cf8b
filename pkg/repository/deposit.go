package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mahimamj/bdspro/models"
)

type DepositPostgres struct {
	db *sqlx.DB
}

func NewDepositPostgres(db *sqlx.DB) *DepositPostgres {
	return &DepositPostgres{db: db}
}

func (r *DepositPostgres) CreateDeposit(ctx context.Context, d models.Deposit) (int64, error) {
	var id int64
	query := `
		INSERT INTO deposits (user_id, referrer_id, amount, network, image_url,
			transaction_hash, status, admin_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '', NOW(), NOW())
		RETURNING id
	`
	err := r.db.QueryRowContext(
		ctx,
		query,
		d.UserID,
		d.ReferrerID,
		d.Amount,
		d.Network,
		d.ImageURL,
		d.TransactionHash,
		d.Status,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert deposit")
	}
	return id, nil
}

func (r *DepositPostgres) GetDeposit(ctx context.Context, id int64) (models.Deposit, error) {
	var d models.Deposit
	query := `
		SELECT id, user_id, referrer_id, amount, network, image_url,
			transaction_hash, status, admin_notes, created_at, updated_at
		FROM deposits WHERE id = $1
	`
	err := r.db.GetContext(ctx, &d, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Deposit{}, models.ErrNotFound
	}
	return d, err
}

func (r *DepositPostgres) ListDepositsByEmail(ctx context.Context, email string) ([]models.Deposit, error) {
	deposits := []models.Deposit{}
	query := `
		SELECT d.id, d.user_id, d.referrer_id, d.amount, d.network, d.image_url,
			d.transaction_hash, d.status, d.admin_notes, d.created_at, d.updated_at
		FROM deposits d
		JOIN users u ON d.user_id = u.user_id
		WHERE u.email = $1
		ORDER BY d.created_at DESC
	`
	err := r.db.SelectContext(ctx, &deposits, query, email)
	return deposits, err
}

func (r *DepositPostgres) ListDeposits(ctx context.Context, status models.DepositStatus) ([]models.DepositWithUser, error) {
	deposits := []models.DepositWithUser{}
	query := `
		SELECT d.id, d.user_id, d.referrer_id, d.amount, d.network, d.image_url,
			d.transaction_hash, d.status, d.admin_notes, d.created_at, d.updated_at,
			u1.name AS user_name, u1.email AS user_email,
			u2.name AS referrer_name, u2.email AS referrer_email
		FROM deposits d
		JOIN users u1 ON d.user_id = u1.user_id
		LEFT JOIN users u2 ON d.referrer_id = u2.user_id
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE d.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY d.created_at DESC`
	err := r.db.SelectContext(ctx, &deposits, query, args...)
	return deposits, err
}

// VerifyDeposit locks the deposit row, applies the status change and, when the
// deposit is approved, credits the owner and appends the ledger entry. The
// three writes commit together so a verified deposit always has exactly one
// matching credit.
func (r *DepositPostgres) VerifyDeposit(ctx context.Context, id int64, status models.DepositStatus, adminNotes string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	var d models.Deposit
	err = tx.GetContext(ctx, &d,
		`SELECT id, user_id, amount, status FROM deposits WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "select deposit for update")
	}
	if !d.Status.CanTransition(status) {
		return models.ErrAlreadyProcessed
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE deposits SET status = $1, admin_notes = $2, updated_at = NOW() WHERE id = $3`,
		status, adminNotes, id)
	if err != nil {
		return errors.Wrap(err, "update deposit status")
	}

	if status == models.DepositVerified {
		var balance float64
		err = tx.QueryRowContext(ctx,
			`UPDATE users SET account_balance = account_balance + $1, updated_at = NOW()
			 WHERE user_id = $2 RETURNING account_balance`,
			d.Amount, d.UserID).Scan(&balance)
		if err != nil {
			return errors.Wrap(err, "credit account balance")
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO transactions (user_id, type, amount, credit, debit, balance, description, status, timestamp)
			 VALUES ($1, $2, $3, $4, 0, $5, $6, 'completed', NOW())`,
			d.UserID, models.TxTypeDeposit, d.Amount, d.Amount, balance,
			fmt.Sprintf("Deposit #%d verified", id))
		if err != nil {
			return errors.Wrap(err, "insert deposit transaction")
		}
	}

	return tx.Commit()
}
