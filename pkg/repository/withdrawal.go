package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/mahimamj/bdspro/models"
)

type WithdrawalPostgres struct {
	db *sqlx.DB
}

func NewWithdrawalPostgres(db *sqlx.DB) *WithdrawalPostgres {
	return &WithdrawalPostgres{db: db}
}

func (r *WithdrawalPostgres) CreateWithdrawal(ctx context.Context, w models.Withdrawal) (int64, error) {
	var id int64
	query := `
		INSERT INTO withdrawals (user_id, amount, network, wallet_address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		w.UserID, w.Amount, w.Network, w.WalletAddress, w.Status,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert withdrawal")
	}
	return id, nil
}

func (r *WithdrawalPostgres) GetWithdrawal(ctx context.Context, id int64) (models.Withdrawal, error) {
	var w models.Withdrawal
	query := `
		SELECT id, user_id, amount, network, wallet_address, transaction_uid,
			status, created_at, updated_at
		FROM withdrawals WHERE id = $1
	`
	err := r.db.GetContext(ctx, &w, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Withdrawal{}, models.ErrNotFound
	}
	return w, err
}

func (r *WithdrawalPostgres) ListWithdrawals(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalWithUser, error) {
	withdrawals := []models.WithdrawalWithUser{}
	query := `
		SELECT w.id, w.user_id, w.amount, w.network, w.wallet_address, w.transaction_uid,
			w.status, w.created_at, w.updated_at,
			u.name AS user_name, u.email AS user_email
		FROM withdrawals w
		JOIN users u ON w.user_id = u.user_id
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE w.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY w.created_at DESC`
	err := r.db.SelectContext(ctx, &withdrawals, query, args...)
	return withdrawals, err
}

// UpdateWithdrawal applies a forward-only status change. Approval debits the
// owner's balance and records the debit in the ledger inside the same
// transaction; a balance that dropped below the requested amount since the
// request was made aborts the approval.
func (r *WithdrawalPostgres) UpdateWithdrawal(ctx context.Context, id int64, status models.WithdrawalStatus, transactionUID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	var w models.Withdrawal
	err = tx.GetContext(ctx, &w,
		`SELECT id, user_id, amount, status FROM withdrawals WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "select withdrawal for update")
	}
	if !w.Status.CanTransition(status) {
		return models.ErrIllegalTransition
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE withdrawals SET status = $1, transaction_uid = NULLIF($2, ''), updated_at = NOW() WHERE id = $3`,
		status, transactionUID, id)
	if err != nil {
		return errors.Wrap(err, "update withdrawal status")
	}

	if status == models.WithdrawalApproved {
		var balance float64
		err = tx.QueryRowContext(ctx,
			`UPDATE users SET account_balance = account_balance - $1, updated_at = NOW()
			 WHERE user_id = $2 AND account_balance >= $1 RETURNING account_balance`,
			w.Amount, w.UserID).Scan(&balance)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrInsufficientFunds
		}
		if err != nil {
			return errors.Wrap(err, "debit account balance")
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO transactions (user_id, type, amount, credit, debit, balance, description, status, timestamp)
			 VALUES ($1, $2, $3, 0, $4, $5, $6, 'completed', NOW())`,
			w.UserID, models.TxTypeWithdrawal, w.Amount, w.Amount, balance,
			fmt.Sprintf("Withdrawal #%d approved", id))
		if err != nil {
			return errors.Wrap(err, "insert withdrawal transaction")
		}
	}

	return tx.Commit()
}
