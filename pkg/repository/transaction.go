package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mahimamj/bdspro/models"
)

type TransactionPostgres struct {
	db *sqlx.DB
}

func NewTransactionPostgres(db *sqlx.DB) *TransactionPostgres {
	return &TransactionPostgres{db: db}
}

func (r *TransactionPostgres) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	query := `
		SELECT id, user_id, type, amount, credit, debit, balance, description, status, timestamp
		FROM transactions
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`
	err := r.db.SelectContext(ctx, &transactions, query, userID)
	return transactions, err
}
