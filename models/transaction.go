package models

import "time"

const (
	TxTypeDeposit      = "deposit"
	TxTypeWithdrawal   = "withdrawal"
	TxTypeLevel1Income = "level1_income"
	TxTypeLevel2Income = "level2_income"
	TxTypeReward       = "reward"
)

// Transaction is an append-only ledger entry written whenever a balance changes.
type Transaction struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Type        string    `json:"type" db:"type"`
	Amount      float64   `json:"amount" db:"amount"`
	Credit      float64   `json:"credit" db:"credit"`
	Debit       float64   `json:"debit" db:"debit"`
	Balance     float64   `json:"balance" db:"balance"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}
