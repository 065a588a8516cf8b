package models

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalRejected  WithdrawalStatus = "rejected"
	WithdrawalCompleted WithdrawalStatus = "completed"
)

func (s WithdrawalStatus) Valid() bool {
	switch s {
	case WithdrawalPending, WithdrawalApproved, WithdrawalRejected, WithdrawalCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a withdrawal may move from s to next.
// Status only moves forward: pending -> approved|rejected, approved -> completed.
func (s WithdrawalStatus) CanTransition(next WithdrawalStatus) bool {
	switch s {
	case WithdrawalPending:
		return next == WithdrawalApproved || next == WithdrawalRejected
	case WithdrawalApproved:
		return next == WithdrawalCompleted
	}
	return false
}

type Withdrawal struct {
	ID             int64            `json:"id" db:"id"`
	UserID         int64            `json:"user_id" db:"user_id"`
	Amount         float64          `json:"amount" db:"amount"`
	Network        string           `json:"network" db:"network"`
	WalletAddress  string           `json:"wallet_address" db:"wallet_address"`
	TransactionUID *string          `json:"transaction_uid,omitempty" db:"transaction_uid"`
	Status         WithdrawalStatus `json:"status" db:"status"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

type WithdrawalWithUser struct {
	Withdrawal
	UserName  string `json:"name" db:"user_name"`
	UserEmail string `json:"email" db:"user_email"`
}

type CreateWithdrawalInput struct {
	Amount        float64 `json:"amount" binding:"required"`
	Network       string  `json:"network" binding:"required"`
	WalletAddress string  `json:"walletAddress" binding:"required"`
}

type UpdateWithdrawalInput struct {
	Status         WithdrawalStatus `json:"status" binding:"required"`
	TransactionUID string           `json:"transactionUid"`
}
