package models

import "time"

type DepositStatus string

const (
	DepositPending  DepositStatus = "pending"
	DepositVerified DepositStatus = "verified"
	DepositRejected DepositStatus = "rejected"
)

func (s DepositStatus) Valid() bool {
	switch s {
	case DepositPending, DepositVerified, DepositRejected:
		return true
	}
	return false
}

// CanTransition reports whether a deposit may move from s to next.
// Both verified and rejected are terminal.
func (s DepositStatus) CanTransition(next DepositStatus) bool {
	return s == DepositPending && (next == DepositVerified || next == DepositRejected)
}

const (
	NetworkTRC20 = "TRC20"
	NetworkBEP20 = "BEP20"
)

const (
	MinDepositAmount  = 50.0
	MaxProofImageSize = 5 * 1024 * 1024
)

// Deposit is a submitted proof of an off-chain USDT transfer. Rows are
// created by users, mutated only by admin verification and never deleted.
type Deposit struct {
	ID              int64         `json:"id" db:"id"`
	UserID          int64         `json:"user_id" db:"user_id"`
	ReferrerID      *int64        `json:"referrer_id,omitempty" db:"referrer_id"`
	Amount          float64       `json:"amount" db:"amount"`
	Network         string        `json:"network" db:"network"`
	ImageURL        string        `json:"image_url" db:"image_url"`
	TransactionHash string        `json:"transaction_hash" db:"transaction_hash"`
	Status          DepositStatus `json:"status" db:"status"`
	AdminNotes      string        `json:"admin_notes" db:"admin_notes"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// DepositWithUser joins the submitter's (and referrer's) profile for admin listings.
type DepositWithUser struct {
	Deposit
	UserName      string  `json:"user_name" db:"user_name"`
	UserEmail     string  `json:"user_email" db:"user_email"`
	ReferrerName  *string `json:"referrer_name,omitempty" db:"referrer_name"`
	ReferrerEmail *string `json:"referrer_email,omitempty" db:"referrer_email"`
}

type UpdateDepositInput struct {
	Status     DepositStatus `json:"status" binding:"required"`
	AdminNotes string        `json:"adminNotes"`
}
