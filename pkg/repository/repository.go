package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mahimamj/bdspro/models"
)

type Authorization interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (int64, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
}

type Deposits interface {
	CreateDeposit(ctx context.Context, d models.Deposit) (int64, error)
	GetDeposit(ctx context.Context, id int64) (models.Deposit, error)
	ListDepositsByEmail(ctx context.Context, email string) ([]models.Deposit, error)
	ListDeposits(ctx context.Context, status models.DepositStatus) ([]models.DepositWithUser, error)
	// VerifyDeposit moves a pending deposit to the target status. When the
	// target denotes approval it also credits the owner's balance and appends
	// a ledger row, all in one transaction.
	VerifyDeposit(ctx context.Context, id int64, status models.DepositStatus, adminNotes string) error
}

type Withdrawals interface {
	CreateWithdrawal(ctx context.Context, w models.Withdrawal) (int64, error)
	GetWithdrawal(ctx context.Context, id int64) (models.Withdrawal, error)
	ListWithdrawals(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalWithUser, error)
	// UpdateWithdrawal applies a forward status transition. Approval debits
	// the owner's balance and appends a ledger row in the same transaction.
	UpdateWithdrawal(ctx context.Context, id int64, status models.WithdrawalStatus, transactionUID string) error
}

type Referrals interface {
	Level1Referrals(ctx context.Context, userID int64) ([]models.ReferralRow, error)
	Level2Referrals(ctx context.Context, userID int64) ([]models.ReferralRow, error)
	ReferrerName(ctx context.Context, userID int64) (*string, error)
}

type Transactions interface {
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
}

type Repository struct {
	Authorization
	Deposits
	Withdrawals
	Referrals
	Transactions
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Authorization: NewAuthPostgres(db),
		Deposits:      NewDepositPostgres(db),
		Withdrawals:   NewWithdrawalPostgres(db),
		Referrals:     NewReferralPostgres(db),
		Transactions:  NewTransactionPostgres(db),
	}
}
