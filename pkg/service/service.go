package service

import (
	"context"

	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/filestore"
	"github.com/mahimamj/bdspro/pkg/repository"
)

type Authorization interface {
	Register(ctx context.Context, input models.RegisterInput) (models.AuthResponse, error)
	ParseToken(token string) (models.TokenClaims, error)
}

type Deposits interface {
	Submit(ctx context.Context, input SubmitDepositInput) (models.Deposit, error)
	ListByEmail(ctx context.Context, email string) ([]models.Deposit, error)
	List(ctx context.Context, status models.DepositStatus) ([]models.DepositWithUser, error)
	Verify(ctx context.Context, id int64, input models.UpdateDepositInput) error
}

type Withdrawals interface {
	Create(ctx context.Context, userID int64, input models.CreateWithdrawalInput) (models.Withdrawal, error)
	List(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalWithUser, error)
	Update(ctx context.Context, id int64, input models.UpdateWithdrawalInput) error
}

type Referrals interface {
	Summary(ctx context.Context, userID int64) (models.ReferralSummary, error)
}

type Transactions interface {
	List(ctx context.Context, userID int64) ([]models.Transaction, error)
}

type Rates interface {
	Convert(req models.ConvertRequest) (models.ConvertResponse, error)
}

// Notifier sends best-effort operational mail.
type Notifier interface {
	NotifyAdminNewDeposit(userEmail string, amount float64, network string)
	NotifyDepositVerified(userEmail string, amount float64)
}

type Deps struct {
	FileStore filestore.FileStore
	Mailer    Notifier
	JWTSecret []byte
	BaseURL   string
}

type Service struct {
	Authorization
	Deposits
	Withdrawals
	Referrals
	Transactions
	Rates
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Authorization, deps.JWTSecret),
		Deposits:      NewDepositService(repos.Deposits, repos.Authorization, deps.FileStore, deps.Mailer),
		Withdrawals:   NewWithdrawalService(repos.Withdrawals, repos.Authorization),
		Referrals:     NewReferralService(repos.Referrals, repos.Authorization, deps.BaseURL),
		Transactions:  NewTransactionService(repos.Transactions),
		Rates:         NewRateService(),
	}
}
