package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mahimamj/bdspro/internal/chain"
	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/repository"
)

type WithdrawalService struct {
	repos repository.Withdrawals
	users repository.Authorization
}

func NewWithdrawalService(repos repository.Withdrawals, users repository.Authorization) *WithdrawalService {
	return &WithdrawalService{
		repos: repos,
		users: users,
	}
}

// Create validates and records a withdrawal request. The balance is only
// checked here for early feedback; the authoritative check happens when an
// admin approves.
func (s *WithdrawalService) Create(ctx context.Context, userID int64, input models.CreateWithdrawalInput) (models.Withdrawal, error) {
	if input.Amount <= 0 {
		return models.Withdrawal{}, models.ValidationError("Amount must be positive")
	}
	if input.Network != models.NetworkTRC20 && input.Network != models.NetworkBEP20 {
		return models.Withdrawal{}, models.ValidationError("Invalid network selection")
	}
	if err := chain.ValidateAddress(input.Network, input.WalletAddress); err != nil {
		return models.Withdrawal{}, models.ValidationError("Invalid wallet address for " + input.Network)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.Withdrawal{}, err
	}
	if user.AccountBalance < input.Amount {
		return models.Withdrawal{}, models.ErrInsufficientFunds
	}

	withdrawal := models.Withdrawal{
		UserID:        userID,
		Amount:        input.Amount,
		Network:       input.Network,
		WalletAddress: input.WalletAddress,
		Status:        models.WithdrawalPending,
	}
	id, err := s.repos.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		return models.Withdrawal{}, err
	}
	withdrawal.ID = id

	logrus.Infof("withdrawal %d requested by user %d for %.2f USDT", id, userID, input.Amount)
	return withdrawal, nil
}

func (s *WithdrawalService) List(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalWithUser, error) {
	if status != "" && !status.Valid() {
		return nil, models.ErrInvalidStatus
	}
	return s.repos.ListWithdrawals(ctx, status)
}

// Update applies an admin decision. Transitions only move forward; approval
// debits the balance inside the repository transaction.
func (s *WithdrawalService) Update(ctx context.Context, id int64, input models.UpdateWithdrawalInput) error {
	if !input.Status.Valid() || input.Status == models.WithdrawalPending {
		return models.ErrInvalidStatus
	}

	withdrawal, err := s.repos.GetWithdrawal(ctx, id)
	if err != nil {
		return err
	}
	if !withdrawal.Status.CanTransition(input.Status) {
		return errors.Wrapf(models.ErrIllegalTransition, "%s -> %s", withdrawal.Status, input.Status)
	}

	return s.repos.UpdateWithdrawal(ctx, id, input.Status, input.TransactionUID)
}
