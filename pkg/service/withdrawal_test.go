package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/service"
)

const (
	tronAddress = "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"
	bscAddress  = "0x55d398326f99059fF775485246999027B3197955"
)

func withdrawalInput() models.CreateWithdrawalInput {
	return models.CreateWithdrawalInput{
		Amount:        75,
		Network:       models.NetworkTRC20,
		WalletAddress: tronAddress,
	}
}

func richUser(balance float64) *mockAuthRepo {
	return &mockAuthRepo{usersByID: map[int64]models.User{
		1: {ID: 1, Email: "alice@example.com", AccountBalance: balance},
	}}
}

func TestCreateWithdrawal_Success(t *testing.T) {
	repo := &mockWithdrawalRepo{createID: 5}
	svc := service.NewWithdrawalService(repo, richUser(100))

	w, err := svc.Create(context.Background(), 1, withdrawalInput())
	require.NoError(t, err)

	assert.Equal(t, int64(5), w.ID)
	assert.Equal(t, models.WithdrawalPending, w.Status)
	assert.Equal(t, tronAddress, repo.createdWithdrawal.WalletAddress)
}

func TestCreateWithdrawal_BEP20Address(t *testing.T) {
	svc := service.NewWithdrawalService(&mockWithdrawalRepo{}, richUser(100))

	input := withdrawalInput()
	input.Network = models.NetworkBEP20
	input.WalletAddress = bscAddress

	_, err := svc.Create(context.Background(), 1, input)
	assert.NoError(t, err)

	// TRON address on BEP20 is rejected
	input.WalletAddress = tronAddress
	_, err = svc.Create(context.Background(), 1, input)
	var ve models.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCreateWithdrawal_Validation(t *testing.T) {
	svc := service.NewWithdrawalService(&mockWithdrawalRepo{}, richUser(100))
	var ve models.ValidationError

	input := withdrawalInput()
	input.Amount = 0
	_, err := svc.Create(context.Background(), 1, input)
	assert.ErrorAs(t, err, &ve)

	input = withdrawalInput()
	input.Network = "ERC20"
	_, err = svc.Create(context.Background(), 1, input)
	assert.ErrorAs(t, err, &ve)

	input = withdrawalInput()
	input.WalletAddress = "garbage"
	_, err = svc.Create(context.Background(), 1, input)
	assert.ErrorAs(t, err, &ve)
}

func TestCreateWithdrawal_InsufficientBalance(t *testing.T) {
	svc := service.NewWithdrawalService(&mockWithdrawalRepo{}, richUser(50))

	_, err := svc.Create(context.Background(), 1, withdrawalInput())
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
}

func TestUpdateWithdrawal_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		current models.WithdrawalStatus
		target  models.WithdrawalStatus
		wantErr error
	}{
		{"approve pending", models.WithdrawalPending, models.WithdrawalApproved, nil},
		{"reject pending", models.WithdrawalPending, models.WithdrawalRejected, nil},
		{"complete approved", models.WithdrawalApproved, models.WithdrawalCompleted, nil},
		{"complete pending", models.WithdrawalPending, models.WithdrawalCompleted, models.ErrIllegalTransition},
		{"approve rejected", models.WithdrawalRejected, models.WithdrawalApproved, models.ErrIllegalTransition},
		{"reopen completed", models.WithdrawalCompleted, models.WithdrawalApproved, models.ErrIllegalTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockWithdrawalRepo{withdrawals: map[int64]models.Withdrawal{
				3: {ID: 3, UserID: 1, Amount: 75, Status: tt.current},
			}}
			svc := service.NewWithdrawalService(repo, richUser(100))

			err := svc.Update(context.Background(), 3, models.UpdateWithdrawalInput{Status: tt.target})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.updateCalls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, repo.updatedStatus)
		})
	}
}

func TestUpdateWithdrawal_InvalidStatus(t *testing.T) {
	svc := service.NewWithdrawalService(&mockWithdrawalRepo{}, richUser(100))

	err := svc.Update(context.Background(), 3, models.UpdateWithdrawalInput{Status: "done"})
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	err = svc.Update(context.Background(), 3, models.UpdateWithdrawalInput{Status: models.WithdrawalPending})
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestUpdateWithdrawal_NotFound(t *testing.T) {
	svc := service.NewWithdrawalService(&mockWithdrawalRepo{}, richUser(100))

	err := svc.Update(context.Background(), 404, models.UpdateWithdrawalInput{Status: models.WithdrawalApproved})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
