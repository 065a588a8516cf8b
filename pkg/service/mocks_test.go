package service_test

import (
	"context"
	"sync"

	"github.com/mahimamj/bdspro/models"
)

// Hand-written repository mocks: capture inputs, control outputs.

type mockAuthRepo struct {
	usersByEmail map[string]models.User
	usersByID    map[int64]models.User
	usersByCode  map[string]models.User
	takenCodes   map[string]bool

	createdUser  models.User
	createUserID int64
	createErr    error
	lookupErr    error
}

func (m *mockAuthRepo) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.lookupErr != nil {
		return models.User{}, m.lookupErr
	}
	u, ok := m.usersByEmail[email]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}

func (m *mockAuthRepo) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.lookupErr != nil {
		return models.User{}, m.lookupErr
	}
	u, ok := m.usersByID[id]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}

func (m *mockAuthRepo) GetUserByReferralCode(ctx context.Context, code string) (models.User, error) {
	u, ok := m.usersByCode[code]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}

func (m *mockAuthRepo) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	return m.takenCodes[code], nil
}

func (m *mockAuthRepo) CreateUser(ctx context.Context, user models.User) (int64, error) {
	m.createdUser = user
	if m.createErr != nil {
		return 0, m.createErr
	}
	if m.createUserID == 0 {
		m.createUserID = 1
	}
	return m.createUserID, nil
}

type mockDepositRepo struct {
	deposits map[int64]models.Deposit

	createdDeposit models.Deposit
	createID       int64
	createErr      error

	verifiedID     int64
	verifiedStatus models.DepositStatus
	verifyCalls    int
	verifyErr      error
}

func (m *mockDepositRepo) CreateDeposit(ctx context.Context, d models.Deposit) (int64, error) {
	m.createdDeposit = d
	if m.createErr != nil {
		return 0, m.createErr
	}
	if m.createID == 0 {
		m.createID = 1
	}
	return m.createID, nil
}

func (m *mockDepositRepo) GetDeposit(ctx context.Context, id int64) (models.Deposit, error) {
	d, ok := m.deposits[id]
	if !ok {
		return models.Deposit{}, models.ErrNotFound
	}
	return d, nil
}

func (m *mockDepositRepo) ListDepositsByEmail(ctx context.Context, email string) ([]models.Deposit, error) {
	return nil, nil
}

func (m *mockDepositRepo) ListDeposits(ctx context.Context, status models.DepositStatus) ([]models.DepositWithUser, error) {
	return nil, nil
}

func (m *mockDepositRepo) VerifyDeposit(ctx context.Context, id int64, status models.DepositStatus, adminNotes string) error {
	m.verifyCalls++
	m.verifiedID = id
	m.verifiedStatus = status
	return m.verifyErr
}

type mockWithdrawalRepo struct {
	withdrawals map[int64]models.Withdrawal

	createdWithdrawal models.Withdrawal
	createID          int64
	createErr         error

	updatedID     int64
	updatedStatus models.WithdrawalStatus
	updatedTxUID  string
	updateCalls   int
	updateErr     error
}

func (m *mockWithdrawalRepo) CreateWithdrawal(ctx context.Context, w models.Withdrawal) (int64, error) {
	m.createdWithdrawal = w
	if m.createErr != nil {
		return 0, m.createErr
	}
	if m.createID == 0 {
		m.createID = 1
	}
	return m.createID, nil
}

func (m *mockWithdrawalRepo) GetWithdrawal(ctx context.Context, id int64) (models.Withdrawal, error) {
	w, ok := m.withdrawals[id]
	if !ok {
		return models.Withdrawal{}, models.ErrNotFound
	}
	return w, nil
}

func (m *mockWithdrawalRepo) ListWithdrawals(ctx context.Context, status models.WithdrawalStatus) ([]models.WithdrawalWithUser, error) {
	return nil, nil
}

func (m *mockWithdrawalRepo) UpdateWithdrawal(ctx context.Context, id int64, status models.WithdrawalStatus, transactionUID string) error {
	m.updateCalls++
	m.updatedID = id
	m.updatedStatus = status
	m.updatedTxUID = transactionUID
	return m.updateErr
}

type mockReferralRepo struct {
	level1       []models.ReferralRow
	level2       []models.ReferralRow
	referrerName *string

	level1Err error
	level2Err error
}

func (m *mockReferralRepo) Level1Referrals(ctx context.Context, userID int64) ([]models.ReferralRow, error) {
	if m.level1Err != nil {
		return nil, m.level1Err
	}
	return m.level1, nil
}

func (m *mockReferralRepo) Level2Referrals(ctx context.Context, userID int64) ([]models.ReferralRow, error) {
	if m.level2Err != nil {
		return nil, m.level2Err
	}
	return m.level2, nil
}

func (m *mockReferralRepo) ReferrerName(ctx context.Context, userID int64) (*string, error) {
	return m.referrerName, nil
}

type mockFileStore struct {
	savedName string
	savedData []byte
	url       string
	err       error
}

func (m *mockFileStore) Save(originalName string, data []byte) (string, error) {
	m.savedName = originalName
	m.savedData = data
	if m.err != nil {
		return "", m.err
	}
	if m.url == "" {
		m.url = "/uploads/payment_test.jpg"
	}
	return m.url, nil
}

type mockMailer struct {
	mu             sync.Mutex
	adminNotified  int
	userNotified   int
	lastUserEmail  string
	lastUserAmount float64
}

func (m *mockMailer) NotifyAdminNewDeposit(userEmail string, amount float64, network string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adminNotified++
}

func (m *mockMailer) NotifyDepositVerified(userEmail string, amount float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userNotified++
	m.lastUserEmail = userEmail
	m.lastUserAmount = amount
}
