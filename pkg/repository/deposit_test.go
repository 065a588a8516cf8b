package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func expectDepositLock(mock sqlmock.Sqlmock, id, userID int64, amount float64, status models.DepositStatus) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, amount, status FROM deposits WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "status"}).
			AddRow(id, userID, amount, string(status)))
}

// Approving a pending deposit updates the status, credits the balance and
// appends exactly one ledger row, all before the commit.
func TestVerifyDeposit_ApprovedCreditsOnce(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewDepositPostgres(db)

	mock.ExpectBegin()
	expectDepositLock(mock, 5, 3, 100, models.DepositPending)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE deposits SET status = $1, admin_notes = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("verified", "looks good", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET account_balance = account_balance + $1")).
		WithArgs(100.0, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"account_balance"}).AddRow(250.0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(int64(3), models.TxTypeDeposit, 100.0, 100.0, 250.0, "Deposit #5 verified").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.VerifyDeposit(context.Background(), 5, models.DepositVerified, "looks good")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Rejection updates the status and nothing else: no balance write, no ledger row.
func TestVerifyDeposit_RejectedNeverCredits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewDepositPostgres(db)

	mock.ExpectBegin()
	expectDepositLock(mock, 5, 3, 100, models.DepositPending)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE deposits SET status = $1, admin_notes = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("rejected", "blurry screenshot", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.VerifyDeposit(context.Background(), 5, models.DepositRejected, "blurry screenshot")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyDeposit_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewDepositPostgres(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, amount, status FROM deposits WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.VerifyDeposit(context.Background(), 99, models.DepositVerified, "")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A concurrent second approval sees the row already verified and aborts
// without touching the balance.
func TestVerifyDeposit_DoubleApprovalBlocked(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewDepositPostgres(db)

	mock.ExpectBegin()
	expectDepositLock(mock, 5, 3, 100, models.DepositVerified)
	mock.ExpectRollback()

	err := repo.VerifyDeposit(context.Background(), 5, models.DepositVerified, "")
	assert.ErrorIs(t, err, models.ErrAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed credit rolls the status update back with it.
func TestVerifyDeposit_CreditFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewDepositPostgres(db)

	mock.ExpectBegin()
	expectDepositLock(mock, 5, 3, 100, models.DepositPending)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE deposits SET status = $1, admin_notes = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("verified", "", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET account_balance = account_balance + $1")).
		WithArgs(100.0, int64(3)).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.VerifyDeposit(context.Background(), 5, models.DepositVerified, "")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDeposit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewDepositPostgres(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deposits")).
		WithArgs(int64(3), nil, 100.0, "TRC20", "/uploads/payment_x.jpg", "", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.CreateDeposit(context.Background(), models.Deposit{
		UserID:   3,
		Amount:   100,
		Network:  "TRC20",
		ImageURL: "/uploads/payment_x.jpg",
		Status:   models.DepositPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
