package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mahimamj/bdspro/internal/chain"
	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/filestore"
	"github.com/mahimamj/bdspro/pkg/repository"
)

// SubmitDepositInput is a parsed multipart deposit-proof submission.
type SubmitDepositInput struct {
	FullName        string
	Email           string
	Amount          float64
	Network         string
	TransactionHash string
	FileName        string
	ContentType     string
	FileSize        int64
	FileData        []byte
}

type DepositService struct {
	repos  repository.Deposits
	users  repository.Authorization
	store  filestore.FileStore
	mailer Notifier
}

func NewDepositService(repos repository.Deposits, users repository.Authorization, store filestore.FileStore, mailer Notifier) *DepositService {
	return &DepositService{
		repos:  repos,
		users:  users,
		store:  store,
		mailer: mailer,
	}
}

// Submit validates a proof submission, stores the screenshot and creates the
// pending deposit row. A submission from an email without a user record
// creates the user on the fly.
func (s *DepositService) Submit(ctx context.Context, input SubmitDepositInput) (models.Deposit, error) {
	if err := validateSubmission(input); err != nil {
		return models.Deposit{}, err
	}

	imageURL, err := s.store.Save(input.FileName, input.FileData)
	if err != nil {
		return models.Deposit{}, errors.Wrap(err, "store proof image")
	}

	user, err := s.findOrCreateUser(ctx, input.FullName, input.Email)
	if err != nil {
		return models.Deposit{}, err
	}

	deposit := models.Deposit{
		UserID:          user.ID,
		ReferrerID:      user.ReferrerID,
		Amount:          input.Amount,
		Network:         input.Network,
		ImageURL:        imageURL,
		TransactionHash: input.TransactionHash,
		Status:          models.DepositPending,
	}
	id, err := s.repos.CreateDeposit(ctx, deposit)
	if err != nil {
		return models.Deposit{}, err
	}
	deposit.ID = id

	go s.mailer.NotifyAdminNewDeposit(user.Email, deposit.Amount, deposit.Network)

	logrus.Infof("deposit %d submitted by user %d for %.2f USDT on %s", id, user.ID, deposit.Amount, deposit.Network)
	return deposit, nil
}

func (s *DepositService) ListByEmail(ctx context.Context, email string) ([]models.Deposit, error) {
	return s.repos.ListDepositsByEmail(ctx, email)
}

func (s *DepositService) List(ctx context.Context, status models.DepositStatus) ([]models.DepositWithUser, error) {
	if status != "" && !status.Valid() {
		return nil, models.ErrInvalidStatus
	}
	return s.repos.ListDeposits(ctx, status)
}

// Verify applies an admin decision to a pending deposit. Crediting happens
// inside the repository transaction; the verification mail is best effort.
func (s *DepositService) Verify(ctx context.Context, id int64, input models.UpdateDepositInput) error {
	if input.Status != models.DepositVerified && input.Status != models.DepositRejected {
		return models.ErrInvalidStatus
	}

	deposit, err := s.repos.GetDeposit(ctx, id)
	if err != nil {
		return err
	}
	if !deposit.Status.CanTransition(input.Status) {
		return models.ErrAlreadyProcessed
	}

	if err := s.repos.VerifyDeposit(ctx, id, input.Status, input.AdminNotes); err != nil {
		return err
	}

	if input.Status == models.DepositVerified {
		user, err := s.users.GetUserByID(ctx, deposit.UserID)
		if err != nil {
			logrus.Errorf("deposit %d verified but user %d lookup failed: %s", id, deposit.UserID, err)
			return nil
		}
		go s.mailer.NotifyDepositVerified(user.Email, deposit.Amount)
	}
	return nil
}

func (s *DepositService) findOrCreateUser(ctx context.Context, name, email string) (models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.User{}, errors.Wrap(err, "lookup submitter")
	}

	code, err := uniqueReferralCode(ctx, s.users)
	if err != nil {
		return models.User{}, err
	}
	user = models.User{
		Name:         name,
		Email:        email,
		ReferralCode: code,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	user.ID = id
	logrus.Infof("created user %d for deposit submission from %s", id, email)
	return user, nil
}

func validateSubmission(input SubmitDepositInput) error {
	if input.FullName == "" || input.Email == "" || input.Amount == 0 || input.Network == "" || len(input.FileData) == 0 {
		return models.ValidationError("All fields are required")
	}
	if input.Amount < models.MinDepositAmount {
		return models.ValidationError("Minimum deposit is 50 USDT")
	}
	if input.Network != models.NetworkTRC20 && input.Network != models.NetworkBEP20 {
		return models.ValidationError("Invalid network selection")
	}
	if input.ContentType != "image/jpeg" && input.ContentType != "image/png" {
		return models.ValidationError("Only JPG and PNG files are allowed")
	}
	if input.FileSize > models.MaxProofImageSize {
		return models.ValidationError("File size must be less than 5MB")
	}
	if input.TransactionHash != "" && !chain.ValidTxHash(input.TransactionHash) {
		return models.ValidationError("Invalid transaction hash")
	}
	return nil
}
