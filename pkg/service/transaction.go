package service

import (
	"context"

	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/repository"
)

type TransactionService struct {
	repos repository.Transactions
}

func NewTransactionService(repos repository.Transactions) *TransactionService {
	return &TransactionService{repos: repos}
}

func (s *TransactionService) List(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return s.repos.ListTransactions(ctx, userID)
}
