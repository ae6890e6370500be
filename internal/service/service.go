package service

import (
	"context"

	"github.com/valuevault/bank-server/internal/auth"
	"github.com/valuevault/bank-server/internal/operator/actions"
	"github.com/valuevault/bank-server/internal/storage"
)

// ledgerProcessor runs a ledger action atomically; implemented by the
// operator delegator.
type ledgerProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Auth        *AuthService
}

// NewService creates a new Service with the given storage and processor.
func NewService(store *storage.Storage, processor ledgerProcessor, tokens *auth.TokenIssuer) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
		Auth:        NewAuthService(store, processor, tokens),
	}
}
