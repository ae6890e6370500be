package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/valuevault/bank-server/internal/auth"
	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/operator/actions"
	"github.com/valuevault/bank-server/internal/storage"
)

// minPasswordLength is the registration password policy. The store itself
// performs no validation.
const minPasswordLength = 4

var (
	// ErrPasswordTooShort rejects registrations below the length policy.
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")

	// ErrMissingField rejects registrations with a blank id or name.
	ErrMissingField = errors.New("id and name are required")

	// ErrInvalidLogin covers both unknown accounts and wrong passwords so
	// login failures don't reveal which one it was.
	ErrInvalidLogin = errors.New("invalid id or password")
)

// AuthService handles registration, credential checks, and session tokens.
// Passwords are stored only as bcrypt digests.
type AuthService struct {
	storage   *storage.Storage
	processor ledgerProcessor
	tokens    *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Storage, processor ledgerProcessor, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{storage: store, processor: processor, tokens: tokens}
}

// Register creates an account with a zero balance. Duplicate ids surface
// ledger.ErrDuplicateID from the store.
func (s *AuthService) Register(ctx context.Context, id, password, name string) error {
	if id == "" || name == "" {
		return ErrMissingField
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.processor.Process(ctx, &actions.Register{
		ID:           id,
		PasswordHash: string(hash),
		Name:         name,
	})
}

// Authenticate reports whether the candidate password matches the stored
// digest for the account.
func (s *AuthService) Authenticate(ctx context.Context, id, candidate string) (bool, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(candidate))
	return err == nil, nil
}

// Login authenticates and issues a session token for the account. Unknown
// ids and wrong passwords collapse into ErrInvalidLogin; storage faults
// propagate unchanged.
func (s *AuthService) Login(ctx context.Context, id, password string) (string, error) {
	ok, err := s.Authenticate(ctx, id, password)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return "", ErrInvalidLogin
		}
		return "", err
	}
	if !ok {
		return "", ErrInvalidLogin
	}
	return s.tokens.Issue(id)
}

// Resolve maps a session token back to the account's current state.
func (s *AuthService) Resolve(ctx context.Context, token string) (*Balance, error) {
	accountID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &Balance{
		AccountID:         row.ID,
		Name:              row.Name,
		Balance:           row.Balance,
		InvestmentBalance: row.InvestmentBalance,
	}, nil
}
