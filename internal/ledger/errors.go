// Package ledger defines the domain vocabulary shared by the storage,
// operator, and handler layers: sentinel errors, transaction record types,
// and sub-balance movement directions.
package ledger

import "errors"

var (
	// ErrNotFound indicates the account does not exist.
	ErrNotFound = errors.New("account not found")

	// ErrRecipientNotFound indicates the transfer target does not exist.
	ErrRecipientNotFound = errors.New("recipient account not found")

	// ErrInsufficientFunds indicates the amount exceeds the source balance.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrDuplicateID indicates a registration collision on the account id.
	ErrDuplicateID = errors.New("account id already exists")

	// ErrInvalidAmount indicates a non-positive amount.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrSameAccount indicates a transfer where sender and recipient match.
	ErrSameAccount = errors.New("cannot transfer to the same account")
)
