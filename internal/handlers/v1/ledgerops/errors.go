// Package ledgerops exposes the balance-mutating operations: deposit,
// withdraw, transfer, and intra-account moves.
package ledgerops

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/operator/actions"
)

// ledgerProcessor is the interface for atomically applying ledger actions.
type ledgerProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// httpError maps domain errors onto HTTP statuses. Anything unrecognized is
// a storage fault: the operation rolled back and nothing was written.
func httpError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrSameAccount):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, ledger.ErrRecipientNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return huma.NewError(http.StatusConflict, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, "storage error", err)
	}
}
