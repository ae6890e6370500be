package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/service"
)

// MeInput carries the bearer token.
type MeInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token from login"`
}

// MeResponse is the account state behind the token.
type MeResponse struct {
	ID                string `json:"id" doc:"Account id"`
	Name              string `json:"name" doc:"Display name"`
	Balance           int64  `json:"balance" doc:"Main balance, smallest currency unit"`
	InvestmentBalance int64  `json:"investmentBalance" doc:"Investment sub-balance"`
}

// MeOutput is the response for the token lookup.
type MeOutput struct {
	Body MeResponse
}

// tokenResolver is the interface for resolving session tokens.
type tokenResolver interface {
	Resolve(ctx context.Context, token string) (*service.Balance, error)
}

// MeHandler handles GET /v1/me.
type MeHandler struct {
	AuthService tokenResolver
}

// NewMeHandler creates a new MeHandler.
func NewMeHandler(svc tokenResolver) *MeHandler {
	return &MeHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *MeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/v1/me",
		Summary:     "Current account",
		Description: "Resolves the session token to the account and its balances.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, input *MeInput) (*MeOutput, error) {
	token := strings.TrimPrefix(input.Authorization, "Bearer ")
	if token == "" {
		return nil, huma.NewError(http.StatusUnauthorized, "missing token")
	}

	balance, err := h.AuthService.Resolve(ctx, token)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "invalid token")
	}

	return &MeOutput{Body: MeResponse{
		ID:                balance.AccountID,
		Name:              balance.Name,
		Balance:           balance.Balance,
		InvestmentBalance: balance.InvestmentBalance,
	}}, nil
}
