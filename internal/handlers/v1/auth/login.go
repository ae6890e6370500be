package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	ID       string `json:"id" required:"true" doc:"Account id"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token string `json:"token" doc:"Bearer token for subsequent requests"`
}

// LoginOutput is the response for logging in.
type LoginOutput struct {
	Body LoginResponse
}

// loginService is the interface for authenticating and issuing tokens.
type loginService interface {
	Login(ctx context.Context, id, password string) (string, error)
}

// LoginHandler handles POST /v1/login.
type LoginHandler struct {
	AuthService loginService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc loginService) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/login",
		Summary:     "Log in",
		Description: "Checks credentials and returns a session token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	token, err := h.AuthService.Login(ctx, input.Body.ID, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLogin) || errors.Is(err, ledger.ErrNotFound) {
			return nil, huma.NewError(http.StatusUnauthorized, "invalid id or password")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	return &LoginOutput{Body: LoginResponse{Token: token}}, nil
}
