package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuevault/bank-server/internal/ledger"
	"github.com/valuevault/bank-server/internal/logging"
	"github.com/valuevault/bank-server/internal/service"
)

// RegisterBody is the request body for creating an account.
type RegisterBody struct {
	ID       string `json:"id" required:"true" minLength:"1" doc:"Account id, unique and case-sensitive"`
	Name     string `json:"name" required:"true" minLength:"1" doc:"Display name"`
	Password string `json:"password" required:"true" doc:"Password, at least 4 characters"`
}

// RegisterInput is the Huma input for registration.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterResponse is the response body for registration.
type RegisterResponse struct {
	ID string `json:"id" doc:"Registered account id"`
}

// RegisterOutput is the response for registration.
type RegisterOutput struct {
	Status int
	Body   RegisterResponse
}

// registrar is the interface for creating accounts.
type registrar interface {
	Register(ctx context.Context, id, password, name string) error
}

// RegisterHandler handles POST /v1/register.
type RegisterHandler struct {
	AuthService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{AuthService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register-account",
		Method:      http.MethodPost,
		Path:        "/v1/register",
		Summary:     "Register an account",
		Description: "Creates a new account with a zero balance.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	logData := logging.GetLogData(ctx)

	err := h.AuthService.Register(ctx, input.Body.ID, input.Body.Password, input.Body.Name)
	switch {
	case err == nil:
	case errors.Is(err, ledger.ErrDuplicateID):
		return nil, huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPasswordTooShort), errors.Is(err, service.ErrMissingField):
		return nil, huma.NewError(http.StatusBadRequest, err.Error())
	default:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to register account", err)
	}

	if logData != nil {
		logData.AddData("accountID", input.Body.ID)
	}

	return &RegisterOutput{
		Status: http.StatusCreated,
		Body:   RegisterResponse{ID: input.Body.ID},
	}, nil
}
