package api

import (
	"context"
	"net/http"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/types"
)

// Login exchanges credentials for a bearer token and the user profile.
func Login(ctx context.Context, f Fetcher, req types.LoginRequest) (*types.AuthResponse, error) {
	if err := types.ValidateLogin(req); err != nil {
		return nil, err
	}
	raw, err := send(ctx, f, http.MethodPost, "/auth/login", req)
	if err != nil {
		return nil, err
	}
	return decode[types.AuthResponse](raw, "login response")
}

// Register creates a student account. The confirmation field is checked
// locally and dropped from the payload by its json tag.
func Register(ctx context.Context, f Fetcher, req types.RegisterRequest) (*types.AuthResponse, error) {
	if err := types.ValidateRegister(req); err != nil {
		return nil, err
	}
	raw, err := send(ctx, f, http.MethodPost, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	return decode[types.AuthResponse](raw, "register response")
}
