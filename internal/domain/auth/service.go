package auth

import (
	"context"
	"net/http"
)

// AuthService defines login/session operations.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, *http.Cookie, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
