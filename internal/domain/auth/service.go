package auth

import "context"

// AuthService handles credential login and token issuance.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
