package auth

import "context"

// AuthService defines login for employees and company admins.
type AuthService interface {
	// Login verifies credentials and issues a JWT carrying the employee and
	// company identity used by every other endpoint.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
