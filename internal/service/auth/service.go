package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/pontoflow/ponto-backend-go/internal/domain/auth"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepo,
		Service:            jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.CompanyID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
		EmployeeID:       emp.ID,
		CompanyID:        emp.CompanyID,
		FullName:         emp.FullName,
		Role:             string(emp.Role),
	}, nil
}
