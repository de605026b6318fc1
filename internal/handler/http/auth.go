package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pontoflow/ponto-backend-go/internal/domain/auth"
	"github.com/pontoflow/ponto-backend-go/internal/handler/http/response"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	loginResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(loginResponse.RefreshToken, loginResponse.RefreshExpiresAt)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("Employee logged in", "employee_id", loginResponse.EmployeeID)
	response.Success(w, loginResponse)
}
