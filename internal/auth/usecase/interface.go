package usecase

import (
	"context"

	authdto "photocards-backend/internal/auth/dto"
	userdomain "photocards-backend/internal/user/domain"
)

// AuthUsecase covers registration, login and token validation.
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest) (*userdomain.User, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (string, error)
	ValidateToken(tokenString string) (string, error)
}
