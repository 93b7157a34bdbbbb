package usecase

import (
	"context"

	"photocards-backend/internal/user/domain"
	"photocards-backend/internal/user/dto"
)

// UserUsecase covers listing and profile operations on users.
type UserUsecase interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetCurrent(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID string, req *dto.UpdateAvatarRequest) (*domain.User, error)
}
