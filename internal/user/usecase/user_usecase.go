package usecase

import (
	"context"

	"photocards-backend/internal/user/domain"
	"photocards-backend/internal/user/dto"
	"photocards-backend/internal/user/repository"
)

// userUsecase implements UserUsecase.
type userUsecase struct {
	userRepo repository.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) GetAll(ctx context.Context) ([]domain.User, error) {
	return u.userRepo.FindAll(ctx)
}

func (u *userUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.FindByID(ctx, id)
}

// GetCurrent resolves the authenticated identity. The backing record can
// vanish after token issuance, in which case this is NotFound.
func (u *userUsecase) GetCurrent(ctx context.Context, userID string) (*domain.User, error) {
	return u.userRepo.FindByID(ctx, userID)
}

func (u *userUsecase) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*domain.User, error) {
	return u.userRepo.UpdateProfile(ctx, userID, req.Name, req.About)
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, userID string, req *dto.UpdateAvatarRequest) (*domain.User, error) {
	return u.userRepo.UpdateAvatar(ctx, userID, req.Avatar)
}
