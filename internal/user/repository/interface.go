package repository

import (
	"context"

	"photocards-backend/internal/user/domain"
)

// UserRepository is the storage abstraction for users. Implementations
// translate storage failures into the apperror taxonomy: a duplicate email
// is Conflict, a malformed id is BadRequest, a missing document is NotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error)
}
