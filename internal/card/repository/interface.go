package repository

import (
	"context"

	"photocards-backend/internal/card/domain"
)

// CardRepository is the storage abstraction for cards. AddLike and
// RemoveLike must be single atomic set-membership updates against the
// stored document, never a read-modify-write in the application.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	FindAll(ctx context.Context) ([]domain.Card, error)
	FindByID(ctx context.Context, id string) (*domain.Card, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error)
}
