package usecase

import (
	"context"

	"photocards-backend/internal/card/domain"
	"photocards-backend/internal/card/dto"
)

// CardUsecase covers the card lifecycle: create, list, owner-checked
// delete and idempotent like/unlike.
type CardUsecase interface {
	GetAll(ctx context.Context) ([]domain.Card, error)
	Create(ctx context.Context, userID string, req *dto.CreateCardRequest) (*domain.Card, error)
	Delete(ctx context.Context, userID, cardID string) (*domain.Card, error)
	Like(ctx context.Context, userID, cardID string) (*domain.Card, error)
	Unlike(ctx context.Context, userID, cardID string) (*domain.Card, error)
}
