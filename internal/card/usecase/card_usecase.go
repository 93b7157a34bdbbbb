package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"photocards-backend/internal/card/domain"
	"photocards-backend/internal/card/dto"
	"photocards-backend/internal/card/repository"
	"photocards-backend/pkg/apperror"
)

// cardUsecase implements CardUsecase.
type cardUsecase struct {
	cardRepo repository.CardRepository
}

// NewCardUsecase creates a new instance of cardUsecase.
func NewCardUsecase(cardRepo repository.CardRepository) CardUsecase {
	return &cardUsecase{
		cardRepo: cardRepo,
	}
}

func (u *cardUsecase) GetAll(ctx context.Context) ([]domain.Card, error) {
	return u.cardRepo.FindAll(ctx)
}

func (u *cardUsecase) Create(ctx context.Context, userID string, req *dto.CreateCardRequest) (*domain.Card, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperror.BadRequest("incorrect user id")
	}

	card := &domain.Card{
		Name:      req.Name,
		Link:      req.Link,
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}
	return u.cardRepo.Create(ctx, card)
}

// Delete removes a card and returns its pre-deletion snapshot. Only the
// owner may delete; anyone else gets Forbidden and the card stays.
func (u *cardUsecase) Delete(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	card, err := u.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if card.Owner.Hex() != userID {
		return nil, apperror.Forbidden("you can only delete your own cards")
	}

	if err := u.cardRepo.Delete(ctx, cardID); err != nil {
		return nil, err
	}
	return card, nil
}

func (u *cardUsecase) Like(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	return u.cardRepo.AddLike(ctx, cardID, userID)
}

func (u *cardUsecase) Unlike(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	return u.cardRepo.RemoveLike(ctx, cardID, userID)
}
