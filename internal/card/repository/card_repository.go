package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photocards-backend/internal/card/domain"
	"photocards-backend/pkg/apperror"
)

// cardRepository implements CardRepository on a MongoDB collection.
type cardRepository struct {
	collection *mongo.Collection
}

// NewCardRepository creates a new instance of cardRepository.
func NewCardRepository(db *mongo.Database) CardRepository {
	return &cardRepository{
		collection: db.Collection("cards"),
	}
}

func (r *cardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	res, err := r.collection.InsertOne(ctx, card)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	card.ID = res.InsertedID.(primitive.ObjectID)
	return card, nil
}

func (r *cardRepository) FindAll(ctx context.Context) ([]domain.Card, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	cards := []domain.Card{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, apperror.Internal(err)
	}
	return cards, nil
}

func (r *cardRepository) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.BadRequest("incorrect card id")
	}

	var card domain.Card
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&card); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("card not found")
		}
		return nil, apperror.Internal(err)
	}
	return &card, nil
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperror.BadRequest("incorrect card id")
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperror.Internal(err)
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("card not found")
	}
	return nil
}

func (r *cardRepository) AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	return r.updateLikes(ctx, cardID, userID, "$addToSet")
}

func (r *cardRepository) RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	return r.updateLikes(ctx, cardID, userID, "$pull")
}

// updateLikes applies a single atomic set-membership operator to the likes
// array and returns the updated document.
func (r *cardRepository) updateLikes(ctx context.Context, cardID, userID, operator string) (*domain.Card, error) {
	cardOID, err := primitive.ObjectIDFromHex(cardID)
	if err != nil {
		return nil, apperror.BadRequest("incorrect card id")
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperror.BadRequest("incorrect user id")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{operator: bson.M{"likes": userOID}}

	var card domain.Card
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": cardOID}, update, opts).Decode(&card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("card not found")
		}
		return nil, apperror.Internal(err)
	}
	return &card, nil
}
