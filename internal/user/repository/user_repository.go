package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photocards-backend/internal/user/domain"
	"photocards-backend/pkg/apperror"
)

// userRepository implements UserRepository on a MongoDB collection.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("a user with this email is already registered")
		}
		return nil, apperror.Internal(err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.BadRequest("incorrect user id")
	}

	var user domain.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	return r.updateFields(ctx, id, bson.M{"name": name, "about": about})
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	return r.updateFields(ctx, id, bson.M{"avatar": avatar})
}

func (r *userRepository) updateFields(ctx context.Context, id string, fields bson.M) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.BadRequest("incorrect user id")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}
