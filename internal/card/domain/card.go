package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card is a shared photo. Owner is set at creation and immutable; Likes is
// a set of user ids maintained with atomic membership updates.
type Card struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name      string               `bson:"name" json:"name"`
	Link      string               `bson:"link" json:"link"`
	Owner     primitive.ObjectID   `bson:"owner" json:"owner"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}
