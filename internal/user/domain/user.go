package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. The password field holds the bcrypt hash
// and is never serialized in responses.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	About    string             `bson:"about" json:"about"`
	Avatar   string             `bson:"avatar" json:"avatar"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
