package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account created through registration. The password field only
// ever holds a bcrypt hash (salt embedded in the output) and is never
// serialized in responses.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
