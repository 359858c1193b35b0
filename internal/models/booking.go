package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking reserves a place for a date range. User is always the
// authenticated caller at creation time, never taken from the request body.
// Check-in/check-out dates are stored as the client sent them.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Place          primitive.ObjectID `bson:"place" json:"place"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	CheckIn        string             `bson:"checkIn" json:"checkIn"`
	CheckOut       string             `bson:"checkOut" json:"checkOut"`
	NumberOfGuests int                `bson:"numberOfGuests" json:"numberOfGuests"`
	Name           string             `bson:"name" json:"name"`
	Phone          string             `bson:"phone" json:"phone"`
	Price          float64            `bson:"price" json:"price"`
}
