package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Place is a bookable listing. Owner is set at creation and immutable; only
// the owner may change the other fields.
type Place struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	Title       string             `bson:"title" json:"title"`
	Address     string             `bson:"address" json:"address"`
	Photos      []string           `bson:"photos" json:"photos"`
	Description string             `bson:"description" json:"description"`
	Perks       []string           `bson:"perks" json:"perks"`
	ExtraInfo   string             `bson:"extraInfo" json:"extraInfo"`
	CheckIn     int                `bson:"checkIn" json:"checkIn"`
	CheckOut    int                `bson:"checkOut" json:"checkOut"`
	MaxGuests   int                `bson:"maxGuests" json:"maxGuests"`
	Price       int                `bson:"price" json:"price"`
}
