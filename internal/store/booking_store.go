package store

import (
	"context"
	"errors"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBookingStore struct {
	col *mongo.Collection
}

// NewMongoBookingStore returns a BookingStore backed by the "bookings"
// collection.
func NewMongoBookingStore(db *mongo.Database) BookingStore {
	return &mongoBookingStore{col: db.Collection("bookings")}
}

func (s *mongoBookingStore) Create(ctx context.Context, b *models.Booking) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, b)
	return err
}

func (s *mongoBookingStore) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Booking, error) {
	cursor, err := s.col.Find(ctx, bson.M{"user": user})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *mongoBookingStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var b models.Booking
	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
