package store

import (
	"context"
	"errors"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoPlaceStore struct {
	col *mongo.Collection
}

// NewMongoPlaceStore returns a PlaceStore backed by the "places" collection.
func NewMongoPlaceStore(db *mongo.Database) PlaceStore {
	return &mongoPlaceStore{col: db.Collection("places")}
}

func (s *mongoPlaceStore) Create(ctx context.Context, p *models.Place) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, p)
	return err
}

func (s *mongoPlaceStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Place, error) {
	var p models.Place
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *mongoPlaceStore) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Place, error) {
	return s.find(ctx, bson.M{"owner": owner})
}

func (s *mongoPlaceStore) FindAll(ctx context.Context) ([]models.Place, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoPlaceStore) find(ctx context.Context, filter bson.M) ([]models.Place, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	places := []models.Place{}
	if err := cursor.All(ctx, &places); err != nil {
		return nil, err
	}
	return places, nil
}

func (s *mongoPlaceStore) Update(ctx context.Context, p *models.Place) error {
	// Owner is deliberately absent from the update document.
	update := bson.M{"$set": bson.M{
		"title":       p.Title,
		"address":     p.Address,
		"photos":      p.Photos,
		"description": p.Description,
		"perks":       p.Perks,
		"extraInfo":   p.ExtraInfo,
		"checkIn":     p.CheckIn,
		"checkOut":    p.CheckOut,
		"maxGuests":   p.MaxGuests,
		"price":       p.Price,
	}}

	res, err := s.col.UpdateByID(ctx, p.ID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
