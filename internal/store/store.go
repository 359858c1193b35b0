// Package store is the document-store seam: one small interface per entity,
// implemented against MongoDB in this package and against in-memory maps for
// tests. Service code never touches a collection directly.
package store

import (
	"context"
	"errors"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound means no document matched the given id or filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateEmail means the unique index on users.email rejected a write.
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserStore interface {
	// Create inserts the user, assigning an id when unset. Returns
	// ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type PlaceStore interface {
	Create(ctx context.Context, p *models.Place) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Place, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Place, error)
	FindAll(ctx context.Context) ([]models.Place, error)
	// Update replaces the mutable fields of the place identified by p.ID.
	Update(ctx context.Context, p *models.Place) error
}

type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Booking, error)
	// DeleteByID removes the booking and returns the deleted document,
	// ErrNotFound when no booking has that id.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
}
