package store

import (
	"context"
	"errors"
	"testing"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryUserStoreDuplicateEmail(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	if err := s.Create(ctx, &models.User{Name: "A", Email: "a@example.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := s.Create(ctx, &models.User{Name: "B", Email: "a@example.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create() with duplicate email error = %v, want ErrDuplicateEmail", err)
	}
}

func TestMemoryUserStoreLookups(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	u := &models.User{Name: "A", Email: "a@example.com"}
	if err := s.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.ID.IsZero() {
		t.Fatal("Create() did not assign an id")
	}

	byEmail, err := s.FindByEmail(ctx, "a@example.com")
	if err != nil || byEmail.ID != u.ID {
		t.Errorf("FindByEmail() = %v, %v", byEmail, err)
	}
	if _, err := s.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByEmail() unknown error = %v, want ErrNotFound", err)
	}
	if _, err := s.FindByID(ctx, primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() unknown error = %v, want ErrNotFound", err)
	}
}

func TestMemoryPlaceStoreUpdateKeepsOwner(t *testing.T) {
	s := NewMemoryPlaceStore()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	p := &models.Place{Owner: owner, Title: "Old title", Price: 50}
	if err := s.Create(ctx, p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated := *p
	updated.Title = "New title"
	updated.Owner = primitive.NewObjectID() // must be ignored
	if err := s.Update(ctx, &updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := s.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Title != "New title" {
		t.Errorf("Title = %q, want %q", got.Title, "New title")
	}
	if got.Owner != owner {
		t.Errorf("Owner changed on update: got %s, want %s", got.Owner.Hex(), owner.Hex())
	}
}

func TestMemoryPlaceStoreOwnerScope(t *testing.T) {
	s := NewMemoryPlaceStore()
	ctx := context.Background()
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	for _, p := range []*models.Place{
		{Owner: a, Title: "A1"},
		{Owner: b, Title: "B1"},
		{Owner: a, Title: "A2"},
	} {
		if err := s.Create(ctx, p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	mine, err := s.FindByOwner(ctx, a)
	if err != nil {
		t.Fatalf("FindByOwner() error = %v", err)
	}
	if len(mine) != 2 || mine[0].Title != "A1" || mine[1].Title != "A2" {
		t.Errorf("FindByOwner() = %+v, want A1 and A2", mine)
	}

	all, err := s.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("FindAll() returned %d places, want 3", len(all))
	}
}

func TestMemoryBookingStoreDelete(t *testing.T) {
	s := NewMemoryBookingStore()
	ctx := context.Background()
	user := primitive.NewObjectID()

	b := &models.Booking{User: user, Name: "Guest", Price: 120}
	if err := s.Create(ctx, b); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted, err := s.DeleteByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if deleted.ID != b.ID || deleted.Name != "Guest" {
		t.Errorf("DeleteByID() = %+v, want the stored booking", deleted)
	}

	if _, err := s.DeleteByID(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteByID() error = %v, want ErrNotFound", err)
	}

	left, err := s.FindByUser(ctx, user)
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if len(left) != 0 {
		t.Errorf("FindByUser() after delete returned %d bookings, want 0", len(left))
	}
}
