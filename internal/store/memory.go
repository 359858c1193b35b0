package store

import (
	"context"
	"sync"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory implementations of the store interfaces. They exist so handler
// and service tests can run against the real seam without a MongoDB
// instance.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: map[primitive.ObjectID]models.User{}}
}

func (s *MemoryUserStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := u
	return &found, nil
}

// Delete removes a user, simulating out-of-band account deletion.
func (s *MemoryUserStore) Delete(id primitive.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

type MemoryPlaceStore struct {
	mu     sync.RWMutex
	order  []primitive.ObjectID
	places map[primitive.ObjectID]models.Place
}

func NewMemoryPlaceStore() *MemoryPlaceStore {
	return &MemoryPlaceStore{places: map[primitive.ObjectID]models.Place{}}
}

func (s *MemoryPlaceStore) Create(_ context.Context, p *models.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	s.places[p.ID] = *p
	s.order = append(s.order, p.ID)
	return nil
}

func (s *MemoryPlaceStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.places[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := p
	return &found, nil
}

func (s *MemoryPlaceStore) FindByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	places := []models.Place{}
	for _, id := range s.order {
		if p := s.places[id]; p.Owner == owner {
			places = append(places, p)
		}
	}
	return places, nil
}

func (s *MemoryPlaceStore) FindAll(_ context.Context) ([]models.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	places := []models.Place{}
	for _, id := range s.order {
		places = append(places, s.places[id])
	}
	return places, nil
}

func (s *MemoryPlaceStore) Update(_ context.Context, p *models.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.places[p.ID]
	if !ok {
		return ErrNotFound
	}
	updated := *p
	updated.Owner = existing.Owner
	s.places[p.ID] = updated
	return nil
}

type MemoryBookingStore struct {
	mu       sync.RWMutex
	order    []primitive.ObjectID
	bookings map[primitive.ObjectID]models.Booking
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{bookings: map[primitive.ObjectID]models.Booking{}}
}

func (s *MemoryBookingStore) Create(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	s.bookings[b.ID] = *b
	s.order = append(s.order, b.ID)
	return nil
}

func (s *MemoryBookingStore) FindByUser(_ context.Context, user primitive.ObjectID) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := []models.Booking{}
	for _, id := range s.order {
		if b := s.bookings[id]; b.User == user {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (s *MemoryBookingStore) DeleteByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.bookings, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	deleted := b
	return &deleted, nil
}
