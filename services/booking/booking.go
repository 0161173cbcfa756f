// Package booking records session bookings. There is no scheduling logic
// here: no conflict detection, no calendar sync, no referential check on the
// user and therapist identifiers.
package booking

import (
	"context"

	"bettermann/database/repository"
	"bettermann/models"
)

// Service defines the session booking operations.
type Service interface {
	CreateSession(ctx context.Context, in models.SessionInput) (string, error)
}

// DefaultBookingService implements Service over the collection store.
type DefaultBookingService struct {
	Store repository.Store
}

// CreateSession stores a session record and returns its identifier.
func (s *DefaultBookingService) CreateSession(ctx context.Context, in models.SessionInput) (string, error) {
	return s.Store.Insert(ctx, repository.KindSession, in.Record())
}
