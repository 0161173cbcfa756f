package directory

import (
	"context"

	"bettermann/database/repository"
	"bettermann/models"
)

const (
	directoryLimit = 50
	matchLimit     = 10
)

// Service defines the therapist directory and matching operations.
type Service interface {
	List(ctx context.Context, language, city, q string) ([]models.Therapist, error)
	Add(ctx context.Context, in models.TherapistInput) (string, error)
	Match(ctx context.Context, req models.MatchRequest) ([]models.MatchResult, error)
}

// DefaultDirectoryService implements Service over the collection store.
type DefaultDirectoryService struct {
	Store repository.Store
}

// List returns up to 50 therapists matching the directory filters, in
// store-native order.
func (s *DefaultDirectoryService) List(ctx context.Context, language, city, q string) ([]models.Therapist, error) {
	var items []models.Therapist
	filter := DirectoryFilter(language, city, q)
	if err := s.Store.Find(ctx, repository.KindTherapist, filter, directoryLimit, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Therapist{}
	}
	return items, nil
}

// Add validates defaults and stores a new therapist record.
func (s *DefaultDirectoryService) Add(ctx context.Context, in models.TherapistInput) (string, error) {
	return s.Store.Insert(ctx, repository.KindTherapist, in.Record())
}

// Match returns up to 10 therapists satisfying all the requested constraints,
// projected into the match response shape.
func (s *DefaultDirectoryService) Match(ctx context.Context, req models.MatchRequest) ([]models.MatchResult, error) {
	var therapists []models.Therapist
	filter := MatchFilter(req)
	if err := s.Store.Find(ctx, repository.KindTherapist, filter, matchLimit, &therapists); err != nil {
		return nil, err
	}
	results := make([]models.MatchResult, 0, len(therapists))
	for _, t := range therapists {
		results = append(results, models.MatchResultOf(t))
	}
	return results, nil
}
