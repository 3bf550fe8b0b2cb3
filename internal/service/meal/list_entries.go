package meal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
	"github.com/heartmarshall/nutrilog-backend/internal/service/nutrition"
)

// ListEntries returns the user's entries for one date in meal-type order.
func (s *Service) ListEntries(ctx context.Context, userID uuid.UUID, input ListEntriesInput) ([]EntryResult, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	date, err := input.Validate()
	if err != nil {
		return nil, err
	}

	entries, err := s.meals.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list meal entries: %w", err)
	}

	results := make([]EntryResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, newEntryResult(e))
	}
	return results, nil
}

// DailySummary groups the user's entries for one date and totals them.
func (s *Service) DailySummary(ctx context.Context, userID uuid.UUID, input ListEntriesInput) (*domain.DailySummary, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	date, err := input.Validate()
	if err != nil {
		return nil, err
	}

	entries, err := s.meals.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list meal entries: %w", err)
	}

	summary := nutrition.Aggregate(date, entries)
	return &summary, nil
}
