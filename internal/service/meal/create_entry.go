package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

// CreateEntry validates the payload and stores a new entry for userID.
func (s *Service) CreateEntry(ctx context.Context, userID uuid.UUID, input CreateEntryInput) (*EntryResult, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	cmd, err := input.Normalize(userID)
	if err != nil {
		return nil, err
	}

	entry, err := s.meals.Create(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("create meal entry: %w", err)
	}

	s.log.InfoContext(ctx, "meal entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("meal_type", entry.MealType.String()),
	)

	res := newEntryResult(*entry)
	return &res, nil
}
