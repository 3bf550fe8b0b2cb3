package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

// DeleteEntry removes an entry owned by userID. It reports false, not an
// error, when no such entry exists for that user.
func (s *Service) DeleteEntry(ctx context.Context, userID uuid.UUID, input DeleteEntryInput) (bool, error) {
	if userID == uuid.Nil {
		return false, domain.ErrUnauthorized
	}

	entryID, err := input.Validate()
	if err != nil {
		return false, err
	}

	deleted, err := s.meals.Delete(ctx, userID, entryID)
	if err != nil {
		return false, fmt.Errorf("delete meal entry: %w", err)
	}

	s.log.InfoContext(ctx, "meal entry delete",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
		slog.Bool("deleted", deleted),
	)

	return deleted, nil
}
