package meal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

type mealRepo interface {
	Create(ctx context.Context, entry domain.NewMealEntry) (*domain.MealEntry, error)
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) (bool, error)
}

// Service provides meal logging operations. Every call is scoped to the
// user ID passed in by the caller.
type Service struct {
	meals mealRepo
	log   *slog.Logger
}

// NewService creates a new meal service.
func NewService(
	log *slog.Logger,
	meals mealRepo,
) *Service {
	return &Service{
		meals: meals,
		log:   log.With("service", "meal"),
	}
}
