package food

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

type catalog interface {
	Search(query string, limit int) []domain.Food
}

// Service exposes the static food catalog.
type Service struct {
	catalog catalog
	limit   int
	log     *slog.Logger
}

// NewService creates a food service returning at most limit results per search.
func NewService(log *slog.Logger, catalog catalog, limit int) *Service {
	return &Service{
		catalog: catalog,
		limit:   limit,
		log:     log.With("service", "food"),
	}
}

// Search returns foods whose description contains query, case-insensitively.
func (s *Service) Search(ctx context.Context, query string) []domain.Food {
	query = strings.TrimSpace(query)
	results := s.catalog.Search(query, s.limit)

	s.log.DebugContext(ctx, "food search",
		slog.String("query", query),
		slog.Int("results", len(results)),
	)

	return results
}
