package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

type foodService interface {
	Search(ctx context.Context, query string) []domain.Food
}

// FoodHandler serves the public food catalog search.
type FoodHandler struct {
	svc foodService
	log *slog.Logger
}

// NewFoodHandler creates a FoodHandler.
func NewFoodHandler(svc foodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{svc: svc, log: logger.With("handler", "food")}
}

type foodResponse struct {
	Description string   `json:"description"`
	EnergyKcal  *float64 `json:"energyKcal"`
	ProteinG    *float64 `json:"proteinG"`
	FatG        *float64 `json:"fatG"`
	CarbG       *float64 `json:"carbG"`
}

// Search handles GET /api/foods?q=.
func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	foods := h.svc.Search(r.Context(), q)
	h.log.DebugContext(r.Context(), "food search", slog.String("q", q), slog.Int("results", len(foods)))

	resp := make([]foodResponse, 0, len(foods))
	for _, f := range foods {
		resp = append(resp, foodResponse{
			Description: f.Description,
			EnergyKcal:  f.EnergyPer100,
			ProteinG:    f.ProteinPer100,
			FatG:        f.FatPer100,
			CarbG:       f.CarbPer100,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
