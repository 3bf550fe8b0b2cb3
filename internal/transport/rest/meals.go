package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/nutrilog-backend/internal/domain"
	"github.com/heartmarshall/nutrilog-backend/internal/service/meal"
	"github.com/heartmarshall/nutrilog-backend/internal/service/nutrition"
	"github.com/heartmarshall/nutrilog-backend/pkg/ctxutil"
)

type mealService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, input meal.CreateEntryInput) (*meal.EntryResult, error)
	ListEntries(ctx context.Context, userID uuid.UUID, input meal.ListEntriesInput) ([]meal.EntryResult, error)
	DailySummary(ctx context.Context, userID uuid.UUID, input meal.ListEntriesInput) (*domain.DailySummary, error)
	DeleteEntry(ctx context.Context, userID uuid.UUID, input meal.DeleteEntryInput) (bool, error)
}

// MealHandler serves /api/meals. Every route expects RequireAuth in front.
type MealHandler struct {
	svc mealService
	log *slog.Logger
}

// NewMealHandler creates a MealHandler.
func NewMealHandler(svc mealService, logger *slog.Logger) *MealHandler {
	return &MealHandler{svc: svc, log: logger.With("handler", "meal")}
}

// looseValue accepts a JSON number, string or null and keeps its text.
type looseValue string

func (v *looseValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = looseValue(s)
		return nil
	}
	*v = looseValue(b)
	return nil
}

type createMealRequest struct {
	Date          string     `json:"date"`
	MealType      string     `json:"mealType"`
	Description   string     `json:"description"`
	Grams         looseValue `json:"grams"`
	EnergyPer100  looseValue `json:"energyPer100"`
	ProteinPer100 looseValue `json:"proteinPer100"`
	FatPer100     looseValue `json:"fatPer100"`
	CarbPer100    looseValue `json:"carbPer100"`
}

type totalsResponse struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Fat      *float64 `json:"fat"`
	Carbs    *float64 `json:"carbs"`
}

type mealEntryResponse struct {
	ID            string         `json:"id"`
	Date          string         `json:"date"`
	MealType      string         `json:"mealType"`
	Description   string         `json:"description"`
	Grams         json.Number    `json:"grams"`
	EnergyPer100  *float64       `json:"energyPer100"`
	ProteinPer100 *float64       `json:"proteinPer100"`
	FatPer100     *float64       `json:"fatPer100"`
	CarbPer100    *float64       `json:"carbPer100"`
	Totals        totalsResponse `json:"totals"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type summaryResponse struct {
	Date   string                         `json:"date"`
	Meals  map[string][]mealEntryResponse `json:"meals"`
	Totals dayTotalsResponse              `json:"totals"`
}

type dayTotalsResponse struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

type deleteResponse struct {
	Success bool `json:"success"`
	Deleted bool `json:"deleted"`
}

// Create handles POST /api/meals.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req createMealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	result, err := h.svc.CreateEntry(r.Context(), userID, meal.CreateEntryInput{
		Date:          req.Date,
		MealType:      req.MealType,
		Description:   req.Description,
		Grams:         string(req.Grams),
		EnergyPer100:  string(req.EnergyPer100),
		ProteinPer100: string(req.ProteinPer100),
		FatPer100:     string(req.FatPer100),
		CarbPer100:    string(req.CarbPer100),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMealEntryResponse(result.Entry, result.Totals))
}

// List handles GET /api/meals?date=YYYY-MM-DD.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	results, err := h.svc.ListEntries(r.Context(), userID, meal.ListEntriesInput{
		Date: r.URL.Query().Get("date"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]mealEntryResponse, 0, len(results))
	for _, res := range results {
		resp = append(resp, toMealEntryResponse(res.Entry, res.Totals))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Summary handles GET /api/meals/summary?date=YYYY-MM-DD.
func (h *MealHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	summary, err := h.svc.DailySummary(r.Context(), userID, meal.ListEntriesInput{
		Date: r.URL.Query().Get("date"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// Delete handles DELETE /api/meals/{id}.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	deleted, err := h.svc.DeleteEntry(r.Context(), userID, meal.DeleteEntryInput{
		EntryID: r.PathValue("id"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: true, Deleted: deleted})
}

func toMealEntryResponse(e domain.MealEntry, t domain.Totals) mealEntryResponse {
	return mealEntryResponse{
		ID:            e.ID.String(),
		Date:          e.Date.Format(domain.DateLayout),
		MealType:      e.MealType.String(),
		Description:   e.Description,
		Grams:         json.Number(e.Grams.String()),
		EnergyPer100:  e.Profile.EnergyPer100,
		ProteinPer100: e.Profile.ProteinPer100,
		FatPer100:     e.Profile.FatPer100,
		CarbPer100:    e.Profile.CarbPer100,
		Totals: totalsResponse{
			Calories: t.Calories,
			Protein:  t.Protein,
			Fat:      t.Fat,
			Carbs:    t.Carbs,
		},
		CreatedAt: e.CreatedAt,
	}
}

func toSummaryResponse(s *domain.DailySummary) summaryResponse {
	meals := make(map[string][]mealEntryResponse, len(domain.MealTypes))
	for _, mt := range domain.MealTypes {
		group := s.Meals.Get(mt)
		entries := make([]mealEntryResponse, 0, len(group))
		for _, e := range group {
			entries = append(entries, toMealEntryResponse(e, nutrition.EntryTotals(e)))
		}
		meals[mt.String()] = entries
	}

	return summaryResponse{
		Date:  s.Date.Format(domain.DateLayout),
		Meals: meals,
		Totals: dayTotalsResponse{
			Calories: s.Totals.Calories,
			Protein:  s.Totals.Protein,
			Fat:      s.Totals.Fat,
			Carbs:    s.Totals.Carbs,
		},
	}
}
