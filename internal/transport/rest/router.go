package rest

import (
	"net/http"

	"github.com/heartmarshall/nutrilog-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health *HealthHandler
	Auth   *AuthHandler
	Meals  *MealHandler
	Foods  *FoodHandler
}

// RouterConfig carries the per-group middleware built by the caller.
type RouterConfig struct {
	RequireAuth middleware.Middleware
	AuthLimit   middleware.Middleware
}

// NewRouter registers every route on a method-aware ServeMux.
// Meal routes sit behind RequireAuth, auth routes behind AuthLimit.
func NewRouter(h Handlers, cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", cfg.AuthLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", cfg.AuthLimit(http.HandlerFunc(h.Auth.Login)))

	mux.HandleFunc("GET /api/foods", h.Foods.Search)

	mux.Handle("POST /api/meals", cfg.RequireAuth(http.HandlerFunc(h.Meals.Create)))
	mux.Handle("GET /api/meals", cfg.RequireAuth(http.HandlerFunc(h.Meals.List)))
	mux.Handle("GET /api/meals/summary", cfg.RequireAuth(http.HandlerFunc(h.Meals.Summary)))
	mux.Handle("DELETE /api/meals/{id}", cfg.RequireAuth(http.HandlerFunc(h.Meals.Delete)))

	return mux
}
