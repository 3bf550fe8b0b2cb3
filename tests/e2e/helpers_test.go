//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/nutrilog-backend/internal/adapter/foodcsv"
	"github.com/heartmarshall/nutrilog-backend/internal/adapter/postgres"
	mealrepo "github.com/heartmarshall/nutrilog-backend/internal/adapter/postgres/meal"
	"github.com/heartmarshall/nutrilog-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/nutrilog-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/nutrilog-backend/internal/auth"
	"github.com/heartmarshall/nutrilog-backend/internal/config"
	"github.com/heartmarshall/nutrilog-backend/internal/domain"
	authsvc "github.com/heartmarshall/nutrilog-backend/internal/service/auth"
	"github.com/heartmarshall/nutrilog-backend/internal/service/food"
	"github.com/heartmarshall/nutrilog-backend/internal/service/meal"
	"github.com/heartmarshall/nutrilog-backend/internal/transport/middleware"
	"github.com/heartmarshall/nutrilog-backend/internal/transport/rest"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func f64(v float64) *float64 { return &v }

// setupTestServer wires the full HTTP stack against the shared Postgres
// container from testhelper.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-secret-that-is-definitely-long-enough",
		JWTIssuer:        "nutrilog-e2e",
		AccessTokenTTL:   time.Hour,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	catalog := foodcsv.NewCatalog([]domain.Food{
		{Description: "Rice, white, cooked", EnergyPer100: f64(130), ProteinPer100: f64(2.7), FatPer100: f64(0.3), CarbPer100: f64(28)},
		{Description: "Apple", EnergyPer100: f64(52), CarbPer100: f64(14)},
		{Description: "Pineapple", EnergyPer100: f64(50)},
	})

	authService := authsvc.NewService(logger, userrepo.New(pool), postgres.NewTxManager(pool), jwtMgr, authCfg)
	mealService := meal.NewService(logger, mealrepo.New(pool))
	foodService := food.NewService(logger, catalog, 50)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, catalog, "e2e"),
		Auth:   rest.NewAuthHandler(authService, logger),
		Meals:  rest.NewMealHandler(mealService, logger),
		Foods:  rest.NewFoodHandler(foodService, logger),
	}, rest.RouterConfig{
		RequireAuth: middleware.RequireAuth(authService),
		AuthLimit:   limiter.Limit(1000),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.BodyLimit(1<<20),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// do sends a JSON request and decodes the JSON response into out (if non-nil).
func (ts *testServer) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// register creates a fresh account and returns its token.
func (ts *testServer) register(t *testing.T) (token, email string) {
	t.Helper()

	email = fmt.Sprintf("e2e-%s@example.com", uuid.NewString()[:8])
	var resp map[string]any
	status := ts.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": "secret123",
	}, &resp)
	require.Equal(t, http.StatusCreated, status, resp)

	token, _ = resp["token"].(string)
	require.NotEmpty(t, token)
	return token, email
}
