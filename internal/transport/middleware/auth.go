package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/nutrilog-backend/internal/auth"
	"github.com/heartmarshall/nutrilog-backend/pkg/ctxutil"
)

const (
	msgMissingAuthHeader = "Missing Authorization header"
	msgInvalidToken      = "Invalid or expired token"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token before the
// wrapped handler reads the body. On success the user ID and email are
// placed in the request context.
func RequireAuth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				writeError(w, http.StatusUnauthorized, msgMissingAuthHeader)
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			claims, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			if rec, ok := w.(userRecorder); ok {
				rec.recordUser(claims.UserID)
			}

			ctx := ctxutil.WithUserID(r.Context(), claims.UserID)
			ctx = ctxutil.WithUserEmail(ctx, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
