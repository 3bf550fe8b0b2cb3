package auth

import (
	"context"
	"fmt"

	"github.com/heartmarshall/nutrilog-backend/internal/auth"
	"github.com/heartmarshall/nutrilog-backend/internal/domain"
)

// ValidateToken verifies an access token and returns the identity it carries.
func (s *Service) ValidateToken(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", "error", err)
		return auth.Claims{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return claims, nil
}
