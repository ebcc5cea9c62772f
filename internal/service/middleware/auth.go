package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"item_simulator/domain"
	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/session"

	"go.uber.org/zap"
)

type identityKey struct{}

// AuthGuard authenticates requests on protected routes. It verifies
// the bearer access token, cross-checks the identity against the
// session registry, and attaches the identity to the request context.
// An expired access token does not fail the request on its own: while
// the registry still holds a valid refresh token for that identity, a
// replacement access token is minted and surfaced in the Authorization
// response header.
type AuthGuard struct {
	access   JwtTokenService
	refresh  JwtTokenService
	sessions *session.Registry
}

func NewAuthGuard(access JwtTokenService, refresh JwtTokenService, sessions *session.Registry) *AuthGuard {
	return &AuthGuard{
		access:   access,
		refresh:  refresh,
		sessions: sessions,
	}
}

func (g *AuthGuard) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := GetRequestID(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			g.reject(w, requestID, domain.ErrUnauthenticated)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			g.reject(w, requestID, domain.ErrMalformedToken)
			return
		}

		claims, err := g.access.Validate(tokenString)
		switch {
		case err == nil:
			if !g.sessions.Contains(claims.Username) {
				g.reject(w, requestID, domain.ErrStaleToken)
				return
			}
		case errors.Is(err, ErrTokenExpired):
			claims, err = g.refreshExpired(w, tokenString)
			if err != nil {
				g.reject(w, requestID, domain.ErrInvalidRefresh)
				return
			}
		default:
			g.reject(w, requestID, domain.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), claims.Username)))
	})
}

// refreshExpired recovers the identity from the expired access token,
// requires a still-valid refresh token in the registry, and mints a
// replacement access token into the response header.
func (g *AuthGuard) refreshExpired(w http.ResponseWriter, tokenString string) (*JwtClaims, error) {
	claims, err := g.access.DecodeUnverified(tokenString)
	if err != nil {
		return nil, err
	}

	refreshToken, ok := g.sessions.Token(claims.Username)
	if !ok {
		return nil, ErrTokenInvalid
	}
	if _, err := g.refresh.Validate(refreshToken); err != nil {
		return nil, err
	}

	accessToken, err := g.access.Create(claims.Username)
	if err != nil {
		return nil, err
	}
	w.Header().Set("Authorization", "Bearer "+accessToken)

	return claims, nil
}

func (g *AuthGuard) reject(w http.ResponseWriter, requestID string, err *domain.Error) {
	logger.AccessLogger.Warn("Rejected request",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{"message": err.Message}); encodeErr != nil {
		logger.AccessLogger.Error("Failed to encode rejection",
			zap.String("request_id", requestID),
			zap.Error(encodeErr),
		)
	}
}

func WithIdentity(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, identityKey{}, username)
}

// GetIdentity returns the username the auth guard attached to ctx.
func GetIdentity(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(identityKey{}).(string)
	return username, ok
}
