package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/conectVagas/ConectaVagas/internal/model"
	"github.com/conectVagas/ConectaVagas/pkg/jwt"
)

// AuthService defines the interface for token validation
type AuthService interface {
	VerifyToken(token string) (*jwt.Claims, error)
}

// Auth returns a middleware that validates JWT tokens
func Auth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewUnauthorizedError("Token ausente").WriteJSON(w)
				return
			}

			// Check Bearer prefix
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewUnauthorizedError("Token ausente").WriteJSON(w)
				return
			}

			token := parts[1]

			// Expired, tampered and malformed tokens all read the same
			// from outside
			claims, err := authService.VerifyToken(token)
			if err != nil {
				model.NewUnauthorizedError("Token inválido").WriteJSON(w)
				return
			}

			// Add claims to context
			ctx := context.WithValue(r.Context(), CompanyIDKey, claims.CompanyID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsKey is the context key for JWT claims
const ClaimsKey contextKey = "claims"

// GetCompanyID extracts the authenticated company ID from context
func GetCompanyID(ctx context.Context) string {
	if id, ok := ctx.Value(CompanyIDKey).(string); ok {
		return id
	}
	return ""
}

// GetClaims extracts the JWT claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}
