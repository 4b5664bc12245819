package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/tayo/teamwork-backend/internal/api/respond"
	"github.com/tayo/teamwork-backend/internal/token"
)

type contextKey string

const (
	ClaimsKey contextKey = "claims"
)

// Auth verifies the session token and attaches its claims to the request
// context. The token comes from the legacy teamworkToken header or from a
// standard Authorization bearer header. Both missing and invalid tokens are
// bad requests, matching the API this service replaces.
func Auth(tokens *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := extractToken(r)
			if tok == "" {
				log.Printf("ERROR [middleware.Auth] no token provided")
				respond.Error(w, http.StatusBadRequest, "No token provided")
				return
			}

			claims, err := tokens.Verify(tok)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token verification failed: %v", err)
				respond.Error(w, http.StatusBadRequest, "Invalid token provided")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin gates elevated operations. It must run after Auth; it reads the
// claims Auth attached and trusts the embedded admin flag for the lifetime of
// the token.
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok || !claims.Admin {
			respond.Error(w, http.StatusForbidden, "Access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetClaims(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*token.Claims)
	return claims, ok
}

func extractToken(r *http.Request) string {
	if tok := r.Header.Get("teamworkToken"); tok != "" {
		return tok
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
