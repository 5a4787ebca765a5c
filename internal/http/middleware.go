package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/auth"
	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
)

type contextKey string

const principalKey contextKey = "principal"

// Authenticate verifies the bearer credential and attaches the caller
// identity to the request context. No role check happens here.
func Authenticate(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(w, http.StatusUnauthorized, "unauthorized", "Forbidden Access")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondError(w, http.StatusUnauthorized, "unauthorized", "Forbidden Access")
				return
			}

			principal, err := tokens.Verify(parts[1])
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "Forbidden Access")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group on the caller holding the given role.
// Short-circuits with 403 before any handler side effect.
func RequireRole(gate *auth.Gate, role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := principalFromContext(r.Context())
			if principal == nil {
				respondError(w, http.StatusUnauthorized, "unauthorized", "Forbidden Access")
				return
			}

			if err := gate.RequireRole(r.Context(), principal.Email, role); err != nil {
				respondServiceError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func principalFromContext(ctx context.Context) *auth.Principal {
	if p, ok := ctx.Value(principalKey).(*auth.Principal); ok {
		return p
	}
	return nil
}
