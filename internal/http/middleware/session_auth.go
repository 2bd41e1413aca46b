package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pawdesk/booking-widget/internal/session"
)

type contextKey string

const sessionClaimsKey contextKey = "sessionClaims"

// SessionAuth enforces a bearer widget session token. The token must parse
// and verify against the issuer, and its id must still be active in the
// store, so revoked sessions are rejected before their JWT expiry.
func SessionAuth(issuer *session.Issuer, store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}
			claims, err := issuer.Parse(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			active, err := store.Active(r.Context(), claims.ID)
			if err != nil {
				http.Error(w, "session lookup failed", http.StatusInternalServerError)
				return
			}
			if !active {
				http.Error(w, "session revoked or expired", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionClaimsFromContext returns the widget session claims if present.
func SessionClaimsFromContext(ctx context.Context) (*session.Claims, bool) {
	claims, ok := ctx.Value(sessionClaimsKey).(*session.Claims)
	return claims, ok
}
