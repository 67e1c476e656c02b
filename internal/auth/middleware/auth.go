// Package middleware provides bearer-token authentication for HTTP handlers
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kortex/backend/internal/auth"
	"github.com/kortex/backend/internal/models"
)

type contextKey string

const userKey contextKey = "user"

// UserResolver resolves a token subject to the current user record
type UserResolver interface {
	// Method GetByUsername retrieves a user by username.
	//
	// If user with such username does not exist, models.ErrUserNotFound will be returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthMiddleware validates the JWT bearer token and loads the current user record.
// The user is re-read from the store on every request, so approval or admin flag
// changes take effect on the next call without re-login. All failure modes
// (missing token, bad signature, expired token, unknown subject) answer 401 with
// the same message so callers cannot tell which part failed.
func AuthMiddleware(tokenGenerator *auth.TokenGenerator, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			// Expected format: "Bearer <token>"
			var token string
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
					token = parts[1]
				}
			}

			if token == "" {
				respondUnauthorized(w)
				return
			}

			// Validate token and extract the subject username
			username, err := tokenGenerator.Validate(token)
			if err != nil {
				respondUnauthorized(w)
				return
			}

			// Resolve the subject to the current user record
			user, err := users.GetByUsername(r.Context(), username)
			if err != nil {
				respondUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware rejects requests from non-admin users with 403.
// Must be applied after AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			respondUnauthorized(w)
			return
		}

		if !user.IsAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"admin access required"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUser retrieves the authenticated user from context
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// WithUser returns a context carrying the given user. Used by handler tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"could not validate credentials"}`))
}
