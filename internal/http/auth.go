package httpapi

import (
	"context"
	"net/http"
	"strings"

	"fittrack-backend-go/internal/services"
)

type contextKey string

const ctxUserID contextKey = "userID"

// WithAuth verifies the bearer token and stores the account id in the
// request context. Missing, malformed, expired, and badly signed tokens are
// indistinguishable to the caller.
func WithAuth(tokens services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "No token provided")
				return
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			userID, err := tokens.Verify(tokenStr)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CurrentUserID(r *http.Request) string {
	if value, ok := r.Context().Value(ctxUserID).(string); ok {
		return value
	}
	return ""
}

// RequireAdmin guards the administration surface. The token only carries the
// account id, so the role comes from the store.
func (s *Server) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := services.GetUser(r.Context(), s.DB, CurrentUserID(r))
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		if !services.IsAdmin(user) {
			WriteError(w, http.StatusForbidden, "Not allowed")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authorizeOwnerOrAdmin lets an account act on itself and admins act on
// anyone.
func (s *Server) authorizeOwnerOrAdmin(r *http.Request, targetID string) error {
	callerID := CurrentUserID(r)
	if callerID == targetID {
		return nil
	}
	caller, err := services.GetUser(r.Context(), s.DB, callerID)
	if err != nil {
		return err
	}
	if !services.IsAdmin(caller) {
		return services.ErrForbidden("Not allowed")
	}
	return nil
}
