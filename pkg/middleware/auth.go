package middleware

import (
	"net/http"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer token against the session store written by
// the external identity provider. Only the stored principal id and role are
// trusted past this point.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetPrincipalContext(r.Context(), session.GuestID, string(session.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the session role. Staff routes accept admins
// as well.
func RequireRole(role entity.Role, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			allowed := current == string(role) || current == string(entity.RoleAdmin)
			if !allowed {
				logger.Warn("Role check failed",
					zap.String("required", string(role)),
					zap.String("actual", current),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Insufficient privileges")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
