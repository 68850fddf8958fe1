package adaptor

import (
	"net/http"
	"strings"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// Logout handles POST /api/session/logout (authenticated)
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		utils.ResponseUnauthorized(w, "Missing authorization token")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// LogoutEverywhere handles POST /api/session/logout-all (authenticated)
func (h *SessionHandler) LogoutEverywhere(w http.ResponseWriter, r *http.Request) {
	principalID, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.LogoutEverywhere(r.Context(), principalID.String()); err != nil {
		handleServiceError(w, h.log, err, "logout everywhere")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func bearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
