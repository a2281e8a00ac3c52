package handler

import (
	"log/slog"
	"net/http"

	"tempo/internal/domain/models"
	"tempo/internal/domain/services"
	"tempo/internal/httputil"
)

// StateHandler serves the full per-user dataset and profile updates
type StateHandler struct {
	stateService   services.StateService
	profileService services.ProfileService
	logger         *slog.Logger
}

// NewStateHandler creates a new state handler
func NewStateHandler(
	stateService services.StateService,
	profileService services.ProfileService,
	logger *slog.Logger,
) *StateHandler {
	return &StateHandler{
		stateService:   stateService,
		profileService: profileService,
		logger:         logger,
	}
}

// GetState returns the user's profile, folders, modules and entries in
// one response. Clients swap the whole payload into their snapshot.
// GET /api/state
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.stateService.GetState(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, state)
}

// UpdateProfile updates display name and weekly target
// PATCH /api/profile
func (h *StateHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	profile, err := h.profileService.UpdateProfile(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, profile)
}

// Health reports liveness
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
