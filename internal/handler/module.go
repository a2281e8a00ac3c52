package handler

import (
	"log/slog"
	"net/http"

	"tempo/internal/domain/models"
	"tempo/internal/domain/services"
	"tempo/internal/httputil"
)

// ModuleHandler handles module HTTP requests
type ModuleHandler struct {
	moduleService services.ModuleService
	logger        *slog.Logger
}

// NewModuleHandler creates a new module handler
func NewModuleHandler(moduleService services.ModuleService, logger *slog.Logger) *ModuleHandler {
	return &ModuleHandler{
		moduleService: moduleService,
		logger:        logger,
	}
}

// CreateModule creates a new module inside a folder
// POST /api/modules
func (h *ModuleHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req models.CreateModuleRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	module, err := h.moduleService.CreateModule(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, module)
}

// GetModule retrieves a module by ID
// GET /api/modules/{id}
func (h *ModuleHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Module ID is required")
		return
	}

	module, err := h.moduleService.GetModule(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, module)
}

// UpdateModule updates a module, optionally moving it to another folder
// PATCH /api/modules/{id}
func (h *ModuleHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Module ID is required")
		return
	}

	var req models.UpdateModuleRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	module, err := h.moduleService.UpdateModule(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, module)
}

// DeleteModule deletes a module and its entries
// DELETE /api/modules/{id}
func (h *ModuleHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Module ID is required")
		return
	}

	if err := h.moduleService.DeleteModule(r.Context(), id, httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
