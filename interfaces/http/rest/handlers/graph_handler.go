package handlers

import (
	"encoding/json"
	"net/http"

	"synapse-backend/application/services"
	"synapse-backend/pkg/auth"
	pkgerrors "synapse-backend/pkg/errors"
	"synapse-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GraphHandler handles graph-container HTTP requests
type GraphHandler struct {
	graphs *services.GraphService
	logger *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(graphs *services.GraphService, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		graphs: graphs,
		logger: logger,
	}
}

// CreateGraphRequest represents the request body for creating a graph
type CreateGraphRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// RenameGraphRequest represents the request body for renaming a graph
type RenameGraphRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ListGraphs handles GET /graphs
func (h *GraphHandler) ListGraphs(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		respondAppError(h.logger, w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	graphs, err := h.graphs.List(r.Context(), userCtx.UserID)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, graphs)
}

// CreateGraph handles POST /graphs
func (h *GraphHandler) CreateGraph(w http.ResponseWriter, r *http.Request) {
	var req CreateGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		respondAppError(h.logger, w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	graph, err := h.graphs.Create(r.Context(), userCtx.UserID, req.Name)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, graph)
}

// GetGraph handles GET /graphs/{graphID}
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		respondAppError(h.logger, w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	graph, err := h.graphs.Get(r.Context(), userCtx.UserID, chi.URLParam(r, "graphID"))
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, graph)
}

// RenameGraph handles PATCH /graphs/{graphID}
func (h *GraphHandler) RenameGraph(w http.ResponseWriter, r *http.Request) {
	var req RenameGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		respondAppError(h.logger, w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	graph, err := h.graphs.Rename(r.Context(), userCtx.UserID, chi.URLParam(r, "graphID"), req.Name)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, graph)
}

// DeleteGraph handles DELETE /graphs/{graphID}; the graph and everything it
// owns go together or not at all.
func (h *GraphHandler) DeleteGraph(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		respondAppError(h.logger, w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	if err := h.graphs.Delete(r.Context(), userCtx.UserID, chi.URLParam(r, "graphID")); err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
