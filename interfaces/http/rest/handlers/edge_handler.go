package handlers

import (
	"encoding/json"
	"net/http"

	"synapse-backend/application/services"
	"synapse-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EdgeHandler handles edge-related HTTP requests
type EdgeHandler struct {
	edges    *services.EdgeService
	resolver *services.ScopeResolver
	logger   *zap.Logger
}

// NewEdgeHandler creates a new edge handler
func NewEdgeHandler(edges *services.EdgeService, resolver *services.ScopeResolver, logger *zap.Logger) *EdgeHandler {
	return &EdgeHandler{
		edges:    edges,
		resolver: resolver,
		logger:   logger,
	}
}

// CreateEdgeRequest represents the request body for creating an edge
type CreateEdgeRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
	Label  string `json:"label" validate:"required,max=200"`
}

// UpdateEdgeRequest represents the request body for updating an edge.
// Endpoints are immutable; only the label may change.
type UpdateEdgeRequest struct {
	Label string `json:"label" validate:"required,max=200"`
}

// CreateEdge handles POST /edges
func (h *EdgeHandler) CreateEdge(w http.ResponseWriter, r *http.Request) {
	var req CreateEdgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	scope, err := resolveScope(r.Context(), r, h.resolver)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	edge, err := h.edges.Create(r.Context(), scope, req.Source, req.Target, req.Label)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, edge)
}

// UpdateEdge handles PATCH /edges/{edgeID}
func (h *EdgeHandler) UpdateEdge(w http.ResponseWriter, r *http.Request) {
	var req UpdateEdgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	scope, err := resolveScope(r.Context(), r, h.resolver)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	edge, err := h.edges.UpdateLabel(r.Context(), scope, chi.URLParam(r, "edgeID"), req.Label)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, edge)
}

// DeleteEdge handles DELETE /edges/{edgeID}
func (h *EdgeHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	scope, err := resolveScope(r.Context(), r, h.resolver)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	if err := h.edges.Delete(r.Context(), scope, chi.URLParam(r, "edgeID")); err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListNodeEdges handles GET /nodes/{nodeID}/edges; edges are grouped by
// direction relative to the node.
func (h *EdgeHandler) ListNodeEdges(w http.ResponseWriter, r *http.Request) {
	scope, err := resolveScope(r.Context(), r, h.resolver)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	edges, err := h.edges.ListByNode(r.Context(), scope, chi.URLParam(r, "nodeID"))
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, edges)
}
