package handlers

import (
	"encoding/json"
	"net/http"

	"synapse-backend/application/services"
	"synapse-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NodeHandler handles node-related HTTP requests
type NodeHandler struct {
	nodes    *services.NodeService
	resolver *services.ScopeResolver
	logger   *zap.Logger
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(nodes *services.NodeService, resolver *services.ScopeResolver, logger *zap.Logger) *NodeHandler {
	return &NodeHandler{
		nodes:    nodes,
		resolver: resolver,
		logger:   logger,
	}
}

// CreateNodeRequest represents the request body for creating a node
type CreateNodeRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required"`
}

// UpdateNodeRequest represents the request body for updating a node.
// Absent fields are left unchanged; present-but-empty fields are rejected.
type UpdateNodeRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
}

// ListNodes handles GET /nodes. An optional ?search= query keeps only nodes
// whose title contains the term case-insensitively.
func (h *NodeHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	scope, err := resolveScope(r.Context(), r, h.resolver)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	summaries, err := h.nodes.List(r.Context(), scope, r.URL.Query().Get("search"))
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, summaries)
}

// CreateNode handles POST /nodes
func (h *NodeHandler) CreateNode(w http.ResponseWriter, r *http.Request) {
	var req CreateNodeRequest
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

	node, err := h.nodes.Create(r.Context(), scope, req.Title, req.Content)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, node)
}

// GetNode handles GET /nodes/{nodeID}; the response bundles the node with
// its incoming and outgoing edges.
func (h *NodeHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	scope, err := resolveScope(r.Context(), r, h.resolver)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	detail, err := h.nodes.GetDetail(r.Context(), scope, chi.URLParam(r, "nodeID"))
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// UpdateNode handles PATCH /nodes/{nodeID}
func (h *NodeHandler) UpdateNode(w http.ResponseWriter, r *http.Request) {
	var req UpdateNodeRequest
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

	node, err := h.nodes.Update(r.Context(), scope, chi.URLParam(r, "nodeID"), req.Title, req.Content)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	respondJSON(w, http.StatusOK, node)
}

// DeleteNode handles DELETE /nodes/{nodeID}; the node and every edge
// touching it go together or not at all.
func (h *NodeHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	scope, err := resolveScope(r.Context(), r, h.resolver)
	if err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	if err := h.nodes.Delete(r.Context(), scope, chi.URLParam(r, "nodeID")); err != nil {
		respondAppError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
