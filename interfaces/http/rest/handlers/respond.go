package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"synapse-backend/application/services"
	"synapse-backend/domain"
	"synapse-backend/pkg/auth"
	pkgerrors "synapse-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// respondJSON writes a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// respondError writes the API's error body shape: {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondAppError maps a service error to its HTTP status. Client errors
// surface their own message; infrastructure failures are logged and reported
// as a generic 500 so internals never leak into responses.
func respondAppError(logger *zap.Logger, w http.ResponseWriter, err error) {
	appErr := pkgerrors.GetAppError(err)
	if appErr == nil {
		logger.Error("unclassified error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		respondError(w, appErr.HTTPStatus, "internal server error")
		return
	}

	respondError(w, appErr.HTTPStatus, appErr.Message)
}

// resolveScope derives the storage scope for the request: the verified user
// plus the graph from the URL, or the lazily created default graph when the
// route carries no graph ID.
func resolveScope(ctx context.Context, r *http.Request, resolver *services.ScopeResolver) (domain.Scope, error) {
	userCtx, err := auth.GetUserFromContext(ctx)
	if err != nil {
		return domain.Scope{}, pkgerrors.NewUnauthorizedError("")
	}

	return resolver.Resolve(ctx, userCtx.UserID, chi.URLParam(r, "graphID"))
}
