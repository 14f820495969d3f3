package services

import (
	"context"

	"synapse-backend/application/ports"
	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"

	"go.uber.org/zap"
)

// ScopeResolver derives the storage namespace for a user and graph pair.
// An empty graph ID resolves to the user's default graph, created lazily on
// first use; a supplied graph ID must name an existing graph owned by the
// user or the request fails as not found.
type ScopeResolver struct {
	graphs ports.GraphRepository
	logger *zap.Logger
}

// NewScopeResolver creates a new scope resolver
func NewScopeResolver(graphs ports.GraphRepository, logger *zap.Logger) *ScopeResolver {
	return &ScopeResolver{
		graphs: graphs,
		logger: logger,
	}
}

// Resolve returns the scope for a verified user and an optional graph ID.
func (r *ScopeResolver) Resolve(ctx context.Context, userID, graphID string) (domain.Scope, error) {
	if userID == "" {
		return domain.Scope{}, pkgerrors.NewUnauthorizedError("")
	}

	if graphID == "" {
		graph, err := r.ensureDefaultGraph(ctx, userID)
		if err != nil {
			return domain.Scope{}, err
		}
		return domain.NewScope(userID, graph.ID), nil
	}

	if _, err := r.graphs.FindByID(ctx, userID, graphID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return domain.Scope{}, pkgerrors.NewScopeNotFoundError(graphID)
		}
		return domain.Scope{}, err
	}

	return domain.NewScope(userID, graphID), nil
}

// ensureDefaultGraph returns the user's default graph, creating it on first
// use. Two concurrent first requests can race here; the store keeps both
// writes and FindDefault settles on one of them afterwards.
func (r *ScopeResolver) ensureDefaultGraph(ctx context.Context, userID string) (*domain.Graph, error) {
	graph, err := r.graphs.FindDefault(ctx, userID)
	if err == nil {
		return graph, nil
	}
	if !pkgerrors.IsNotFound(err) {
		return nil, err
	}

	// The user may already own a graph carrying the default name. Adopt it
	// rather than creating a second live graph with the same name.
	existing, err := r.graphs.FindByName(ctx, userID, domain.DefaultGraphName)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		adopted := existing[0]
		adopted.IsDefault = true
		adopted.Touch()
		if err := r.graphs.Update(ctx, userID, adopted); err != nil {
			return nil, err
		}

		r.logger.Info("existing graph adopted as default",
			zap.String("userID", userID),
			zap.String("graphID", adopted.ID),
		)

		return adopted, nil
	}

	created, err := domain.NewGraph(domain.DefaultGraphName)
	if err != nil {
		return nil, err
	}
	created.IsDefault = true

	saved, err := r.graphs.Create(ctx, userID, created)
	if err != nil {
		// Another request may have created it in the meantime.
		if existing, findErr := r.graphs.FindDefault(ctx, userID); findErr == nil {
			return existing, nil
		}
		return nil, err
	}

	r.logger.Info("default graph created",
		zap.String("userID", userID),
		zap.String("graphID", saved.ID),
	)

	return saved, nil
}
