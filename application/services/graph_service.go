package services

import (
	"context"

	"synapse-backend/application/ports"
	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"

	"go.uber.org/zap"
)

// GraphService implements graph-container CRUD at the user level, enforcing
// name uniqueness among the user's live graphs. Deletion cascades to every
// node and edge the graph owns.
type GraphService struct {
	graphs  ports.GraphRepository
	cascade *CascadeCoordinator
	logger  *zap.Logger
}

// NewGraphService creates a new graph service
func NewGraphService(graphs ports.GraphRepository, cascade *CascadeCoordinator, logger *zap.Logger) *GraphService {
	return &GraphService{
		graphs:  graphs,
		cascade: cascade,
		logger:  logger,
	}
}

// List returns every graph owned by the user.
func (s *GraphService) List(ctx context.Context, userID string) ([]*domain.Graph, error) {
	return s.graphs.FindByUser(ctx, userID)
}

// Get returns a single graph or NotFound.
func (s *GraphService) Get(ctx context.Context, userID, graphID string) (*domain.Graph, error) {
	return s.graphs.FindByID(ctx, userID, graphID)
}

// Create adds a graph after checking that no live graph of the user carries
// the same name. Same check-then-act caveat as node titles.
func (s *GraphService) Create(ctx context.Context, userID, name string) (*domain.Graph, error) {
	graph, err := domain.NewGraph(name)
	if err != nil {
		return nil, err
	}

	existing, err := s.graphs.FindByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, pkgerrors.NewDuplicateError("graph with this name already exists")
	}

	created, err := s.graphs.Create(ctx, userID, graph)
	if err != nil {
		return nil, err
	}

	s.logger.Info("graph created",
		zap.String("userID", userID),
		zap.String("graphID", created.ID),
	)

	return created, nil
}

// Rename changes a graph's name, re-running the uniqueness check excluding
// the graph's own ID, and returns the record re-read from the store.
func (s *GraphService) Rename(ctx context.Context, userID, graphID, name string) (*domain.Graph, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("name cannot be empty")
	}

	graph, err := s.graphs.FindByID(ctx, userID, graphID)
	if err != nil {
		return nil, err
	}

	existing, err := s.graphs.FindByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.ID != graphID {
			return nil, pkgerrors.NewDuplicateError("another graph with this name already exists")
		}
	}

	graph.Name = name
	graph.Touch()
	if err := s.graphs.Update(ctx, userID, graph); err != nil {
		return nil, err
	}

	return s.graphs.FindByID(ctx, userID, graphID)
}

// Delete removes the graph and everything it owns as one atomic unit.
// A deleted default graph is recreated lazily on the next un-nested request.
func (s *GraphService) Delete(ctx context.Context, userID, graphID string) error {
	return s.cascade.DeleteGraph(ctx, userID, graphID)
}
