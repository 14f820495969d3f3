package services

import (
	"context"

	"synapse-backend/application/ports"
	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"

	"go.uber.org/zap"
)

// NodeEdges groups the edges touching one node by direction.
type NodeEdges struct {
	Outgoing []*domain.Edge `json:"outgoing"`
	Incoming []*domain.Edge `json:"incoming"`
}

// EdgeService implements edge CRUD within a scope, enforcing that both
// endpoints are live nodes at creation time. Endpoints are immutable after
// creation; only the label may change.
type EdgeService struct {
	edges  ports.EdgeRepository
	nodes  ports.NodeRepository
	logger *zap.Logger
}

// NewEdgeService creates a new edge service
func NewEdgeService(edges ports.EdgeRepository, nodes ports.NodeRepository, logger *zap.Logger) *EdgeService {
	return &EdgeService{
		edges:  edges,
		nodes:  nodes,
		logger: logger,
	}
}

// Create adds a directed edge after two point reads confirm both endpoints
// exist in scope. Self-loops and parallel edges are allowed.
func (s *EdgeService) Create(ctx context.Context, scope domain.Scope, sourceID, targetID, label string) (*domain.Edge, error) {
	edge, err := domain.NewEdge(sourceID, targetID, label)
	if err != nil {
		return nil, err
	}

	if _, err := s.nodes.FindByID(ctx, scope, sourceID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NewInvalidEndpointError("invalid source or target node")
		}
		return nil, err
	}
	if _, err := s.nodes.FindByID(ctx, scope, targetID); err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NewInvalidEndpointError("invalid source or target node")
		}
		return nil, err
	}

	created, err := s.edges.Create(ctx, scope, edge)
	if err != nil {
		return nil, err
	}

	s.logger.Info("edge created",
		zap.String("userID", scope.UserID),
		zap.String("graphID", scope.GraphID),
		zap.String("edgeID", created.ID),
		zap.String("sourceID", sourceID),
		zap.String("targetID", targetID),
	)

	return created, nil
}

// UpdateLabel changes the label of an existing edge and returns the record
// re-read from the store.
func (s *EdgeService) UpdateLabel(ctx context.Context, scope domain.Scope, edgeID, label string) (*domain.Edge, error) {
	if label == "" {
		return nil, pkgerrors.NewValidationError("label is required for update")
	}

	edge, err := s.edges.FindByID(ctx, scope, edgeID)
	if err != nil {
		return nil, err
	}

	edge.Label = label
	edge.Touch()
	if err := s.edges.Update(ctx, scope, edge); err != nil {
		return nil, err
	}

	return s.edges.FindByID(ctx, scope, edgeID)
}

// Delete removes a single edge. Edges own nothing, so there is no cascade.
func (s *EdgeService) Delete(ctx context.Context, scope domain.Scope, edgeID string) error {
	if _, err := s.edges.FindByID(ctx, scope, edgeID); err != nil {
		return err
	}
	return s.edges.Delete(ctx, scope, edgeID)
}

// ListByNode returns the edges touching a node, grouped by direction.
// Used for node-detail display and for cascade discovery.
func (s *EdgeService) ListByNode(ctx context.Context, scope domain.Scope, nodeID string) (*NodeEdges, error) {
	outgoing, err := s.edges.FindBySource(ctx, scope, nodeID)
	if err != nil {
		return nil, err
	}
	incoming, err := s.edges.FindByTarget(ctx, scope, nodeID)
	if err != nil {
		return nil, err
	}

	return &NodeEdges{Outgoing: outgoing, Incoming: incoming}, nil
}
