package services

import (
	"context"
	"strings"

	"synapse-backend/application/ports"
	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"

	"go.uber.org/zap"
)

// NodeDetail bundles a node with the edges touching it in either direction.
type NodeDetail struct {
	Node          *domain.Node   `json:"node"`
	IncomingEdges []*domain.Edge `json:"incomingEdges"`
	OutgoingEdges []*domain.Edge `json:"outgoingEdges"`
}

// NodeService implements node CRUD within a scope, enforcing title
// uniqueness among live nodes. Every decision re-reads from the store;
// no entity state is cached between requests.
type NodeService struct {
	nodes   ports.NodeRepository
	edges   ports.EdgeRepository
	cascade *CascadeCoordinator
	logger  *zap.Logger
}

// NewNodeService creates a new node service
func NewNodeService(
	nodes ports.NodeRepository,
	edges ports.EdgeRepository,
	cascade *CascadeCoordinator,
	logger *zap.Logger,
) *NodeService {
	return &NodeService{
		nodes:   nodes,
		edges:   edges,
		cascade: cascade,
		logger:  logger,
	}
}

// List returns every node in scope as {id, title}. When search is non-empty
// only nodes whose title contains it case-insensitively are kept. The store
// gives no ordering guarantee; callers sort if they need one.
func (s *NodeService) List(ctx context.Context, scope domain.Scope, search string) ([]domain.NodeSummary, error) {
	nodes, err := s.nodes.FindByScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(search)
	summaries := make([]domain.NodeSummary, 0, len(nodes))
	for _, node := range nodes {
		if search == "" || strings.Contains(strings.ToLower(node.Title), needle) {
			summaries = append(summaries, node.Summary())
		}
	}

	return summaries, nil
}

// Create adds a node after checking that no live node in scope carries the
// same title. The check is an equality query immediately before the write;
// two concurrent creates can both pass it (documented limitation).
func (s *NodeService) Create(ctx context.Context, scope domain.Scope, title, content string) (*domain.Node, error) {
	node, err := domain.NewNode(title, content)
	if err != nil {
		return nil, err
	}

	existing, err := s.nodes.FindByTitle(ctx, scope, title)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, pkgerrors.NewDuplicateError("node with this title already exists")
	}

	created, err := s.nodes.Create(ctx, scope, node)
	if err != nil {
		return nil, err
	}

	s.logger.Info("node created",
		zap.String("userID", scope.UserID),
		zap.String("graphID", scope.GraphID),
		zap.String("nodeID", created.ID),
	)

	return created, nil
}

// Get returns a single node or NotFound.
func (s *NodeService) Get(ctx context.Context, scope domain.Scope, nodeID string) (*domain.Node, error) {
	return s.nodes.FindByID(ctx, scope, nodeID)
}

// GetDetail returns a node together with its incoming and outgoing edges.
func (s *NodeService) GetDetail(ctx context.Context, scope domain.Scope, nodeID string) (*NodeDetail, error) {
	node, err := s.nodes.FindByID(ctx, scope, nodeID)
	if err != nil {
		return nil, err
	}

	outgoing, err := s.edges.FindBySource(ctx, scope, nodeID)
	if err != nil {
		return nil, err
	}
	incoming, err := s.edges.FindByTarget(ctx, scope, nodeID)
	if err != nil {
		return nil, err
	}

	return &NodeDetail{
		Node:          node,
		IncomingEdges: incoming,
		OutgoingEdges: outgoing,
	}, nil
}

// Update patches title and/or content. A nil pointer means "leave as is";
// at least one field must be given. A title change re-runs the uniqueness
// check excluding the node's own ID. The returned record is re-read from
// the store so it always reflects committed state.
func (s *NodeService) Update(ctx context.Context, scope domain.Scope, nodeID string, title, content *string) (*domain.Node, error) {
	if title == nil && content == nil {
		return nil, pkgerrors.NewValidationError("nothing to update")
	}

	node, err := s.nodes.FindByID(ctx, scope, nodeID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		if *title == "" {
			return nil, pkgerrors.NewValidationError("title cannot be empty")
		}
		existing, err := s.nodes.FindByTitle(ctx, scope, *title)
		if err != nil {
			return nil, err
		}
		for _, other := range existing {
			if other.ID != nodeID {
				return nil, pkgerrors.NewDuplicateError("another node with this title already exists")
			}
		}
		node.Title = *title
	}

	if content != nil {
		if *content == "" {
			return nil, pkgerrors.NewValidationError("content cannot be empty")
		}
		node.Content = *content
	}

	node.Touch()
	if err := s.nodes.Update(ctx, scope, node); err != nil {
		return nil, err
	}

	return s.nodes.FindByID(ctx, scope, nodeID)
}

// Delete removes the node and every edge touching it as one atomic unit.
func (s *NodeService) Delete(ctx context.Context, scope domain.Scope, nodeID string) error {
	return s.cascade.DeleteNode(ctx, scope, nodeID)
}
