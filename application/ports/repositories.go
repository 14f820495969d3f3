package ports

import (
	"context"

	"synapse-backend/domain"
)

// NodeRepository persists nodes within a scope. Implementations assign the
// ID on Create and return NotFound from FindByID when the document is absent.
type NodeRepository interface {
	Create(ctx context.Context, scope domain.Scope, node *domain.Node) (*domain.Node, error)
	FindByID(ctx context.Context, scope domain.Scope, nodeID string) (*domain.Node, error)
	// FindByTitle runs an exact, case-sensitive equality query.
	FindByTitle(ctx context.Context, scope domain.Scope, title string) ([]*domain.Node, error)
	FindByScope(ctx context.Context, scope domain.Scope) ([]*domain.Node, error)
	Update(ctx context.Context, scope domain.Scope, node *domain.Node) error
}

// EdgeRepository persists edges within a scope. Single-document deletes go
// through Delete; multi-document deletes go through the BatchWriter.
type EdgeRepository interface {
	Create(ctx context.Context, scope domain.Scope, edge *domain.Edge) (*domain.Edge, error)
	FindByID(ctx context.Context, scope domain.Scope, edgeID string) (*domain.Edge, error)
	FindBySource(ctx context.Context, scope domain.Scope, nodeID string) ([]*domain.Edge, error)
	FindByTarget(ctx context.Context, scope domain.Scope, nodeID string) ([]*domain.Edge, error)
	FindByScope(ctx context.Context, scope domain.Scope) ([]*domain.Edge, error)
	Update(ctx context.Context, scope domain.Scope, edge *domain.Edge) error
	Delete(ctx context.Context, scope domain.Scope, edgeID string) error
}

// GraphRepository persists graph containers at the user level.
// Graph deletion is never direct; it is committed by the BatchWriter
// together with the owned documents.
type GraphRepository interface {
	Create(ctx context.Context, userID string, graph *domain.Graph) (*domain.Graph, error)
	FindByID(ctx context.Context, userID, graphID string) (*domain.Graph, error)
	// FindByName runs an exact equality query over the user's graphs.
	FindByName(ctx context.Context, userID, name string) ([]*domain.Graph, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Graph, error)
	FindDefault(ctx context.Context, userID string) (*domain.Graph, error)
	Update(ctx context.Context, userID string, graph *domain.Graph) error
}

// BatchWriter commits multi-document deletes as one all-or-nothing unit.
// The store either applies every delete or none; partial application is
// impossible. Key layout stays inside the persistence implementation.
type BatchWriter interface {
	// DeleteNodeWithEdges removes a node and every listed edge atomically.
	DeleteNodeWithEdges(ctx context.Context, scope domain.Scope, nodeID string, edgeIDs []string) error
	// DeleteGraph removes a graph record and every node and edge it owns atomically.
	DeleteGraph(ctx context.Context, userID, graphID string, nodeIDs, edgeIDs []string) error
}
