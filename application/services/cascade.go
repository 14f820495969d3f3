package services

import (
	"context"

	"synapse-backend/application/ports"
	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"

	"go.uber.org/zap"
)

// CascadeCoordinator makes deletion of a node or a whole graph appear atomic.
// It runs a two-phase procedure: enumerate every dependent document, then
// commit all removals as one all-or-nothing batch. No edge can outlive the
// commit while referencing a removed node or graph.
type CascadeCoordinator struct {
	nodes  ports.NodeRepository
	edges  ports.EdgeRepository
	graphs ports.GraphRepository
	batch  ports.BatchWriter
	logger *zap.Logger
}

// NewCascadeCoordinator creates a new cascade coordinator
func NewCascadeCoordinator(
	nodes ports.NodeRepository,
	edges ports.EdgeRepository,
	graphs ports.GraphRepository,
	batch ports.BatchWriter,
	logger *zap.Logger,
) *CascadeCoordinator {
	return &CascadeCoordinator{
		nodes:  nodes,
		edges:  edges,
		graphs: graphs,
		batch:  batch,
		logger: logger,
	}
}

// DeleteNode removes a node together with every edge touching it in either
// direction. Fails with NotFound before any side effect when the node is absent.
func (c *CascadeCoordinator) DeleteNode(ctx context.Context, scope domain.Scope, nodeID string) error {
	if _, err := c.nodes.FindByID(ctx, scope, nodeID); err != nil {
		return err
	}

	outgoing, err := c.edges.FindBySource(ctx, scope, nodeID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to enumerate outgoing edges")
	}
	incoming, err := c.edges.FindByTarget(ctx, scope, nodeID)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to enumerate incoming edges")
	}

	// A self-loop shows up in both queries; delete it once.
	seen := make(map[string]struct{}, len(outgoing)+len(incoming))
	edgeIDs := make([]string, 0, len(outgoing)+len(incoming))
	for _, edge := range append(outgoing, incoming...) {
		if _, ok := seen[edge.ID]; ok {
			continue
		}
		seen[edge.ID] = struct{}{}
		edgeIDs = append(edgeIDs, edge.ID)
	}

	if err := c.batch.DeleteNodeWithEdges(ctx, scope, nodeID, edgeIDs); err != nil {
		return pkgerrors.Wrap(err, "failed to commit node deletion")
	}

	c.logger.Info("node deleted with cascade",
		zap.String("userID", scope.UserID),
		zap.String("graphID", scope.GraphID),
		zap.String("nodeID", nodeID),
		zap.Int("edgesRemoved", len(edgeIDs)),
	)

	return nil
}

// DeleteGraph removes a graph record and every node and edge it owns.
// Fails with NotFound before any side effect when the graph is absent.
func (c *CascadeCoordinator) DeleteGraph(ctx context.Context, userID, graphID string) error {
	if _, err := c.graphs.FindByID(ctx, userID, graphID); err != nil {
		return err
	}

	scope := domain.NewScope(userID, graphID)

	nodes, err := c.nodes.FindByScope(ctx, scope)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to enumerate graph nodes")
	}
	edges, err := c.edges.FindByScope(ctx, scope)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to enumerate graph edges")
	}

	nodeIDs := make([]string, 0, len(nodes))
	for _, node := range nodes {
		nodeIDs = append(nodeIDs, node.ID)
	}
	edgeIDs := make([]string, 0, len(edges))
	for _, edge := range edges {
		edgeIDs = append(edgeIDs, edge.ID)
	}

	if err := c.batch.DeleteGraph(ctx, userID, graphID, nodeIDs, edgeIDs); err != nil {
		return pkgerrors.Wrap(err, "failed to commit graph deletion")
	}

	c.logger.Info("graph deleted with cascade",
		zap.String("userID", userID),
		zap.String("graphID", graphID),
		zap.Int("nodesRemoved", len(nodeIDs)),
		zap.Int("edgesRemoved", len(edgeIDs)),
	)

	return nil
}
