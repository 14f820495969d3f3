package services_test

import (
	"context"
	"testing"

	"synapse-backend/application/services"
	"synapse-backend/domain"
	"synapse-backend/infrastructure/persistence/memory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEnv wires every service against a shared in-memory store.
type testEnv struct {
	store    *memory.Store
	resolver *services.ScopeResolver
	cascade  *services.CascadeCoordinator
	nodes    *services.NodeService
	edges    *services.EdgeService
	graphs   *services.GraphService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	logger := zap.NewNop()

	nodeRepo := store.NodeRepository()
	edgeRepo := store.EdgeRepository()
	graphRepo := store.GraphRepository()
	batch := store.BatchWriter()

	cascade := services.NewCascadeCoordinator(nodeRepo, edgeRepo, graphRepo, batch, logger)

	return &testEnv{
		store:    store,
		resolver: services.NewScopeResolver(graphRepo, logger),
		cascade:  cascade,
		nodes:    services.NewNodeService(nodeRepo, edgeRepo, cascade, logger),
		edges:    services.NewEdgeService(edgeRepo, nodeRepo, logger),
		graphs:   services.NewGraphService(graphRepo, cascade, logger),
	}
}

// scope resolves the default graph for a user, creating it on first use.
func (e *testEnv) scope(t *testing.T, userID string) domain.Scope {
	t.Helper()

	scope, err := e.resolver.Resolve(context.Background(), userID, "")
	require.NoError(t, err)
	return scope
}

// mustCreateNode is a shortcut for seeding test data.
func (e *testEnv) mustCreateNode(t *testing.T, scope domain.Scope, title, content string) *domain.Node {
	t.Helper()

	node, err := e.nodes.Create(context.Background(), scope, title, content)
	require.NoError(t, err)
	return node
}

func (e *testEnv) mustCreateEdge(t *testing.T, scope domain.Scope, sourceID, targetID, label string) *domain.Edge {
	t.Helper()

	edge, err := e.edges.Create(context.Background(), scope, sourceID, targetID, label)
	require.NoError(t, err)
	return edge
}
