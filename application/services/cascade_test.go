package services_test

import (
	"context"
	"testing"

	pkgerrors "synapse-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascade_DeleteNode_RemovesEdgesBothDirections(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	ctx := context.Background()

	center := env.mustCreateNode(t, scope, "Center", "hub")
	upstream := env.mustCreateNode(t, scope, "Upstream", "a")
	downstream := env.mustCreateNode(t, scope, "Downstream", "b")
	incoming := env.mustCreateEdge(t, scope, upstream.ID, center.ID, "feeds")
	outgoing := env.mustCreateEdge(t, scope, center.ID, downstream.ID, "drives")
	unrelated := env.mustCreateEdge(t, scope, upstream.ID, downstream.ID, "skips")

	require.NoError(t, env.nodes.Delete(ctx, scope, center.ID))

	_, err := env.nodes.Get(ctx, scope, center.ID)
	assert.True(t, pkgerrors.IsNotFound(err))

	// Edges touching the deleted node are gone; the unrelated edge survives.
	edges, err := env.edges.ListByNode(ctx, scope, upstream.ID)
	require.NoError(t, err)
	assert.Len(t, edges.Outgoing, 1)
	assert.Equal(t, unrelated.ID, edges.Outgoing[0].ID)
	assert.Empty(t, edges.Incoming)

	for _, gone := range []string{incoming.ID, outgoing.ID} {
		err := env.edges.Delete(ctx, scope, gone)
		assert.True(t, pkgerrors.IsNotFound(err))
	}

	// Endpoints of the removed edges survive.
	_, err = env.nodes.Get(ctx, scope, upstream.ID)
	assert.NoError(t, err)
	_, err = env.nodes.Get(ctx, scope, downstream.ID)
	assert.NoError(t, err)
}

func TestCascade_DeleteNode_SelfLoop(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	ctx := context.Background()

	node := env.mustCreateNode(t, scope, "Recursive", "a")
	loop := env.mustCreateEdge(t, scope, node.ID, node.ID, "loops")

	require.NoError(t, env.nodes.Delete(ctx, scope, node.ID))

	err := env.edges.Delete(ctx, scope, loop.ID)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestCascade_DeleteNode_NotFound(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	ctx := context.Background()

	survivor := env.mustCreateNode(t, scope, "Survivor", "a")

	err := env.nodes.Delete(ctx, scope, "missing")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))

	// A failed delete leaves existing data untouched.
	_, err = env.nodes.Get(ctx, scope, survivor.ID)
	assert.NoError(t, err)
}

func TestCascade_DeleteGraph_RemovesEverythingOwned(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	scope := env.scope(t, "user123")
	a := env.mustCreateNode(t, scope, "A", "a")
	b := env.mustCreateNode(t, scope, "B", "b")
	env.mustCreateEdge(t, scope, a.ID, b.ID, "links")

	// A second graph with its own contents must not be affected.
	other, err := env.graphs.Create(ctx, "user123", "Side Project")
	require.NoError(t, err)
	otherScope, err := env.resolver.Resolve(ctx, "user123", other.ID)
	require.NoError(t, err)
	kept := env.mustCreateNode(t, otherScope, "Kept", "k")

	require.NoError(t, env.graphs.Delete(ctx, "user123", scope.GraphID))

	_, err = env.graphs.Get(ctx, "user123", scope.GraphID)
	assert.True(t, pkgerrors.IsNotFound(err))
	nodes, err := env.nodes.List(ctx, scope, "")
	require.NoError(t, err)
	assert.Empty(t, nodes)

	_, err = env.nodes.Get(ctx, otherScope, kept.ID)
	assert.NoError(t, err)
}

func TestCascade_DeleteGraph_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.graphs.Delete(context.Background(), "user123", "missing")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestCascade_DefaultGraphRecreatedAfterDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	scope := env.scope(t, "user123")
	env.mustCreateNode(t, scope, "Old World", "x")

	require.NoError(t, env.graphs.Delete(ctx, "user123", scope.GraphID))

	// The next default-scope request gets a fresh, empty default graph.
	fresh := env.scope(t, "user123")
	assert.NotEqual(t, scope.GraphID, fresh.GraphID)
	nodes, err := env.nodes.List(ctx, fresh, "")
	require.NoError(t, err)
	assert.Empty(t, nodes)
}
