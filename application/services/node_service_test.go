package services_test

import (
	"context"
	"testing"

	pkgerrors "synapse-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeService_Create_Success(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")

	node, err := env.nodes.Create(context.Background(), scope, "Quantum Computing", "Notes on qubits")

	require.NoError(t, err)
	assert.NotEmpty(t, node.ID)
	assert.Equal(t, "Quantum Computing", node.Title)
	assert.Equal(t, "Notes on qubits", node.Content)
	assert.False(t, node.CreatedAt.IsZero())
}

func TestNodeService_Create_DuplicateTitle(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	env.mustCreateNode(t, scope, "Quantum Computing", "first")

	_, err := env.nodes.Create(context.Background(), scope, "Quantum Computing", "second")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsDuplicate(err))
}

func TestNodeService_Create_SameTitleDifferentUsers(t *testing.T) {
	env := newTestEnv(t)
	scopeA := env.scope(t, "alice")
	scopeB := env.scope(t, "bob")
	env.mustCreateNode(t, scopeA, "Shared Title", "alice's")

	node, err := env.nodes.Create(context.Background(), scopeB, "Shared Title", "bob's")

	require.NoError(t, err)
	assert.NotEmpty(t, node.ID)
}

func TestNodeService_Create_TitleFreedAfterDelete(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	ctx := context.Background()

	node := env.mustCreateNode(t, scope, "Reusable", "v1")
	require.NoError(t, env.nodes.Delete(ctx, scope, node.ID))

	recreated, err := env.nodes.Create(ctx, scope, "Reusable", "v2")

	require.NoError(t, err)
	assert.NotEqual(t, node.ID, recreated.ID)
}

func TestNodeService_Create_EmptyTitle(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")

	_, err := env.nodes.Create(context.Background(), scope, "", "content")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNodeService_List_SearchFilter(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	env.mustCreateNode(t, scope, "Graph Theory", "a")
	env.mustCreateNode(t, scope, "Set Theory", "b")
	env.mustCreateNode(t, scope, "Topology", "c")

	all, err := env.nodes.List(context.Background(), scope, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := env.nodes.List(context.Background(), scope, "theory")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
	for _, summary := range filtered {
		assert.Contains(t, []string{"Graph Theory", "Set Theory"}, summary.Title)
	}
}

func TestNodeService_GetDetail(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	ctx := context.Background()

	center := env.mustCreateNode(t, scope, "Center", "hub")
	upstream := env.mustCreateNode(t, scope, "Upstream", "a")
	downstream := env.mustCreateNode(t, scope, "Downstream", "b")
	env.mustCreateEdge(t, scope, upstream.ID, center.ID, "feeds")
	env.mustCreateEdge(t, scope, center.ID, downstream.ID, "drives")

	detail, err := env.nodes.GetDetail(ctx, scope, center.ID)

	require.NoError(t, err)
	assert.Equal(t, center.ID, detail.Node.ID)
	require.Len(t, detail.IncomingEdges, 1)
	require.Len(t, detail.OutgoingEdges, 1)
	assert.Equal(t, upstream.ID, detail.IncomingEdges[0].SourceID)
	assert.Equal(t, downstream.ID, detail.OutgoingEdges[0].TargetID)
}

func TestNodeService_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")

	_, err := env.nodes.Get(context.Background(), scope, "missing")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestNodeService_Update_PartialFields(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	ctx := context.Background()
	node := env.mustCreateNode(t, scope, "Original", "original content")

	newTitle := "Renamed"
	updated, err := env.nodes.Update(ctx, scope, node.ID, &newTitle, nil)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "original content", updated.Content)

	newContent := "revised content"
	updated, err = env.nodes.Update(ctx, scope, node.ID, nil, &newContent)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "revised content", updated.Content)
}

func TestNodeService_Update_NothingToUpdate(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	node := env.mustCreateNode(t, scope, "Static", "content")

	_, err := env.nodes.Update(context.Background(), scope, node.ID, nil, nil)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNodeService_Update_DuplicateTitle(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	env.mustCreateNode(t, scope, "Taken", "a")
	node := env.mustCreateNode(t, scope, "Free", "b")

	taken := "Taken"
	_, err := env.nodes.Update(context.Background(), scope, node.ID, &taken, nil)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsDuplicate(err))
}

func TestNodeService_Update_KeepOwnTitle(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")
	node := env.mustCreateNode(t, scope, "Keep Me", "old")

	sameTitle := "Keep Me"
	newContent := "new"
	updated, err := env.nodes.Update(context.Background(), scope, node.ID, &sameTitle, &newContent)

	require.NoError(t, err)
	assert.Equal(t, "Keep Me", updated.Title)
	assert.Equal(t, "new", updated.Content)
}

func TestNodeService_Update_NotFound(t *testing.T) {
	env := newTestEnv(t)
	scope := env.scope(t, "user123")

	title := "anything"
	_, err := env.nodes.Update(context.Background(), scope, "missing", &title, nil)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}
