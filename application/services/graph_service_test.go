package services_test

import (
	"context"
	"testing"

	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphService_Create_Success(t *testing.T) {
	env := newTestEnv(t)

	graph, err := env.graphs.Create(context.Background(), "user123", "Research")

	require.NoError(t, err)
	assert.NotEmpty(t, graph.ID)
	assert.Equal(t, "Research", graph.Name)
	assert.False(t, graph.IsDefault)
}

func TestGraphService_Create_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.graphs.Create(ctx, "user123", "Research")
	require.NoError(t, err)

	_, err = env.graphs.Create(ctx, "user123", "Research")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsDuplicate(err))
}

func TestGraphService_Create_SameNameDifferentUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.graphs.Create(ctx, "alice", "Research")
	require.NoError(t, err)

	_, err = env.graphs.Create(ctx, "bob", "Research")

	assert.NoError(t, err)
}

func TestGraphService_List(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.graphs.Create(ctx, "user123", "One")
	require.NoError(t, err)
	_, err = env.graphs.Create(ctx, "user123", "Two")
	require.NoError(t, err)

	graphs, err := env.graphs.List(ctx, "user123")

	require.NoError(t, err)
	assert.Len(t, graphs, 2)
}

func TestGraphService_Rename(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	graph, err := env.graphs.Create(ctx, "user123", "Old Name")
	require.NoError(t, err)

	renamed, err := env.graphs.Rename(ctx, "user123", graph.ID, "New Name")

	require.NoError(t, err)
	assert.Equal(t, "New Name", renamed.Name)
	assert.Equal(t, graph.ID, renamed.ID)
}

func TestGraphService_Rename_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.graphs.Create(ctx, "user123", "Taken")
	require.NoError(t, err)
	graph, err := env.graphs.Create(ctx, "user123", "Free")
	require.NoError(t, err)

	_, err = env.graphs.Rename(ctx, "user123", graph.ID, "Taken")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsDuplicate(err))
}

func TestGraphService_Rename_KeepOwnName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	graph, err := env.graphs.Create(ctx, "user123", "Stable")
	require.NoError(t, err)

	renamed, err := env.graphs.Rename(ctx, "user123", graph.ID, "Stable")

	require.NoError(t, err)
	assert.Equal(t, "Stable", renamed.Name)
}

func TestScopeResolver_DefaultGraphCreatedOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.scope(t, "user123")
	second := env.scope(t, "user123")

	assert.Equal(t, first.GraphID, second.GraphID)

	graphs, err := env.graphs.List(ctx, "user123")
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.True(t, graphs[0].IsDefault)
	assert.Equal(t, domain.DefaultGraphName, graphs[0].Name)
}

func TestScopeResolver_AdoptsGraphCarryingDefaultName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	named, err := env.graphs.Create(ctx, "user123", domain.DefaultGraphName)
	require.NoError(t, err)

	// Resolving the default scope must reuse the user's graph, never
	// produce a second live graph with the same name.
	scope := env.scope(t, "user123")
	assert.Equal(t, named.ID, scope.GraphID)

	graphs, err := env.graphs.List(ctx, "user123")
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.True(t, graphs[0].IsDefault)
	assert.Equal(t, domain.DefaultGraphName, graphs[0].Name)
}

func TestScopeResolver_AdoptionSurvivesDefaultDeletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.scope(t, "user123")
	require.NoError(t, env.graphs.Delete(ctx, "user123", first.GraphID))

	// Recreate the name by hand, then resolve the default scope again.
	named, err := env.graphs.Create(ctx, "user123", domain.DefaultGraphName)
	require.NoError(t, err)

	scope := env.scope(t, "user123")
	assert.Equal(t, named.ID, scope.GraphID)

	graphs, err := env.graphs.List(ctx, "user123")
	require.NoError(t, err)
	assert.Len(t, graphs, 1)
}

func TestScopeResolver_ExplicitGraph(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	graph, err := env.graphs.Create(ctx, "user123", "Explicit")
	require.NoError(t, err)

	scope, err := env.resolver.Resolve(ctx, "user123", graph.ID)

	require.NoError(t, err)
	assert.Equal(t, graph.ID, scope.GraphID)
	assert.Equal(t, "user123", scope.UserID)
}

func TestScopeResolver_UnknownGraph(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.resolver.Resolve(context.Background(), "user123", "missing")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestScopeResolver_OtherUsersGraphInvisible(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	graph, err := env.graphs.Create(ctx, "alice", "Private")
	require.NoError(t, err)

	_, err = env.resolver.Resolve(ctx, "bob", graph.ID)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}
