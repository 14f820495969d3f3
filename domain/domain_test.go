package domain_test

import (
	"testing"
	"time"

	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		wantErr bool
	}{
		{name: "valid", title: "Title", content: "content"},
		{name: "empty title", title: "", content: "content", wantErr: true},
		{name: "empty content", title: "Title", content: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := domain.NewNode(tt.title, tt.content)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, pkgerrors.IsValidation(err))
				return
			}

			require.NoError(t, err)
			assert.Empty(t, node.ID)
			assert.Equal(t, tt.title, node.Title)
			assert.False(t, node.CreatedAt.IsZero())
			assert.Equal(t, node.CreatedAt, node.UpdatedAt)
		})
	}
}

func TestNewEdge(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		target  string
		label   string
		wantErr bool
	}{
		{name: "valid", source: "a", target: "b", label: "links"},
		{name: "self loop", source: "a", target: "a", label: "loop"},
		{name: "empty label", source: "a", target: "b", label: "", wantErr: true},
		{name: "missing source", source: "", target: "b", label: "links", wantErr: true},
		{name: "missing target", source: "a", target: "", label: "links", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edge, err := domain.NewEdge(tt.source, tt.target, tt.label)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, pkgerrors.IsValidation(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.source, edge.SourceID)
			assert.Equal(t, tt.target, edge.TargetID)
			assert.Equal(t, tt.label, edge.Label)
		})
	}
}

func TestNewGraph(t *testing.T) {
	graph, err := domain.NewGraph("Research")
	require.NoError(t, err)
	assert.Equal(t, "Research", graph.Name)
	assert.False(t, graph.IsDefault)

	_, err = domain.NewGraph("")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestTouchAdvancesUpdatedAt(t *testing.T) {
	node, err := domain.NewNode("Title", "content")
	require.NoError(t, err)

	created := node.UpdatedAt
	time.Sleep(time.Millisecond)
	node.Touch()

	assert.True(t, node.UpdatedAt.After(created))
	assert.Equal(t, created, node.CreatedAt)
}

func TestNodeSummary(t *testing.T) {
	node := &domain.Node{ID: "n1", Title: "Title", Content: "hidden"}

	summary := node.Summary()

	assert.Equal(t, "n1", summary.ID)
	assert.Equal(t, "Title", summary.Title)
}

func TestScope(t *testing.T) {
	scope := domain.NewScope("user1", "graph1")
	assert.Equal(t, "user1", scope.UserID)
	assert.Equal(t, "graph1", scope.GraphID)
	assert.False(t, scope.IsZero())
	assert.True(t, domain.Scope{}.IsZero())
}
