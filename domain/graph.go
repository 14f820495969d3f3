package domain

import (
	"time"

	pkgerrors "synapse-backend/pkg/errors"
)

// DefaultGraphName is the name of the graph created lazily for users who
// use the un-nested API routes.
const DefaultGraphName = "Default Graph"

// Graph is a named container owning a disjoint set of nodes and edges.
// Deleting a graph destroys everything it owns.
type Graph struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewGraph builds an unsaved graph with creation timestamps set.
func NewGraph(name string) (*Graph, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("name cannot be empty")
	}

	now := time.Now().UTC()
	return &Graph{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Touch refreshes the update timestamp.
func (g *Graph) Touch() {
	g.UpdatedAt = time.Now().UTC()
}
