package domain

import (
	"time"

	pkgerrors "synapse-backend/pkg/errors"
)

// Node is a titled text entry owned by exactly one graph.
// The ID is assigned by the store at creation and never reused.
type Node struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NodeSummary is the list-view projection of a node.
type NodeSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NewNode builds an unsaved node with creation timestamps set.
func NewNode(title, content string) (*Node, error) {
	if title == "" {
		return nil, pkgerrors.NewValidationError("title cannot be empty")
	}
	if content == "" {
		return nil, pkgerrors.NewValidationError("content cannot be empty")
	}

	now := time.Now().UTC()
	return &Node{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Summary returns the list-view projection.
func (n *Node) Summary() NodeSummary {
	return NodeSummary{ID: n.ID, Title: n.Title}
}

// Touch refreshes the update timestamp.
func (n *Node) Touch() {
	n.UpdatedAt = time.Now().UTC()
}
