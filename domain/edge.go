package domain

import (
	"time"

	pkgerrors "synapse-backend/pkg/errors"
)

// Edge is a labeled directed link between two nodes in the same scope.
// SourceID and TargetID are immutable after creation; only the label may
// change. Self-loops and parallel edges are permitted.
type Edge struct {
	ID        string    `json:"id"`
	SourceID  string    `json:"source"`
	TargetID  string    `json:"target"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewEdge builds an unsaved edge with creation timestamps set.
// Endpoint existence is the caller's responsibility; this only checks shape.
func NewEdge(sourceID, targetID, label string) (*Edge, error) {
	if sourceID == "" || targetID == "" {
		return nil, pkgerrors.NewValidationError("source and target are required")
	}
	if label == "" {
		return nil, pkgerrors.NewValidationError("label cannot be empty")
	}

	now := time.Now().UTC()
	return &Edge{
		SourceID:  sourceID,
		TargetID:  targetID,
		Label:     label,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Touch refreshes the update timestamp.
func (e *Edge) Touch() {
	e.UpdatedAt = time.Now().UTC()
}
