package domain

// Scope identifies the storage namespace a repository operation applies to:
// one user's data inside one graph. Every query and write is prefixed with
// the scope, which structurally prevents cross-tenant access.
type Scope struct {
	UserID  string
	GraphID string
}

// NewScope builds a scope for a user and graph.
func NewScope(userID, graphID string) Scope {
	return Scope{UserID: userID, GraphID: graphID}
}

// IsZero reports whether the scope is unresolved.
func (s Scope) IsZero() bool {
	return s.UserID == "" || s.GraphID == ""
}
