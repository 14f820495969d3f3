// Package memory provides an in-memory document store implementing the
// persistence ports. It mirrors the DynamoDB layout closely enough for
// service and handler tests to run against it: per-scope collections,
// equality lookups, and an all-or-nothing batch delete under one mutex.
package memory

import (
	"context"
	"sync"

	"synapse-backend/application/ports"
	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"

	"github.com/google/uuid"
)

// Store holds every collection behind a single mutex so that batch deletes
// are atomic with respect to concurrent readers.
type Store struct {
	mu     sync.RWMutex
	graphs map[string]map[string]*domain.Graph // userID -> graphID -> graph
	nodes  map[domain.Scope]map[string]*domain.Node
	edges  map[domain.Scope]map[string]*domain.Edge
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		graphs: make(map[string]map[string]*domain.Graph),
		nodes:  make(map[domain.Scope]map[string]*domain.Node),
		edges:  make(map[domain.Scope]map[string]*domain.Edge),
	}
}

// NodeRepository returns the node port backed by this store.
func (s *Store) NodeRepository() ports.NodeRepository { return &nodeRepository{store: s} }

// EdgeRepository returns the edge port backed by this store.
func (s *Store) EdgeRepository() ports.EdgeRepository { return &edgeRepository{store: s} }

// GraphRepository returns the graph port backed by this store.
func (s *Store) GraphRepository() ports.GraphRepository { return &graphRepository{store: s} }

// BatchWriter returns the batch port backed by this store.
func (s *Store) BatchWriter() ports.BatchWriter { return &batchWriter{store: s} }

type nodeRepository struct {
	store *Store
}

func (r *nodeRepository) Create(_ context.Context, scope domain.Scope, node *domain.Node) (*domain.Node, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	node.ID = uuid.New().String()
	if r.store.nodes[scope] == nil {
		r.store.nodes[scope] = make(map[string]*domain.Node)
	}
	r.store.nodes[scope][node.ID] = copyNode(node)

	return node, nil
}

func (r *nodeRepository) FindByID(_ context.Context, scope domain.Scope, nodeID string) (*domain.Node, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	node, ok := r.store.nodes[scope][nodeID]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("node")
	}
	return copyNode(node), nil
}

func (r *nodeRepository) FindByTitle(_ context.Context, scope domain.Scope, title string) ([]*domain.Node, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matches []*domain.Node
	for _, node := range r.store.nodes[scope] {
		if node.Title == title {
			matches = append(matches, copyNode(node))
		}
	}
	return matches, nil
}

func (r *nodeRepository) FindByScope(_ context.Context, scope domain.Scope) ([]*domain.Node, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	nodes := make([]*domain.Node, 0, len(r.store.nodes[scope]))
	for _, node := range r.store.nodes[scope] {
		nodes = append(nodes, copyNode(node))
	}
	return nodes, nil
}

func (r *nodeRepository) Update(_ context.Context, scope domain.Scope, node *domain.Node) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.nodes[scope][node.ID]; !ok {
		return pkgerrors.NewNotFoundError("node")
	}
	r.store.nodes[scope][node.ID] = copyNode(node)
	return nil
}

type edgeRepository struct {
	store *Store
}

func (r *edgeRepository) Create(_ context.Context, scope domain.Scope, edge *domain.Edge) (*domain.Edge, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	edge.ID = uuid.New().String()
	if r.store.edges[scope] == nil {
		r.store.edges[scope] = make(map[string]*domain.Edge)
	}
	r.store.edges[scope][edge.ID] = copyEdge(edge)

	return edge, nil
}

func (r *edgeRepository) FindByID(_ context.Context, scope domain.Scope, edgeID string) (*domain.Edge, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	edge, ok := r.store.edges[scope][edgeID]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("edge")
	}
	return copyEdge(edge), nil
}

func (r *edgeRepository) FindBySource(_ context.Context, scope domain.Scope, nodeID string) ([]*domain.Edge, error) {
	return r.filter(scope, func(e *domain.Edge) bool { return e.SourceID == nodeID })
}

func (r *edgeRepository) FindByTarget(_ context.Context, scope domain.Scope, nodeID string) ([]*domain.Edge, error) {
	return r.filter(scope, func(e *domain.Edge) bool { return e.TargetID == nodeID })
}

func (r *edgeRepository) FindByScope(_ context.Context, scope domain.Scope) ([]*domain.Edge, error) {
	return r.filter(scope, func(*domain.Edge) bool { return true })
}

func (r *edgeRepository) Update(_ context.Context, scope domain.Scope, edge *domain.Edge) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.edges[scope][edge.ID]; !ok {
		return pkgerrors.NewNotFoundError("edge")
	}
	r.store.edges[scope][edge.ID] = copyEdge(edge)
	return nil
}

func (r *edgeRepository) Delete(_ context.Context, scope domain.Scope, edgeID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.edges[scope][edgeID]; !ok {
		return pkgerrors.NewNotFoundError("edge")
	}
	delete(r.store.edges[scope], edgeID)
	return nil
}

func (r *edgeRepository) filter(scope domain.Scope, keep func(*domain.Edge) bool) ([]*domain.Edge, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var edges []*domain.Edge
	for _, edge := range r.store.edges[scope] {
		if keep(edge) {
			edges = append(edges, copyEdge(edge))
		}
	}
	return edges, nil
}

type graphRepository struct {
	store *Store
}

func (r *graphRepository) Create(_ context.Context, userID string, graph *domain.Graph) (*domain.Graph, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	graph.ID = uuid.New().String()
	if r.store.graphs[userID] == nil {
		r.store.graphs[userID] = make(map[string]*domain.Graph)
	}
	r.store.graphs[userID][graph.ID] = copyGraph(graph)

	return graph, nil
}

func (r *graphRepository) FindByID(_ context.Context, userID, graphID string) (*domain.Graph, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	graph, ok := r.store.graphs[userID][graphID]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("graph")
	}
	return copyGraph(graph), nil
}

func (r *graphRepository) FindByName(_ context.Context, userID, name string) ([]*domain.Graph, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matches []*domain.Graph
	for _, graph := range r.store.graphs[userID] {
		if graph.Name == name {
			matches = append(matches, copyGraph(graph))
		}
	}
	return matches, nil
}

func (r *graphRepository) FindByUser(_ context.Context, userID string) ([]*domain.Graph, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	graphs := make([]*domain.Graph, 0, len(r.store.graphs[userID]))
	for _, graph := range r.store.graphs[userID] {
		graphs = append(graphs, copyGraph(graph))
	}
	return graphs, nil
}

func (r *graphRepository) FindDefault(_ context.Context, userID string) (*domain.Graph, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, graph := range r.store.graphs[userID] {
		if graph.IsDefault {
			return copyGraph(graph), nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("default graph")
}

func (r *graphRepository) Update(_ context.Context, userID string, graph *domain.Graph) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.graphs[userID][graph.ID]; !ok {
		return pkgerrors.NewNotFoundError("graph")
	}
	r.store.graphs[userID][graph.ID] = copyGraph(graph)
	return nil
}

type batchWriter struct {
	store *Store
}

func (w *batchWriter) DeleteNodeWithEdges(_ context.Context, scope domain.Scope, nodeID string, edgeIDs []string) error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	delete(w.store.nodes[scope], nodeID)
	for _, edgeID := range edgeIDs {
		delete(w.store.edges[scope], edgeID)
	}
	return nil
}

func (w *batchWriter) DeleteGraph(_ context.Context, userID, graphID string, nodeIDs, edgeIDs []string) error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	scope := domain.NewScope(userID, graphID)
	delete(w.store.graphs[userID], graphID)
	for _, nodeID := range nodeIDs {
		delete(w.store.nodes[scope], nodeID)
	}
	for _, edgeID := range edgeIDs {
		delete(w.store.edges[scope], edgeID)
	}
	return nil
}

func copyNode(n *domain.Node) *domain.Node {
	c := *n
	return &c
}

func copyEdge(e *domain.Edge) *domain.Edge {
	c := *e
	return &c
}

func copyGraph(g *domain.Graph) *domain.Graph {
	c := *g
	return &c
}
