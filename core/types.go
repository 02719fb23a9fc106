// SPDX-License-Identifier: MIT

// File: types.go
// Role: Attributes, Vertex, Edge, Graph, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - Separate sync.RWMutex locks (muVert for vertices, muEdgeAdj for edges and
//     adjacency), so read-only metric passes can run concurrently over one graph.

package core

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a weight below zero; contact durations cannot be negative.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Attributes is the fixed per-participant record attached to a Vertex.
// Every field is optional: the zero value means "unknown".
//
// Village deployments fill Household/Age/Sex; school deployments fill Class/Sex.
type Attributes struct {
	// Household is the household (or other unit) identifier of the participant.
	Household string

	// Age in years; nil when the source did not report it.
	Age *int

	// Sex as reported by the source ("M", "F", "male", ...); not normalized.
	Sex string

	// Class is the school class label.
	Class string
}

// IsZero reports whether no attribute is known.
func (a Attributes) IsZero() bool {
	return a.Household == "" && a.Age == nil && a.Sex == "" && a.Class == ""
}

// Vertex represents a participant in the graph.
type Vertex struct {
	// ID is the unique participant identifier.
	ID string

	// Attrs holds the participant's attributes (possibly zero).
	Attrs Attributes
}

// Edge represents an undirected aggregated contact between two participants.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoints as supplied to AddEdge.
	// The edge is undirected; the order carries no meaning.
	From string
	To   string

	// Weight is the cumulative contact duration in seconds (≥ 0).
	Weight decimal.Decimal
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// Graph is the core in-memory contact graph.
//
// muVert protects the vertices map; muEdgeAdj protects the edges map and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[a][b] = Edge.ID, mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty contact graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
