// Package core provides the thread-safe in-memory contact graph used by every
// contactnet stage after aggregation.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only: a contact between A and B is the same contact as B–A.
//   - No self-loops: AddEdge(v,v) → ErrLoopNotAllowed.
//   - No parallel edges: a second AddEdge between the same endpoints → ErrMultiEdgeNotAllowed.
//     Repeated contacts must be summed before they reach the graph.
//   - Exact weights: Edge.Weight is a decimal.Decimal holding the cumulative
//     contact duration in seconds, so strength sums never drift.
//   - Fixed attributes: each Vertex carries an Attributes record
//     (household, age, sex, class) instead of an open key/value bag.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj);
//     lock order is always muVert → muEdgeAdj.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                       // O(1)
//	SetAttributes(id string, a Attributes) error     // O(1)
//	HasVertex(id string) bool                        // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w decimal.Decimal) (edgeID string, err error) // O(1)
//	HasEdge(a, b string) bool                        // O(1)
//	Weight(a, b string) (decimal.Decimal, error)     // O(1)
//
//	// Query
//	Vertices() []string        // sorted
//	Edges() []*Edge            // sorted by Edge.ID
//	Neighbors(id) []*Edge      // sorted by Edge.ID
//	NeighborIDs(id) []string   // unique, sorted
//	Degree(id) int             // distinct neighbors
//	Strength(id) decimal       // sum of incident weights
//	Stats() *GraphStats        // counts snapshot
//
//	// Views
//	UnitWeightView(g) *Graph   // same topology, every weight = 1
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrNegativeWeight      – weight < 0
//	ErrLoopNotAllowed      – from == to
//	ErrMultiEdgeNotAllowed – an edge already joins the endpoints
package core
