package contact

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/contactnet/core"
	"github.com/shopspring/decimal"
)

// Sentinel errors for aggregation.
var (
	// ErrSelfPair indicates an event or link joining a participant with itself.
	ErrSelfPair = errors.New("contact: self-pair")

	// ErrEmptyID indicates a participant with an empty identifier.
	ErrEmptyID = errors.New("contact: empty participant id")

	// ErrNegativeDuration indicates a duration or weight below zero.
	ErrNegativeDuration = errors.New("contact: negative duration")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("contact: invalid option supplied")
)

// AggregatedEdge is the collapsed contact history of one canonical pair.
type AggregatedEdge struct {
	Pair CanonicalPair

	// TotalDuration is the exact sum of every event duration for Pair.
	TotalDuration decimal.Decimal

	// Events is the number of events folded into this edge.
	Events int
}

// Node is one participant with its resolved attributes.
type Node struct {
	ID    string
	Attrs core.Attributes
}

// Aggregation is the output of Aggregate and Collapse.
// Edges are sorted by pair key; Nodes are sorted by ID.
type Aggregation struct {
	Edges []AggregatedEdge
	Nodes []Node
}

// Weights returns pair → total duration.
func (a *Aggregation) Weights() map[CanonicalPair]decimal.Decimal {
	out := make(map[CanonicalPair]decimal.Decimal, len(a.Edges))
	for _, e := range a.Edges {
		out[e.Pair] = e.TotalDuration
	}
	return out
}

// TotalEvents returns the number of events folded into all edges.
func (a *Aggregation) TotalEvents() int {
	n := 0
	for _, e := range a.Edges {
		n += e.Events
	}
	return n
}

// groupReduce folds items into one accumulator per key.
func groupReduce[T any, K comparable, V any](items []T, key func(T) K, reduce func(V, T) V) map[K]V {
	out := make(map[K]V)
	for _, it := range items {
		k := key(it)
		out[k] = reduce(out[k], it)
	}
	return out
}

// sortedEdges flattens the grouped edges and sorts them by pair key.
func sortedEdges(groups map[CanonicalPair]AggregatedEdge) []AggregatedEdge {
	edges := make([]AggregatedEdge, 0, len(groups))
	for p, e := range groups {
		e.Pair = p
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Pair.Less(edges[j].Pair) })

	return edges
}

func sortedNodes(attrs map[string]core.Attributes) []Node {
	nodes := make([]Node, 0, len(attrs))
	for id, a := range attrs {
		nodes = append(nodes, Node{ID: id, Attrs: a})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	return nodes
}

// Aggregate collapses events sharing a canonical pair into one edge whose
// weight is the exact sum of their durations, and resolves one attribute
// record per participant.
//
// The edge set does not depend on the order of events. Attribute records are
// visited as the A side of every event in input order, then the B side of
// every event in input order; the configured AttributePolicy picks the winner.
//
// Errors: ErrEmptyID, ErrSelfPair, ErrNegativeDuration (wrapped with the event
// index), or ErrOptionViolation.
func Aggregate(events []Event, opts ...Option) (*Aggregation, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for i, ev := range events {
		switch {
		case ev.A.ID == "" || ev.B.ID == "":
			return nil, fmt.Errorf("%w: event %d", ErrEmptyID, i)
		case ev.A.ID == ev.B.ID:
			return nil, fmt.Errorf("%w: event %d joins %q with itself", ErrSelfPair, i, ev.A.ID)
		case ev.Duration.IsNegative():
			return nil, fmt.Errorf("%w: event %d has duration %s", ErrNegativeDuration, i, ev.Duration)
		}
	}

	groups := groupReduce(events, Event.Pair, func(acc AggregatedEdge, ev Event) AggregatedEdge {
		acc.TotalDuration = acc.TotalDuration.Add(ev.Duration)
		acc.Events++
		return acc
	})

	records := make([]Participant, 0, 2*len(events))
	for _, ev := range events {
		records = append(records, ev.A)
	}
	for _, ev := range events {
		records = append(records, ev.B)
	}
	attrs := make(map[string]core.Attributes, len(records))
	for _, p := range records {
		if _, seen := attrs[p.ID]; seen && o.Policy == FirstSeen {
			continue
		}
		attrs[p.ID] = p.Attributes()
	}

	return &Aggregation{Edges: sortedEdges(groups), Nodes: sortedNodes(attrs)}, nil
}

// Link is a weighted pair taken from an already-aggregated source (GEXF).
type Link struct {
	Source, Target string
	Weight         decimal.Decimal
}

// Collapse turns pre-aggregated links plus a node table into an Aggregation.
// Repeated links between the same pair (in either orientation) are summed,
// so the result never carries parallel edges. Every node in nodes is kept,
// linked or not; link endpoints missing from nodes get empty attributes.
// A node listed twice keeps its first record.
//
// Errors: ErrEmptyID, ErrSelfPair, ErrNegativeDuration (wrapped with the link index).
func Collapse(links []Link, nodes []Node) (*Aggregation, error) {
	for i, l := range links {
		switch {
		case l.Source == "" || l.Target == "":
			return nil, fmt.Errorf("%w: link %d", ErrEmptyID, i)
		case l.Source == l.Target:
			return nil, fmt.Errorf("%w: link %d joins %q with itself", ErrSelfPair, i, l.Source)
		case l.Weight.IsNegative():
			return nil, fmt.Errorf("%w: link %d has weight %s", ErrNegativeDuration, i, l.Weight)
		}
	}

	groups := groupReduce(links,
		func(l Link) CanonicalPair { return Canonicalize(l.Source, l.Target) },
		func(acc AggregatedEdge, l Link) AggregatedEdge {
			acc.TotalDuration = acc.TotalDuration.Add(l.Weight)
			acc.Events++
			return acc
		})

	attrs := make(map[string]core.Attributes, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: node table", ErrEmptyID)
		}
		if _, dup := attrs[n.ID]; !dup {
			attrs[n.ID] = n.Attrs
		}
	}
	for _, l := range links {
		for _, id := range [2]string{l.Source, l.Target} {
			if _, ok := attrs[id]; !ok {
				attrs[id] = core.Attributes{}
			}
		}
	}

	return &Aggregation{Edges: sortedEdges(groups), Nodes: sortedNodes(attrs)}, nil
}
