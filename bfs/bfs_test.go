package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/contactnet/bfs"
	"github.com/katalvlaran/contactnet/core"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// link adds an edge with an arbitrary weight; BFS must not care about it.
func link(g *core.Graph, a, b string) {
	_, _ = g.AddEdge(a, b, decimal.NewFromInt(int64(len(a)*17+len(b))))
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	if _, err := bfs.Walk(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.Walk(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.Walk(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestWalk_SingleVertex covers the trivial one-vertex graph.
func TestWalk_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	res, err := bfs.Walk(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached() != 1 || res.TotalDistance() != 0 {
		t.Errorf("Reached=%d TotalDistance=%d; want 1, 0", res.Reached(), res.TotalDistance())
	}
}

// TestWalk_CycleDepthsIgnoreWeights checks hop depths on a weighted 4-cycle.
func TestWalk_CycleDepthsIgnoreWeights(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", decimal.NewFromInt(1000))
	_, _ = g.AddEdge("B", "C", one)
	_, _ = g.AddEdge("C", "D", one)
	_, _ = g.AddEdge("D", "A", one)

	res, err := bfs.Walk(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if got := res.TotalDistance(); got != 4 {
		t.Errorf("TotalDistance = %d; want 4", got)
	}
}

// TestWalk_Disconnected ensures Walk only explores the start's component.
func TestWalk_Disconnected(t *testing.T) {
	g := core.NewGraph()
	link(g, "X", "Y")
	link(g, "P", "Q")

	resX, _ := bfs.Walk(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	d, err := bfs.Distances(g, "P")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d, map[string]int{"P": 0, "Q": 1}) {
		t.Errorf("Distances(P) = %v", d)
	}
}

// TestWalk_MaxDepth verifies positive, zero (no limit), and large depths.
func TestWalk_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	link(g, "A", "B")
	link(g, "B", "C")
	if res, _ := bfs.Walk(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.Walk(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	if res, _ := bfs.Walk(g, "A", bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestWalk_FilterNeighbor shows how filtering prunes hops.
func TestWalk_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	link(g, "A", "B")
	link(g, "B", "C")
	res, _ := bfs.Walk(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestWalk_OnVisit asserts the hook order and that a hook error aborts.
func TestWalk_OnVisit(t *testing.T) {
	g := core.NewGraph()
	link(g, "A", "B")
	link(g, "B", "C")

	var vis []string
	_, err := bfs.Walk(g, "A", bfs.WithOnVisit(func(id string, d int) error {
		vis = append(vis, id+"@"+strconv.Itoa(d))
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A@0", "B@1", "C@2"}; !reflect.DeepEqual(vis, want) {
		t.Errorf("OnVisit = %v; want %v", vis, want)
	}

	stop := errors.New("stop")
	_, err = bfs.Walk(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want wrapped stop, got %v", err)
	}
}

// TestResult_PathTo covers trivial, multi-hop and unreachable targets.
func TestResult_PathTo(t *testing.T) {
	g := core.NewGraph()
	link(g, "X", "Y")
	link(g, "Y", "Z")
	_ = g.AddVertex("W")
	res, _ := bfs.Walk(g, "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	if path, _ := res.PathTo("Z"); !reflect.DeepEqual(path, []string{"X", "Y", "Z"}) {
		t.Errorf("PathTo Z: got %v", path)
	}
	_, err := res.PathTo("W")
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestWalk_Cancellation verifies that a cancelled context halts the walk.
func TestWalk_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		link(g, fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Walk(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestComponents partitions a graph with an isolated vertex.
func TestComponents(t *testing.T) {
	g := core.NewGraph()
	link(g, "b", "a")
	link(g, "b", "c")
	link(g, "x", "y")
	_ = g.AddVertex("m")

	comps, err := bfs.Components(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"a", "b", "c"}, {"m"}, {"x", "y"}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	if _, err := bfs.Components(context.Background(), nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	empty, err := bfs.Components(context.Background(), core.NewGraph())
	if err != nil || len(empty) != 0 {
		t.Errorf("empty graph: got %v, %v", empty, err)
	}
}

// TestWalk_ConcurrentSafety ensures concurrent walks on one graph do not interfere.
func TestWalk_ConcurrentSafety(t *testing.T) {
	g := core.NewGraph()
	link(g, "A", "B")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.Walk(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
