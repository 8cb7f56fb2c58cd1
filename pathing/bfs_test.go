package pathing_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/urbansim/pedflow/graph"
	"github.com/urbansim/pedflow/pathing"
)

// corridor builds a straight A-B-C-...-chain graph from the given IDs.
func corridor(ids ...string) *graph.Graph {
	g := graph.NewGraph()
	for i := 0; i+1 < len(ids); i++ {
		g.AddEdge(ids[i], ids[i+1], false)
	}
	return g
}

// TestBFS_Errors verifies invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := pathing.BFS(nil, "A"); !errors.Is(err, pathing.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := graph.NewGraph()
	if _, err := pathing.BFS(g, "missing"); !errors.Is(err, pathing.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddVertex("A")
	if _, err := pathing.BFS(g, "A", pathing.WithMaxDepth(-1)); !errors.Is(err, pathing.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_DepthLayers covers depth bookkeeping on a small cycle.
func TestBFS_DepthLayers(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge("A", "B", false)
	g.AddEdge("B", "C", false)
	g.AddEdge("C", "D", false)
	g.AddEdge("D", "A", false)

	res, err := pathing.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Order[0] != "A" {
		t.Errorf("first vertex = %s; want A", res.Order[0])
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	for id, want := range wantDepth {
		if got := res.Depth[id]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", id, got, want)
		}
	}
}

// TestBFS_MaxDepth limits exploration to the requested radius.
func TestBFS_MaxDepth(t *testing.T) {
	g := corridor("A", "B", "C", "D")
	res, err := pathing.BFS(g, "A", pathing.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Cancellation aborts on an already-cancelled context.
func TestBFS_Cancellation(t *testing.T) {
	g := corridor("A", "B", "C")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := pathing.BFS(g, "A", pathing.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled ctx: want context.Canceled, got %v", err)
	}
}

// TestShortestPath_Corridor verifies endpoints-inclusive reconstruction.
func TestShortestPath_Corridor(t *testing.T) {
	g := corridor("A", "B", "C", "D")
	path, err := pathing.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestShortestPath_TrivialAndErrors covers degenerate endpoints.
func TestShortestPath_TrivialAndErrors(t *testing.T) {
	g := corridor("A", "B")
	// Same origin and destination: single-vertex path.
	path, err := pathing.ShortestPath(g, "A", "A")
	if err != nil {
		t.Fatalf("self path error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(path, want) {
		t.Errorf("self path = %v; want %v", path, want)
	}

	if _, err = pathing.ShortestPath(g, "A", "missing"); !errors.Is(err, pathing.ErrTargetVertexNotFound) {
		t.Errorf("missing target: want ErrTargetVertexNotFound, got %v", err)
	}
	if _, err = pathing.ShortestPath(g, "missing", "A"); !errors.Is(err, pathing.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
}

// TestShortestPath_Disconnected returns ErrNoPath across components.
func TestShortestPath_Disconnected(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge("A", "B", false)
	g.AddEdge("P", "Q", false)
	if _, err := pathing.ShortestPath(g, "A", "Q"); !errors.Is(err, pathing.ErrNoPath) {
		t.Errorf("disconnected: want ErrNoPath, got %v", err)
	}
}

// TestShortestPath_PicksMinimum verifies the detour is never taken.
func TestShortestPath_PicksMinimum(t *testing.T) {
	// Two routes A→D: length 3 via B,C and length 2 via X.
	g := graph.NewGraph()
	g.AddEdge("A", "B", false)
	g.AddEdge("B", "C", false)
	g.AddEdge("C", "D", false)
	g.AddEdge("A", "X", false)
	g.AddEdge("X", "D", false)

	path, err := pathing.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 3 {
		t.Errorf("path length = %d (%v); want 3", len(path), path)
	}
}
