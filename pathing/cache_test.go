package pathing_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/urbansim/pedflow/graph"
	"github.com/urbansim/pedflow/pathing"
)

// TestCache_HitAvoidsRecompute verifies the second identical request is
// served from cache, via call-count instrumentation.
func TestCache_HitAvoidsRecompute(t *testing.T) {
	g := corridor("A", "B", "C")
	c := pathing.NewCache(g)

	first, err := c.ShortestPath("A", "C")
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.ShortestPath("A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached path %v differs from first %v", second, first)
	}
	if got := c.Computes(); got != 1 {
		t.Errorf("Computes = %d; want 1", got)
	}
	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats = (%d hits, %d misses); want (1, 1)", hits, misses)
	}
}

// TestCache_DirectionMatters treats (A,C) and (C,A) as distinct commutes.
func TestCache_DirectionMatters(t *testing.T) {
	g := corridor("A", "B", "C")
	c := pathing.NewCache(g)
	if _, err := c.ShortestPath("A", "C"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ShortestPath("C", "A"); err != nil {
		t.Fatal(err)
	}
	if got := c.Computes(); got != 2 {
		t.Errorf("Computes = %d; want 2 (reverse commute is a new key)", got)
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len = %d; want 2", got)
	}
}

// TestCache_NegativeResult caches no-path outcomes too.
func TestCache_NegativeResult(t *testing.T) {
	g := graph.NewGraph()
	g.AddEdge("A", "B", false)
	g.AddEdge("P", "Q", false)
	c := pathing.NewCache(g)

	for i := 0; i < 3; i++ {
		if _, err := c.ShortestPath("A", "Q"); !errors.Is(err, pathing.ErrNoPath) {
			t.Fatalf("attempt %d: want ErrNoPath, got %v", i, err)
		}
	}
	if got := c.Computes(); got != 1 {
		t.Errorf("Computes = %d; want 1 (no-path cached)", got)
	}
}

// TestCache_MissingVertexUncached passes endpoint errors through without
// polluting the cache.
func TestCache_MissingVertexUncached(t *testing.T) {
	g := corridor("A", "B")
	c := pathing.NewCache(g)
	if _, err := c.ShortestPath("A", "ghost"); !errors.Is(err, pathing.ErrTargetVertexNotFound) {
		t.Fatalf("want ErrTargetVertexNotFound, got %v", err)
	}
	if got := c.Len(); got != 0 {
		t.Errorf("Len = %d; want 0 (endpoint errors are not cached)", got)
	}
}
