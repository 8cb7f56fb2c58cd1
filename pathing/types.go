// Package pathing options, result types, and error definitions.
package pathing

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for path computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathing: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("pathing: start vertex not found")

	// ErrTargetVertexNotFound is returned when the target ID is absent.
	ErrTargetVertexNotFound = errors.New("pathing: target vertex not found")

	// ErrNoPath is returned when the endpoints are disconnected.
	ErrNoPath = errors.New("pathing: no path between vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathing: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters customizing BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns Options with sane defaults: background context and
// no depth limit.
func defaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a full BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the start→dest path from the BFS tree.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q unreached", ErrNoPath, dest)
	}
	// Build reversed, then flip to start→dest.
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
