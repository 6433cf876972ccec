package circuit

import (
	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/edge"
	"github.com/katalvlaran/junction/point"
)

// Spanning is the result of a greedy spanning walk.
type Spanning struct {
	// Edges are the merging edges in the order they were applied.
	Edges []edge.Edge

	// Weight is the sum of Edges' distances.
	Weight point.Distance
}

// Last returns the edge that performed the final merge.
// It reports false when no merge happened.
func (s Spanning) Last() (edge.Edge, bool) {
	if len(s.Edges) == 0 {
		return edge.Edge{}, false
	}

	return s.Edges[len(s.Edges)-1], true
}

// Complete reports whether the walk joined all n points into one component.
func (s Spanning) Complete(n int) bool {
	return n <= 1 || len(s.Edges) == n-1
}

// Walk applies edges in the given order to a fresh forest over n points.
// Edges must already be sorted ascending; Walk does not sort.
//
// Steps:
//  1. n < 2: nothing can merge; return an empty Spanning.
//  2. For each edge, Union its endpoints. A successful merge appends the edge
//     and adds its distance to Weight.
//  3. Stop after n−1 merges (single component) or when edges are exhausted.
func Walk(n int, edges []edge.Edge) Spanning {
	if n < 2 {
		return Spanning{}
	}

	f := dsu.New(n)
	s := Spanning{Edges: make([]edge.Edge, 0, n-1)}
	for _, e := range edges {
		if !f.Union(e.U, e.V) {
			continue
		}
		s.Edges = append(s.Edges, e)
		s.Weight += e.Dist
		if len(s.Edges) == n-1 {
			break
		}
	}

	return s
}
