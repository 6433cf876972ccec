package edge

import (
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/junction/point"
)

// All returns every edge of the complete graph over c, sorted ascending by Compare.
// Fewer than two points yield an empty, non-nil slice.
func All(c point.Cloud) []Edge {
	n := c.Len()
	edges := make([]Edge, 0, Pairs(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{U: i, V: j, Dist: c.Dist(i, j)})
		}
	}
	slices.SortFunc(edges, Compare)

	return edges
}

// Shortest returns the k edges of c with the smallest distances, sorted ascending
// by Compare. If c has fewer than k pairs, all of them are returned.
//
// Steps:
//  1. Validate k; k == 0 yields an empty result.
//  2. Scan every pair (i, j), i < j, offering it to a bounded max-heap of capacity k.
//     With Workers > 1 each block of rows fills its own heap concurrently.
//  3. Fold partial heaps into one bounded heap (sequential scans skip this).
//  4. Sort the survivors ascending.
func Shortest(c point.Cloud, k int, opts ...Option) ([]Edge, error) {
	if k < 0 {
		return nil, ErrNegativeCapacity
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := c.Len()
	k = min(k, Pairs(n))
	if k == 0 {
		return []Edge{}, nil
	}

	var kept []Edge
	if o.Workers < 2 || n < 2*o.Workers {
		b := newBounded(k)
		scanRows(c, 0, n, b)
		kept = b.edges()
	} else {
		kept = scanParallel(c, k, o.Workers)
	}
	slices.SortFunc(kept, Compare)

	return kept, nil
}

// scanRows offers every pair (i, j) with lo <= i < hi and j > i.
func scanRows(c point.Cloud, lo, hi int, b *bounded) {
	n := c.Len()
	for i := lo; i < hi; i++ {
		for j := i + 1; j < n; j++ {
			b.offer(Edge{U: i, V: j, Dist: c.Dist(i, j)})
		}
	}
}

// scanParallel splits rows into workers blocks of roughly equal pair count
// and merges the per-block results into one bounded heap.
func scanParallel(c point.Cloud, k, workers int) []Edge {
	bounds := splitRows(c.Len(), workers)
	parts := make([]*bounded, len(bounds)-1)

	var g errgroup.Group
	for w := range parts {
		lo, hi := bounds[w], bounds[w+1]
		parts[w] = newBounded(k)
		b := parts[w]
		g.Go(func() error {
			scanRows(c, lo, hi, b)
			return nil
		})
	}
	// Workers never fail; Wait is only the join.
	_ = g.Wait()

	global := newBounded(k)
	for _, p := range parts {
		for _, e := range p.edges() {
			global.offer(e)
		}
	}

	return global.edges()
}

// splitRows returns block boundaries 0 = b[0] < b[1] < ... < b[len-1] = n such that
// each block of rows holds about Pairs(n)/workers pairs. Row i holds n−1−i pairs,
// so early blocks are narrower than late ones.
func splitRows(n, workers int) []int {
	total := Pairs(n)
	bounds := []int{0}
	acc, target := 0, (total+workers-1)/workers
	for i := 0; i < n-1; i++ {
		acc += n - 1 - i
		if acc >= target && len(bounds) < workers {
			bounds = append(bounds, i+1)
			acc = 0
		}
	}
	if bounds[len(bounds)-1] != n {
		bounds = append(bounds, n)
	}

	return bounds
}
