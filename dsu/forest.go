package dsu

import "fmt"

// Forest partitions [0, n) into disjoint sets.
// The zero value is an empty forest; use New for a forest over n elements.
type Forest struct {
	parent []int
	rank   []int
	sets   int
}

// New returns a forest of n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *Forest {
	if n < 0 {
		panic(fmt.Sprintf("dsu: negative size %d", n))
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &Forest{parent: parent, rank: make([]int, n), sets: n}
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of disjoint sets.
func (f *Forest) Count() int { return f.sets }

// Find returns the root of the set containing i, compressing the path to it.
func (f *Forest) Find(i int) int {
	f.check(i)
	root := i
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[i] != root {
		i, f.parent[i] = f.parent[i], root
	}

	return root
}

// Union merges the sets containing i and j and reports whether a merge happened.
// It returns false when i and j already share a set.
func (f *Forest) Union(i, j int) bool {
	ri, rj := f.Find(i), f.Find(j)
	if ri == rj {
		return false
	}
	switch {
	case f.rank[ri] < f.rank[rj]:
		f.parent[ri] = rj
	case f.rank[ri] > f.rank[rj]:
		f.parent[rj] = ri
	default:
		f.parent[rj] = ri
		f.rank[ri]++
	}
	f.sets--

	return true
}

// Connected reports whether i and j are in the same set.
func (f *Forest) Connected(i, j int) bool {
	return f.Find(i) == f.Find(j)
}

// Sets groups every element by its root. Members are listed in ascending order.
func (f *Forest) Sets() map[int][]int {
	out := make(map[int][]int, f.sets)
	for i := range f.parent {
		r := f.Find(i)
		out[r] = append(out[r], i)
	}

	return out
}

// Roots returns the distinct roots in ascending order.
func (f *Forest) Roots() []int {
	roots := make([]int, 0, f.sets)
	for i := range f.parent {
		if f.parent[i] == i {
			roots = append(roots, i)
		}
	}

	return roots
}

func (f *Forest) check(i int) {
	if i < 0 || i >= len(f.parent) {
		panic(fmt.Sprintf("dsu: index %d out of range [0, %d)", i, len(f.parent)))
	}
}
