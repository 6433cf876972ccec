package dsu

// Test bridge: read-only access to the forest arrays for white-box checks.

// ParentOf returns the raw parent pointer of i without compressing.
func (f *Forest) ParentOf(i int) int { return f.parent[i] }

// RankOf returns the rank stored at i.
func (f *Forest) RankOf(i int) int { return f.rank[i] }
