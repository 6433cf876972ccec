// Package circuit answers the two connectivity questions asked of a point.Cloud.
//
// What
//
//   - Cluster / ClusterProduct (shortest-K clustering):
//     keep only the K globally shortest edges (edge.Shortest), union their
//     endpoints in a fresh dsu.Forest, and report component sizes. The product
//     of the three largest sizes is the summary value.
//
//   - FinalLink / FinalLinkProduct (greedy spanning walk):
//     apply every edge in ascending order (edge.All) to a fresh dsu.Forest until
//     it holds a single component. The edge that performed the last merge is
//     the answer; the product of its endpoints' X coordinates is the summary.
//
// The two paths never share a forest.
//
// Building blocks
//
//   - Sizes:   component sizes of a forest, largest first. They always sum to Len().
//   - Product: product of up to the first top sizes. Nothing is padded: a single
//     component of size n yields n, and an empty slice yields 1.
//   - Walk:    the Kruskal loop. Stops after n−1 merges or when edges run out,
//     and returns the spanning edges it accepted.
//
// Degenerate input
//
//	With fewer than two points there is no merge: FinalLink reports false and
//	FinalLinkProduct returns 0. Cluster still succeeds with zero or one component.
//
// Complexity (n = points, P = n(n−1)/2, K = capacity)
//
//   - Cluster:   O(P log K + K·α(n) + n log n).
//   - FinalLink: O(P log P) for the sort, O(P·α(n)) for the walk.
package circuit
