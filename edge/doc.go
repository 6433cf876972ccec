// Package edge enumerates the pairwise edges of a point.Cloud and selects the
// globally shortest ones.
//
// What
//
//   - Edge is an unordered pair of point indices (U < V) with its squared distance.
//   - Compare is the single ordering used everywhere: Dist ascending, then U, then V.
//     It is a total order, so every sort and every selection below is reproducible
//     regardless of generation order or worker count.
//   - All returns every one of the n(n−1)/2 edges sorted by Compare.
//   - Shortest returns the k smallest edges sorted by Compare, without
//     materializing the full edge set.
//
// Bounded selection
//
//	Shortest keeps a binary max-heap of at most k edges. Every candidate pair is
//	pushed; whenever the heap grows past k its maximum is popped. The heap top is
//	always the largest edge retained so far, so the final contents are exactly the
//	k smallest under Compare. Among edges whose distances tie at the cutoff, the
//	ones with the larger (U, V) are the ones evicted.
//
// Workers
//
//	WithWorkers(w) splits the outer index range into w contiguous blocks. Each
//	block fills its own bounded heap; the partial heaps are then folded into one
//	global heap by repeated bounded insert. Because Compare is total the result
//	is identical to the sequential run.
//
// Errors
//
//   - ErrNegativeCapacity : k < 0.
//
// Complexity (n = points, P = n(n−1)/2, k = capacity)
//
//   - All:      O(P log P) time, O(P) memory.
//   - Shortest: O(P log k) time, O(k) memory per worker.
package edge
