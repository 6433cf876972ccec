// Package dsu provides a disjoint-set forest (union-find) over the integers [0, n).
//
// The forest is two flat arrays, parent and rank, indexed by element. Find walks
// to the root and then re-points every node on the walked path directly at it;
// both passes are loops, so adversarial chains cannot grow the call stack.
// Union attaches the lower-rank root under the higher-rank root. On equal ranks
// the second argument's root goes under the first's, whose rank grows by one.
// Together these keep trees logarithmically shallow and make Find near-constant
// amortized (inverse Ackermann).
//
// Path compression changes parent pointers but never set membership.
//
// Indices outside [0, n) are programming errors and panic.
package dsu
