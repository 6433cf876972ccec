// Package junction links 3-D integer points by their shortest distances and
// reports how they group into circuits.
//
// 🚀 What is junction?
//
//	A small, deterministic toolkit built from four pieces:
//		• point   — load "x,y,z" records; squared-distance oracle over indices
//		• edge    — total edge order, full ascending edge list, bounded top-K selection
//		• dsu     — disjoint-set forest with iterative path compression and union by rank
//		• circuit — component sizes, Kruskal-style spanning walk, the two answers
//
// ✨ Two questions
//
//   - Shortest-K clustering: join only the K globally shortest links; multiply the
//     sizes of the three largest circuits (circuit.ClusterProduct).
//   - Final link: join links shortest-first until one circuit remains; multiply the
//     X coordinates of the link that closed it (circuit.FinalLinkProduct).
//
// Layout:
//
//	point/           — Point, Cloud, Parse, Distance
//	edge/            — Edge, Compare, All, Shortest, WithWorkers
//	dsu/             — Forest: Find, Union, Connected, Sets
//	circuit/         — Sizes, Product, Walk, Cluster, FinalLink
//	internal/config/ — defaults, dotenv, environment, flags
//	cmd/junction/    — command-line runner
//
// Quick ASCII example:
//
//	A(0)─B(1)········C(10)─D(11)
//
//	links by length: AB=1, CD=1, BC=81, …
//	K=3 → one circuit of 4 → 4
//	final link BC → 1 × 10 = 10
//
//	go run ./cmd/junction -i points.txt -p 2
package junction
