package circuit

import (
	"slices"

	"github.com/katalvlaran/junction/dsu"
)

// Top is the number of largest components multiplied by ClusterProduct.
const Top = 3

// Sizes returns the size of every set in f, largest first.
func Sizes(f *dsu.Forest) []int {
	counts := make(map[int]int, f.Count())
	for i := 0; i < f.Len(); i++ {
		counts[f.Find(i)]++
	}

	sizes := make([]int, 0, len(counts))
	for _, c := range counts {
		sizes = append(sizes, c)
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })

	return sizes
}

// Product multiplies the first min(top, len(sizes)) entries of sizes.
// The empty product is 1.
func Product(sizes []int, top int) int {
	p := 1
	for i := 0; i < len(sizes) && i < top; i++ {
		p *= sizes[i]
	}

	return p
}
