package edge

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/junction/point"
)

// ErrNegativeCapacity indicates a negative capacity passed to Shortest.
var ErrNegativeCapacity = errors.New("edge: capacity must be non-negative")

// Edge connects two points of a cloud by index. U < V always holds for edges
// produced by this package.
type Edge struct {
	U, V int
	Dist point.Distance
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%g)", e.U, e.V, float64(e.Dist))
}

// Compare orders edges by Dist ascending, then by U, then by V.
// It returns -1, 0 or +1 like cmp.Compare.
func Compare(a, b Edge) int {
	if c := point.CompareDistance(a.Dist, b.Dist); c != 0 {
		return c
	}
	if c := cmp.Compare(a.U, b.U); c != 0 {
		return c
	}

	return cmp.Compare(a.V, b.V)
}

// Pairs returns the number of unordered pairs among n points, n(n−1)/2.
// It is 0 for n < 2.
func Pairs(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Options configures Shortest.
type Options struct {
	// Workers is the number of goroutines scanning index blocks.
	// Values < 2 run the scan on the calling goroutine.
	Workers int
}

// Option configures Options.
type Option func(*Options)

// WithWorkers returns an Option that sets the number of scanning goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns Options for a sequential scan (Workers = 1).
func DefaultOptions() Options {
	return Options{Workers: 1}
}
