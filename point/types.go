package point

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	// ErrFieldCount indicates a record without exactly three comma-separated fields.
	ErrFieldCount = errors.New("point: record must have exactly three fields")

	// ErrCoordinate indicates a field that is not a 32-bit signed integer.
	ErrCoordinate = errors.New("point: coordinate is not a 32-bit integer")
)

// ParseError reports a malformed record together with its position in the input.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw record as read
	Err  error  // ErrFieldCount or ErrCoordinate, possibly wrapped
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("point: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Point is a position in 3-D integer space.
type Point struct {
	X, Y, Z int
}

// String renders p in the input record format "x,y,z".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Distance is a squared Euclidean distance. It is never square-rooted.
type Distance float64

// CompareDistance orders two distances: -1 if a < b, 0 if equal, +1 if a > b.
// Distances produced from finite integer coordinates are never NaN, so the
// result is a total order.
func CompareDistance(a, b Distance) int {
	return cmp.Compare(a, b)
}
