// Package point loads 3-D integer points and answers squared-distance queries
// between them.
//
// What
//
//   - Point is an (X, Y, Z) triple of signed integers. A point's identity is its
//     position in the loaded Cloud; every other package refers to points by index.
//   - Parse reads one "x,y,z" record per line and returns the Cloud in input order.
//   - Cloud.Dist is the distance oracle: the squared Euclidean distance between
//     two indices, returned as a Distance (float64).
//
// Why squared
//
//	Squared distance is monotonic with true distance, so ordering edges by it
//	gives the same order without a square root. For 32-bit coordinates the
//	value is exact, so only true ties compare equal.
//
// Errors
//
//   - ErrFieldCount : a record does not have exactly three comma-separated fields.
//   - ErrCoordinate : a field is not a base-10 integer in the 32-bit signed range.
//
// Both are delivered wrapped in *ParseError, which carries the 1-based line number
// and the offending text. Use errors.Is for the kind and errors.As for the position.
//
// Complexity
//
//   - Parse: O(L) in the input length.
//   - Dist:  O(1).
package point
