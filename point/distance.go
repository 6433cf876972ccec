package point

// Cloud is an ordered, read-only sequence of points. Index i is the identity of Cloud[i].
type Cloud []Point

// Len returns the number of points.
func (c Cloud) Len() int { return len(c) }

// Dist returns the squared distance between the points at indices i and j.
// Dist(i, j) == Dist(j, i) and Dist(i, i) == 0.
// Indices outside [0, Len()) panic.
func (c Cloud) Dist(i, j int) Distance {
	return SquaredDistance(c[i], c[j])
}

// SquaredDistance returns dx² + dy² + dz².
// Differences are taken in integers; squares are summed in float64 so that
// 32-bit inputs cannot overflow.
func SquaredDistance(p, q Point) Distance {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	dz := float64(p.Z - q.Z)

	return Distance(dx*dx + dy*dy + dz*dz)
}
