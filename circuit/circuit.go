package circuit

import (
	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/edge"
	"github.com/katalvlaran/junction/point"
)

// Cluster joins the endpoints of the k shortest edges of c and returns the
// resulting component sizes, largest first.
// Errors come from edge.Shortest (negative k).
func Cluster(c point.Cloud, k int, opts ...edge.Option) ([]int, error) {
	edges, err := edge.Shortest(c, k, opts...)
	if err != nil {
		return nil, err
	}

	f := dsu.New(c.Len())
	for _, e := range edges {
		f.Union(e.U, e.V)
	}

	return Sizes(f), nil
}

// ClusterProduct is the product of the Top largest component sizes from Cluster.
func ClusterProduct(c point.Cloud, k int, opts ...edge.Option) (int, error) {
	sizes, err := Cluster(c, k, opts...)
	if err != nil {
		return 0, err
	}

	return Product(sizes, Top), nil
}

// FinalLink runs the greedy spanning walk over every edge of c and returns the
// edge whose merge made c a single component. It reports false for fewer than
// two points.
func FinalLink(c point.Cloud) (edge.Edge, bool) {
	return Walk(c.Len(), edge.All(c)).Last()
}

// FinalLinkProduct returns the product of the X coordinates of FinalLink's
// endpoints, or 0 when there is no final link.
func FinalLinkProduct(c point.Cloud) int64 {
	e, ok := FinalLink(c)
	if !ok {
		return 0
	}

	return int64(c[e.U].X) * int64(c[e.V].X)
}
