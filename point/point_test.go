package point_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/junction/point"
)

// failingReader returns err on the first Read.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestParse_Records(t *testing.T) {
	cloud, err := point.ParseString("162,817,812\n57,618,57\n -3 , 0,-9\n")
	require.NoError(t, err)
	assert.Equal(t, point.Cloud{
		{X: 162, Y: 817, Z: 812},
		{X: 57, Y: 618, Z: 57},
		{X: -3, Y: 0, Z: -9},
	}, cloud)
	assert.Equal(t, 3, cloud.Len())
}

func TestParse_SkipsBlankLines(t *testing.T) {
	cloud, err := point.ParseString("\n1,2,3\n\n   \n4,5,6\n\n")
	require.NoError(t, err)
	assert.Len(t, cloud, 2)
	assert.Equal(t, point.Point{X: 4, Y: 5, Z: 6}, cloud[1])
}

func TestParse_Empty(t *testing.T) {
	cloud, err := point.ParseString("")
	require.NoError(t, err)
	assert.Empty(t, cloud)
}

func TestParse_FieldCount(t *testing.T) {
	_, err := point.ParseString("1,2,3\n4,5\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, point.ErrFieldCount)

	var pe *point.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "4,5", pe.Text)
}

func TestParse_Coordinate(t *testing.T) {
	cases := map[string]string{
		"non-numeric":  "1,a,3",
		"float":        "1,2.5,3",
		"out of range": "1,2,4294967296",
		"empty field":  "1,,3",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := point.ParseString(in)
			assert.ErrorIs(t, err, point.ErrCoordinate)
			assert.NotErrorIs(t, err, point.ErrFieldCount)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestParse_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := point.Parse(failingReader{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestSquaredDistance(t *testing.T) {
	a := point.Point{X: 0, Y: 0, Z: 0}
	b := point.Point{X: 1, Y: 2, Z: 2}
	assert.Equal(t, point.Distance(9), point.SquaredDistance(a, b))
	assert.Equal(t, point.SquaredDistance(a, b), point.SquaredDistance(b, a))
	assert.Zero(t, point.SquaredDistance(b, b))
}

func TestSquaredDistance_Extremes(t *testing.T) {
	// 32-bit extremes: the difference is 2^32-1 on every axis; must stay finite and positive.
	lo := point.Point{X: -2147483648, Y: -2147483648, Z: -2147483648}
	hi := point.Point{X: 2147483647, Y: 2147483647, Z: 2147483647}
	d := point.SquaredDistance(lo, hi)
	assert.Greater(t, float64(d), 0.0)
	assert.Equal(t, d, point.SquaredDistance(hi, lo))
}

func TestCloud_DistSymmetric(t *testing.T) {
	cloud, err := point.ParseString("0,0,0\n1,0,0\n10,0,0\n11,0,0")
	require.NoError(t, err)
	want := [][]point.Distance{
		{0, 1, 100, 121},
		{1, 0, 81, 100},
		{100, 81, 0, 1},
		{121, 100, 1, 0},
	}
	for i := range cloud {
		for j := range cloud {
			assert.Equal(t, want[i][j], cloud.Dist(i, j), "Dist(%d,%d)", i, j)
		}
	}
}

func TestCompareDistance(t *testing.T) {
	assert.Equal(t, -1, point.CompareDistance(1, 2))
	assert.Equal(t, 1, point.CompareDistance(81, 1))
	assert.Equal(t, 0, point.CompareDistance(100, 100))
}

func TestPoint_String(t *testing.T) {
	p := point.Point{X: -1, Y: 20, Z: 300}
	assert.Equal(t, "-1,20,300", p.String())

	back, err := point.ParseString(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, back[0])
	assert.Equal(t, 2, strings.Count(p.String(), ","))
}
