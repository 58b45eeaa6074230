package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircumcenterRightTriangle(t *testing.T) {
	c, err := Circumcenter(Vertex{0, 0}, Vertex{2, 0}, Vertex{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.InDelta(t, 1.0, c.Y, 1e-12)
}

func TestCircumcenterEquidistant(t *testing.T) {
	a, b, c := Vertex{0.3, -1.2}, Vertex{4.1, 0.7}, Vertex{-2.5, 3.3}
	o, err := Circumcenter(a, b, c)
	require.NoError(t, err)

	dist := func(v Vertex) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }
	assert.InDelta(t, dist(a), dist(b), 1e-9)
	assert.InDelta(t, dist(a), dist(c), 1e-9)

	// winding does not matter
	o2, err := Circumcenter(a, c, b)
	require.NoError(t, err)
	assert.InDelta(t, o.X, o2.X, 1e-9)
	assert.InDelta(t, o.Y, o2.Y, 1e-9)
}

func TestCircumcenterCollinear(t *testing.T) {
	c, err := Circumcenter(Vertex{0, 0}, Vertex{1, 0}, Vertex{2, 0})
	assert.ErrorIs(t, err, ErrDegenerateTriangle)
	assert.Equal(t, NoVertex, c)
	assert.False(t, c.Valid())
}

func TestCircumcenterCoincident(t *testing.T) {
	_, err := Circumcenter(Vertex{1, 1}, Vertex{1, 1}, Vertex{3, 4})
	assert.ErrorIs(t, err, ErrDegenerateTriangle)
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, Vertex{1, 1}, Centroid(Vertex{0, 0}, Vertex{3, 0}, Vertex{0, 3}))

	_, err := triangleCenter(CenterCentroid, Vertex{0, 0}, Vertex{1, 0}, Vertex{2, 0})
	assert.ErrorIs(t, err, ErrDegenerateTriangle)
}

func TestVertexValid(t *testing.T) {
	assert.True(t, Vertex{1, 2}.Valid())
	assert.False(t, Vertex{math.NaN(), 0}.Valid())
	assert.False(t, Vertex{0, math.Inf(-1)}.Valid())
}

func TestParseCenterMode(t *testing.T) {
	m, err := ParseCenterMode("")
	require.NoError(t, err)
	assert.Equal(t, CenterCircumcenter, m)

	m, err = ParseCenterMode("centroid")
	require.NoError(t, err)
	assert.Equal(t, CenterCentroid, m)
	assert.Equal(t, "centroid", m.String())

	_, err = ParseCenterMode("incenter")
	assert.Error(t, err)
}
