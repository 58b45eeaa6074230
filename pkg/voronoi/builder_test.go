package voronoi_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-voronoi/pkg/delaunay"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// lattice returns a cols×rows grid of unit-spaced points, row-major, with
// its deterministic triangulation.
func lattice(cols, rows int) ([]voronoi.Vertex, voronoi.Triangulation) {
	pts := make([]voronoi.Vertex, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			pts = append(pts, voronoi.Vertex{X: float64(i), Y: float64(j)})
		}
	}
	return pts, delaunay.Lattice(cols, rows)
}

func TestBuildGrid3x3(t *testing.T) {
	pts, tri := lattice(3, 3)
	d, err := voronoi.NewBuilder(nil).Build(pts, tri)
	require.NoError(t, err)

	s := d.Stats()
	assert.Equal(t, 9, s.Cells)
	assert.Equal(t, 8, s.Boundary)
	assert.Zero(t, s.Truncated)
	assert.Zero(t, s.Degenerate)

	for p := range pts {
		require.True(t, d.Cells.Computed[p], "point %d", p)
		assert.Equal(t, p != 4, d.Cells.IsBoundary[p], "point %d", p)
	}

	// the middle point closes a full loop of six triangles
	assert.Equal(t, []int{0, 1, 4, 7, 6, 3}, d.Cells.AdjacentTriangles[4])
	assert.Equal(t, []int{1, 0, 3, 7, 8, 5}, d.Cells.AdjacentPoints[4])

	// consecutive triangles of a closed cell share an edge
	ring := d.Cells.AdjacentTriangles[4]
	for i, t0 := range ring {
		t1 := ring[(i+1)%len(ring)]
		assert.Contains(t, d.Vertices.NeighborTriangles[t0], t1, "triangles %d and %d", t0, t1)
	}
}

func TestBuildGridCenters(t *testing.T) {
	pts, tri := lattice(3, 3)
	d, err := voronoi.NewBuilder(nil).Build(pts, tri)
	require.NoError(t, err)

	require.Equal(t, 8, d.Vertices.Len())
	// both halves of the first quad share the circumcenter of the unit square
	for _, tIdx := range []int{0, 1} {
		assert.InDelta(t, 0.5, d.Vertices.Center[tIdx].X, 1e-12)
		assert.InDelta(t, 0.5, d.Vertices.Center[tIdx].Y, 1e-12)
	}

	assert.Equal(t, [3]int{0, 1, 4}, d.Vertices.IncidentPoints[0])
	// edge 0->1 is on the hull, 1->4 borders triangle 3, 4->0 borders triangle 1
	assert.Equal(t, [3]int{voronoi.NoTriangle, 3, 1}, d.Vertices.NeighborTriangles[0])
}

func TestBuildIsDeterministic(t *testing.T) {
	pts, tri := lattice(6, 5)
	b := voronoi.NewBuilder(nil)

	d1, err := b.Build(pts, tri)
	require.NoError(t, err)
	d2, err := b.Build(pts, tri)
	require.NoError(t, err)

	if diff := cmp.Diff(d1.Cells, d2.Cells); diff != "" {
		t.Errorf("cells differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(d1.Vertices, d2.Vertices); diff != "" {
		t.Errorf("vertices differ (-first +second):\n%s", diff)
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	pts, tri := lattice(4, 4)
	ptsCopy := append([]voronoi.Vertex(nil), pts...)
	trisCopy := append([]int(nil), tri.Triangles...)
	halfCopy := append([]int(nil), tri.HalfEdges...)

	_, err := voronoi.NewBuilder(nil).Build(pts, tri)
	require.NoError(t, err)

	assert.Equal(t, ptsCopy, pts)
	assert.Equal(t, trisCopy, tri.Triangles)
	assert.Equal(t, halfCopy, tri.HalfEdges)
}

func TestBuildDegenerateTriangle(t *testing.T) {
	pts := []voronoi.Vertex{{0, 0}, {1, 0}, {2, 0}}
	tri := voronoi.Triangulation{
		Triangles: []int{0, 1, 2},
		HalfEdges: []int{-1, -1, -1},
	}

	var buf bytes.Buffer
	b := voronoi.NewBuilder(logger.NewConsole(&buf, zapcore.WarnLevel))
	d, err := b.Build(pts, tri)
	require.NoError(t, err)

	assert.True(t, d.Vertices.Degenerate[0])
	assert.Equal(t, voronoi.NoVertex, d.Vertices.Center[0])
	assert.False(t, d.Vertices.Center[0].Valid())
	assert.Equal(t, 1, d.Stats().Degenerate)
	assert.Empty(t, d.CellPolygon(0))
	assert.Empty(t, d.Edges())
	assert.Contains(t, buf.String(), "no center for triangle")
}

func TestBuildRejectsMalformed(t *testing.T) {
	pts, tri := lattice(3, 3)
	tri.HalfEdges[1] = 0

	d, err := voronoi.NewBuilder(nil).Build(pts, tri)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, voronoi.ErrMalformedTriangulation)
}

func TestBuildTruncatesHighValence(t *testing.T) {
	pts, tri := lattice(3, 3)
	b := &voronoi.Builder{MaxValence: 4}

	d, err := b.Build(pts, tri)
	require.NoError(t, err)

	assert.True(t, d.Cells.Truncated[4])
	assert.Len(t, d.Cells.AdjacentTriangles[4], 4)
	assert.Equal(t, []int{0, 1, 4, 7}, d.Cells.AdjacentTriangles[4])
	assert.Equal(t, 1, d.Stats().Truncated)
}

func TestBuildGhostPointsMarkBoundary(t *testing.T) {
	// point 3 is a ghost closing the hull of triangle 0-1-2
	pts := []voronoi.Vertex{{0, 0}, {1, 0}, {0, 1}}
	tris := []int{
		0, 1, 2,
		1, 0, 3,
		2, 1, 3,
		0, 2, 3,
	}
	tri := voronoi.Triangulation{
		Triangles: tris,
		HalfEdges: delaunay.Link(tris),
		Ghosts:    1,
	}

	d, err := voronoi.NewBuilder(nil).Build(pts, tri)
	require.NoError(t, err)

	for p := range pts {
		assert.True(t, d.Cells.IsBoundary[p], "point %d", p)
		assert.NotContains(t, d.Cells.AdjacentPoints[p], 3, "point %d", p)
		assert.Len(t, d.Cells.AdjacentTriangles[p], 3, "point %d", p)
	}
	assert.False(t, d.Vertices.Degenerate[0])
	assert.Equal(t, 3, d.Stats().Degenerate)
}

func TestBuildCentroidMode(t *testing.T) {
	pts := []voronoi.Vertex{{0, 0}, {3, 0}, {0, 3}}
	tri := voronoi.Triangulation{Triangles: []int{0, 1, 2}, HalfEdges: []int{-1, -1, -1}}

	d, err := (&voronoi.Builder{Mode: voronoi.CenterCentroid}).Build(pts, tri)
	require.NoError(t, err)
	assert.Equal(t, voronoi.CenterCentroid, d.Mode)
	assert.Equal(t, voronoi.Vertex{X: 1, Y: 1}, d.Centers()[0])
}

func TestBuildLogsToBuffer(t *testing.T) {
	pts, tri := lattice(3, 3)
	l := logger.New()

	_, err := voronoi.NewBuilder(l).Build(pts, tri)
	require.NoError(t, err)
	assert.Contains(t, l.HTML(), "[build] done")
}

func TestBuildNegativeSentinels(t *testing.T) {
	pts := []voronoi.Vertex{{0, 0}, {2, 0}, {0, 2}}
	tri := voronoi.Triangulation{
		Triangles: []int{0, 1, 2},
		HalfEdges: []int{-2, -2, -2},
	}

	for _, skip := range []bool{false, true} {
		d, err := (&voronoi.Builder{SkipValidation: skip}).Build(pts, tri)
		require.NoError(t, err, "skip validation %v", skip)

		assert.Equal(t, 3, d.Stats().Cells)
		assert.Equal(t, 3, d.Stats().Boundary)
		assert.Equal(t, [3]int{voronoi.NoTriangle, voronoi.NoTriangle, voronoi.NoTriangle}, d.Vertices.NeighborTriangles[0])
		assert.InDelta(t, 1.0, d.Vertices.Center[0].X, 1e-12)
		assert.InDelta(t, 1.0, d.Vertices.Center[0].Y, 1e-12)
	}
}
