// Package delaunay supplies triangulations in the half-edge form consumed by
// the voronoi package.
package delaunay

import (
	"errors"
	"fmt"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	fd "github.com/fogleman/delaunay"
)

// ErrTooFewPoints is returned when no triangle can be formed.
var ErrTooFewPoints = errors.New("delaunay: need at least three points")

// Triangulate computes the Delaunay triangulation of points.
// Duplicate points are left out of every triangle; fully collinear input
// is an error.
func Triangulate(points []voronoi.Vertex) (voronoi.Triangulation, error) {
	if len(points) < 3 {
		return voronoi.Triangulation{}, ErrTooFewPoints
	}

	in := make([]fd.Point, len(points))
	for i, p := range points {
		in[i] = fd.Point{X: p.X, Y: p.Y}
	}

	tri, err := fd.Triangulate(in)
	if err != nil {
		return voronoi.Triangulation{}, fmt.Errorf("delaunay: %w", err)
	}
	if len(tri.Triangles) == 0 {
		return voronoi.Triangulation{}, fmt.Errorf("delaunay: %d points produced no triangles", len(points))
	}

	return voronoi.Triangulation{
		Triangles: tri.Triangles,
		HalfEdges: tri.Halfedges,
	}, nil
}

// Lattice triangulates a row-major grid of cols×rows points, where point
// j*cols+i sits at column i, row j. Every quad is split along the same
// diagonal and triangles are counter-clockwise for y pointing up.
func Lattice(cols, rows int) voronoi.Triangulation {
	if cols < 2 || rows < 2 {
		return voronoi.Triangulation{}
	}

	idx := func(i, j int) int { return j*cols + i }
	triangles := make([]int, 0, (cols-1)*(rows-1)*6)
	for j := 0; j < rows-1; j++ {
		for i := 0; i < cols-1; i++ {
			a, b := idx(i, j), idx(i+1, j)
			c, d := idx(i+1, j+1), idx(i, j+1)
			triangles = append(triangles, a, b, c, a, c, d)
		}
	}

	return voronoi.Triangulation{
		Triangles: triangles,
		HalfEdges: Link(triangles),
	}
}

// Link pairs every half-edge with its reverse. Edges without a reverse are
// hull edges and get voronoi.NoHalfEdge.
func Link(triangles []int) []int {
	type key struct{ from, to int }

	halfEdges := make([]int, len(triangles))
	seen := make(map[key]int, len(triangles))
	for e := range triangles {
		halfEdges[e] = voronoi.NoHalfEdge
		from, to := triangles[e], triangles[voronoi.NextHalfEdge(e)]
		if o, ok := seen[key{to, from}]; ok {
			halfEdges[e] = o
			halfEdges[o] = e
			delete(seen, key{to, from})
			continue
		}
		seen[key{from, to}] = e
	}
	return halfEdges
}
