package voronoi

import "fmt"

// Triangulation is a Delaunay triangulation in half-edge form.
//
// Triangles[e] is the point half-edge e starts at; every three consecutive
// entries form one triangle. HalfEdges[e] is the opposite half-edge in the
// neighboring triangle, or any negative value (NoHalfEdge by convention) on
// the hull.
type Triangulation struct {
	Triangles []int
	HalfEdges []int
	// Ghosts is the number of synthetic points past the real range that
	// Triangles may reference. Some triangulators close the hull with them.
	Ghosts int
}

// NumTriangles returns len(Triangles)/3.
func (t Triangulation) NumTriangles() int {
	return len(t.Triangles) / 3
}

// NumHalfEdges returns the number of half-edges.
func (t Triangulation) NumHalfEdges() int {
	return len(t.Triangles)
}

// Opposite returns the half-edge paired with e, if any.
func (t Triangulation) Opposite(e int) (int, bool) {
	o := t.HalfEdges[e]
	if o < 0 {
		return NoHalfEdge, false
	}
	return o, true
}

// PointsOfTriangle returns the three point indices of triangle tri.
func (t Triangulation) PointsOfTriangle(tri int) [3]int {
	var out [3]int
	for i, e := range EdgesOfTriangle(tri) {
		out[i] = t.Triangles[e]
	}
	return out
}

// Validate checks the structural invariants of the triangulation against a
// point set of numPoints entries. It does not check geometric properties.
func (t Triangulation) Validate(numPoints int) error {
	n := len(t.Triangles)
	if n%3 != 0 {
		return &ValidationError{Field: "triangles", Index: -1, Msg: fmt.Sprintf("length %d is not a multiple of 3", n)}
	}
	if len(t.HalfEdges) != n {
		return &ValidationError{Field: "halfedges", Index: -1, Msg: fmt.Sprintf("length %d, want %d", len(t.HalfEdges), n)}
	}

	for e, p := range t.Triangles {
		if p < 0 || p >= numPoints+t.Ghosts {
			return &ValidationError{Field: "triangles", Index: e, Msg: fmt.Sprintf("point %d out of range [0,%d)", p, numPoints+t.Ghosts)}
		}
	}

	for e, o := range t.HalfEdges {
		switch {
		case o < 0:
			continue
		case o >= n:
			return &ValidationError{Field: "halfedges", Index: e, Msg: fmt.Sprintf("opposite %d out of range", o)}
		case o == e:
			return &ValidationError{Field: "halfedges", Index: e, Msg: "edge is its own opposite"}
		case t.HalfEdges[o] != e:
			return &ValidationError{Field: "halfedges", Index: e, Msg: fmt.Sprintf("opposite %d points back to %d", o, t.HalfEdges[o])}
		}
		// paired edges run in opposite directions
		if t.Triangles[e] != t.Triangles[NextHalfEdge(o)] || t.Triangles[o] != t.Triangles[NextHalfEdge(e)] {
			return &ValidationError{Field: "halfedges", Index: e, Msg: fmt.Sprintf("opposite %d does not share endpoints", o)}
		}
	}
	return nil
}
