package voronoi

// Cells holds the Voronoi cell of every point, indexed by point.
type Cells struct {
	// AdjacentTriangles lists the triangles around the point in walk order.
	// Their centers, in this order, are the cell polygon.
	AdjacentTriangles [][]int
	// AdjacentPoints lists the Delaunay neighbors, without ghost points.
	AdjacentPoints [][]int
	// IsBoundary is set when the cell touches the hull.
	IsBoundary []bool
	// Truncated is set when the walk hit the valence bound.
	Truncated []bool
	// Computed is the memo flag; a point never reached keeps it false.
	Computed []bool
}

func newCells(n int) Cells {
	return Cells{
		AdjacentTriangles: make([][]int, n),
		AdjacentPoints:    make([][]int, n),
		IsBoundary:        make([]bool, n),
		Truncated:         make([]bool, n),
		Computed:          make([]bool, n),
	}
}

// Len returns the number of point slots.
func (c Cells) Len() int {
	return len(c.Computed)
}

// Vertices holds the Voronoi vertex of every triangle, indexed by triangle.
type Vertices struct {
	// Center is NoVertex for degenerate triangles.
	Center []Vertex
	// NeighborTriangles holds the triangle across each edge, NoTriangle on the hull.
	NeighborTriangles [][3]int
	// IncidentPoints holds the triangle's corners in triangulation order.
	IncidentPoints [][3]int
	Degenerate     []bool
	Computed       []bool
}

func newVertices(n int) Vertices {
	return Vertices{
		Center:            make([]Vertex, n),
		NeighborTriangles: make([][3]int, n),
		IncidentPoints:    make([][3]int, n),
		Degenerate:        make([]bool, n),
		Computed:          make([]bool, n),
	}
}

// Len returns the number of triangle slots.
func (v Vertices) Len() int {
	return len(v.Computed)
}
