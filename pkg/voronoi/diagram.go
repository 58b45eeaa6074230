package voronoi

// Diagram is the Voronoi dual of a triangulation.
type Diagram struct {
	Points        []Vertex
	Triangulation Triangulation
	Mode          CenterMode

	Cells    Cells
	Vertices Vertices
}

// Edge is a Voronoi edge between the centers of two neighboring triangles.
type Edge struct {
	Va, Vb Vertex
	// Triangles are the two triangles whose centers are joined.
	Triangles [2]int
}

// Stats summarizes a diagram.
type Stats struct {
	Cells      int
	Boundary   int
	Truncated  int
	Degenerate int
}

func (d *Diagram) Stats() Stats {
	var s Stats
	for p, ok := range d.Cells.Computed {
		if !ok {
			continue
		}
		s.Cells++
		if d.Cells.IsBoundary[p] {
			s.Boundary++
		}
		if d.Cells.Truncated[p] {
			s.Truncated++
		}
	}
	for _, bad := range d.Vertices.Degenerate {
		if bad {
			s.Degenerate++
		}
	}
	return s
}

// Centers returns the dual vertex of every triangle.
func (d *Diagram) Centers() []Vertex {
	return d.Vertices.Center
}

// CellPolygon returns the corners of point p's cell in walk order.
// Degenerate centers are left out.
func (d *Diagram) CellPolygon(p int) []Vertex {
	if p < 0 || p >= d.Cells.Len() {
		return nil
	}
	tris := d.Cells.AdjacentTriangles[p]
	out := make([]Vertex, 0, len(tris))
	for _, t := range tris {
		if d.Vertices.Degenerate[t] {
			continue
		}
		out = append(out, d.Vertices.Center[t])
	}
	return out
}

// Edges returns every Voronoi edge once. Hull edges and edges touching a
// degenerate triangle are skipped.
func (d *Diagram) Edges() []Edge {
	v := d.Vertices
	out := make([]Edge, 0, len(v.Center)*3/2)
	for t := range v.Center {
		if v.Degenerate[t] {
			continue
		}
		for _, n := range v.NeighborTriangles[t] {
			if n == NoTriangle || n <= t || v.Degenerate[n] {
				continue
			}
			out = append(out, Edge{Va: v.Center[t], Vb: v.Center[n], Triangles: [2]int{t, n}})
		}
	}
	return out
}

// Flat3D returns the points as x, y, 0 triples, the layout expected by
// vertex buffers.
func (d *Diagram) Flat3D() []float32 {
	out := make([]float32, len(d.Points)*3)
	for i, p := range d.Points {
		out[3*i] = float32(p.X)
		out[3*i+1] = float32(p.Y)
	}
	return out
}

// Bounds returns the bounding box of the points.
func (d *Diagram) Bounds() BoundingBox {
	if len(d.Points) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{Xl: d.Points[0].X, Xr: d.Points[0].X, Yt: d.Points[0].Y, Yb: d.Points[0].Y}
	for _, p := range d.Points[1:] {
		bb.Xl = min(bb.Xl, p.X)
		bb.Xr = max(bb.Xr, p.X)
		bb.Yt = min(bb.Yt, p.Y)
		bb.Yb = max(bb.Yb, p.Y)
	}
	return bb
}

// BoundingBox is an axis-aligned rectangle; Yt is the smaller y.
type BoundingBox struct {
	Xl, Xr, Yt, Yb float64
}

func NewBoundingBox(xl, xr, yt, yb float64) BoundingBox {
	return BoundingBox{xl, xr, yt, yb}
}

// Contains reports whether v lies inside the box, edges included.
func (b BoundingBox) Contains(v Vertex) bool {
	return v.X >= b.Xl && v.X <= b.Xr && v.Y >= b.Yt && v.Y <= b.Yb
}

// Pad grows the box by m on every side.
func (b BoundingBox) Pad(m float64) BoundingBox {
	return BoundingBox{b.Xl - m, b.Xr + m, b.Yt - m, b.Yb + m}
}
