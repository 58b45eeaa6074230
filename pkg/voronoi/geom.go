package voronoi

import (
	"fmt"
	"math"
)

type Vertex struct {
	X float64
	Y float64
}

// NoVertex is stored in place of a center that could not be computed.
var NoVertex = Vertex{math.Inf(1), math.Inf(1)}

// Valid reports whether both coordinates are finite.
func (v Vertex) Valid() bool {
	return !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.X) && !math.IsNaN(v.Y)
}

// CenterMode selects how a triangle's dual vertex is placed.
type CenterMode int

const (
	// CenterCircumcenter places the dual vertex at the circumcenter.
	CenterCircumcenter CenterMode = iota
	// CenterCentroid is a simplified mode: the average of the three corners.
	// Cells built this way are not true Voronoi cells.
	CenterCentroid
)

func (m CenterMode) String() string {
	switch m {
	case CenterCircumcenter:
		return "circumcenter"
	case CenterCentroid:
		return "centroid"
	}
	return "unknown"
}

// ParseCenterMode maps a config or form value onto a CenterMode.
func ParseCenterMode(s string) (CenterMode, error) {
	switch s {
	case "", "circumcenter":
		return CenterCircumcenter, nil
	case "centroid":
		return CenterCentroid, nil
	}
	return 0, fmt.Errorf("unknown center mode %q", s)
}

// Circumcenter returns the center of the circle through a, b and c.
// Collinear corners have no circumcenter and yield ErrDegenerateTriangle.
func Circumcenter(a, b, c Vertex) (Vertex, error) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ex := c.X - a.X
	ey := c.Y - a.Y

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	den := dx*ey - dy*ex
	if den == 0 {
		return NoVertex, ErrDegenerateTriangle
	}
	d := 0.5 / den

	v := Vertex{
		X: a.X + (ey*bl-dy*cl)*d,
		Y: a.Y + (dx*cl-ex*bl)*d,
	}
	if !v.Valid() {
		return NoVertex, ErrDegenerateTriangle
	}
	return v, nil
}

// Centroid returns the average of a, b and c.
func Centroid(a, b, c Vertex) Vertex {
	return Vertex{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
	}
}

func triangleCenter(mode CenterMode, a, b, c Vertex) (Vertex, error) {
	if mode == CenterCentroid {
		// a centroid always exists, but a flat triangle is still not a valid dual vertex
		if cross(a, b, c) == 0 {
			return NoVertex, ErrDegenerateTriangle
		}
		return Centroid(a, b, c), nil
	}
	return Circumcenter(a, b, c)
}

func cross(a, b, c Vertex) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
