package voronoi

// NoHalfEdge marks a hull half-edge that has no opposite.
const NoHalfEdge = -1

// NoTriangle is stored as the neighbor across a hull edge.
const NoTriangle = -1

// DefaultMaxValence bounds the walk around a single point.
const DefaultMaxValence = 20

// NextHalfEdge returns the half-edge following e inside its triangle.
func NextHalfEdge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// PrevHalfEdge returns the half-edge preceding e inside its triangle.
func PrevHalfEdge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

// EdgesOfTriangle returns the three half-edges owned by triangle t.
func EdgesOfTriangle(t int) [3]int {
	return [3]int{3 * t, 3*t + 1, 3*t + 2}
}

// TriangleOfEdge returns the triangle that owns half-edge e.
func TriangleOfEdge(e int) int {
	return e / 3
}

// FanEnd tells how a walk around a point stopped.
type FanEnd int

const (
	// FanClosed: the walk came back to the start edge.
	FanClosed FanEnd = iota
	// FanHull: the walk ran into a hull edge.
	FanHull
	// FanTruncated: the walk hit the valence bound.
	FanTruncated
)

func (f FanEnd) String() string {
	switch f {
	case FanClosed:
		return "closed"
	case FanHull:
		return "hull"
	case FanTruncated:
		return "truncated"
	}
	return "unknown"
}

// EdgesAroundPoint walks the half-edges pointing into the destination of start,
// in rotational order, beginning with start itself.
//
// The walk stops when it returns to start, when the next opposite edge is
// negative (no opposite), or after limit edges. A limit <= 0 means DefaultMaxValence.
// A truncated fan is still a valid prefix of the full one.
func EdgesAroundPoint(halfEdges []int, start, limit int) ([]int, FanEnd) {
	if limit <= 0 {
		limit = DefaultMaxValence
	}

	result := make([]int, 0, 8)
	incoming := start
	for {
		result = append(result, incoming)
		outgoing := NextHalfEdge(incoming)
		incoming = halfEdges[outgoing]

		switch {
		case incoming < 0:
			return result, FanHull
		case incoming == start:
			return result, FanClosed
		case len(result) >= limit:
			return result, FanTruncated
		}
	}
}
