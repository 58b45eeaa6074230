package voronoi

import (
	"fmt"
	"time"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// Builder derives a Voronoi diagram from points and their triangulation.
// The zero value builds circumcenter cells with the default valence bound
// and no logging.
type Builder struct {
	// Mode selects circumcenters or centroids for the dual vertices.
	Mode CenterMode
	// MaxValence bounds the walk around each point; <= 0 means DefaultMaxValence.
	MaxValence int
	// SkipValidation trusts the triangulation as given.
	SkipValidation bool

	Logger *logger.ZapLogger
}

// NewBuilder returns a Builder logging to l.
func NewBuilder(l *logger.ZapLogger) *Builder {
	return &Builder{Logger: l}
}

// Build runs one forward pass over every half-edge. Each point's cell and
// each triangle's vertex is filled the first time one of its half-edges is
// visited and never touched again, so the output depends only on the input.
//
// points and tri are borrowed and never modified.
func (b *Builder) Build(points []Vertex, tri Triangulation) (*Diagram, error) {
	log := b.Logger
	if log == nil {
		log = logger.Nop()
	}

	if !b.SkipValidation {
		if err := tri.Validate(len(points)); err != nil {
			log.Error("[build] triangulation rejected", zap.Error(err))
			return nil, fmt.Errorf("build voronoi: %w", err)
		}
	}

	limit := b.MaxValence
	if limit <= 0 {
		limit = DefaultMaxValence
	}

	started := time.Now()
	numPoints := len(points)
	log.Info("[build] started",
		zap.Int("points", numPoints),
		zap.Int("triangles", tri.NumTriangles()),
		zap.Stringer("mode", b.Mode),
		zap.Int("max_valence", limit),
	)

	d := &Diagram{
		Points:        points,
		Triangulation: tri,
		Mode:          b.Mode,
		Cells:         newCells(numPoints),
		Vertices:      newVertices(tri.NumTriangles()),
	}

	for e := 0; e < tri.NumHalfEdges(); e++ {
		p := tri.Triangles[NextHalfEdge(e)]
		if p < numPoints && !d.Cells.Computed[p] {
			b.buildCell(d, log, p, e, limit)
		}

		t := TriangleOfEdge(e)
		if !d.Vertices.Computed[t] {
			b.buildVertex(d, log, t)
		}
	}

	s := d.Stats()
	log.Info("[build] done",
		zap.Int("cells", s.Cells),
		zap.Int("boundary", s.Boundary),
		zap.Int("truncated", s.Truncated),
		zap.Int("degenerate", s.Degenerate),
		zap.Duration("took", time.Since(started)),
	)
	return d, nil
}

func (b *Builder) buildCell(d *Diagram, log *logger.ZapLogger, p, start, limit int) {
	tri := d.Triangulation
	edges, end := EdgesAroundPoint(tri.HalfEdges, start, limit)

	triangles := make([]int, len(edges))
	neighbors := make([]int, 0, len(edges))
	for i, e := range edges {
		triangles[i] = TriangleOfEdge(e)
		if q := tri.Triangles[e]; q < len(d.Points) {
			neighbors = append(neighbors, q)
		}
	}

	c := &d.Cells
	c.AdjacentTriangles[p] = triangles
	c.AdjacentPoints[p] = neighbors
	c.IsBoundary[p] = end == FanHull || len(edges) > len(neighbors)
	c.Truncated[p] = end == FanTruncated
	c.Computed[p] = true

	if end == FanTruncated {
		log.Warn("[build] cell walk truncated", zap.Int("point", p), zap.Int("edges", len(edges)))
	} else {
		log.Debug("[build] cell", zap.Int("point", p), zap.Ints("triangles", triangles), zap.Stringer("end", end))
	}
}

func (b *Builder) buildVertex(d *Diagram, log *logger.ZapLogger, t int) {
	tri := d.Triangulation
	v := &d.Vertices

	corners := tri.PointsOfTriangle(t)
	v.IncidentPoints[t] = corners
	for i, e := range EdgesOfTriangle(t) {
		if o, ok := tri.Opposite(e); ok {
			v.NeighborTriangles[t][i] = TriangleOfEdge(o)
		} else {
			v.NeighborTriangles[t][i] = NoTriangle
		}
	}

	center, err := b.center(d.Points, corners)
	if err != nil {
		log.Warn("[build] no center for triangle", zap.Int("triangle", t), zap.Ints("points", corners[:]), zap.Error(err))
		center = NoVertex
		v.Degenerate[t] = true
	}
	v.Center[t] = center
	v.Computed[t] = true
}

func (b *Builder) center(points []Vertex, corners [3]int) (Vertex, error) {
	// ghost corners have no coordinates
	for _, c := range corners {
		if c >= len(points) {
			return NoVertex, ErrDegenerateTriangle
		}
	}
	return triangleCenter(b.Mode, points[corners[0]], points[corners[1]], points[corners[2]])
}
