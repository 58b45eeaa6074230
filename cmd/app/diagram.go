package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/0x0FACED/go-voronoi/pkg/config"
	"github.com/0x0FACED/go-voronoi/pkg/delaunay"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/points"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

func generatePoints(c config.Points) []voronoi.Vertex {
	rng := points.NewRand(c.Seed)
	switch c.Kind {
	case config.KindRandom:
		return points.Random(c.Count, c.Width, c.Height, rng)
	case config.KindStations:
		return points.Stations(c.Count, c.Width, c.Height)
	default:
		return points.Grid(c.Count, c.Jitter, rng)
	}
}

// buildDiagram generates the configured points, triangulates them and
// builds the dual.
func buildDiagram(cfg config.Config, log *logger.ZapLogger) (*voronoi.Diagram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := cfg.CenterMode()
	if err != nil {
		return nil, err
	}

	pts := generatePoints(cfg.Points)
	log.Info("[app] points generated",
		zap.String("kind", cfg.Points.Kind),
		zap.Int("points", len(pts)),
		zap.Int64("seed", cfg.Points.Seed),
	)

	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("triangulate %d points: %w", len(pts), err)
	}

	b := &voronoi.Builder{
		Mode:       mode,
		MaxValence: cfg.Diagram.MaxValence,
		Logger:     log,
	}
	return b.Build(pts, tri)
}
