// Package config loads the generation and server settings from TOML.
//
//	[points]
//	kind   = "grid"   # grid | random | stations
//	count  = 12
//	jitter = 0.35
//	seed   = 1
//
//	[diagram]
//	center      = "circumcenter"
//	max_valence = 20
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// Point set kinds.
const (
	KindGrid     = "grid"
	KindRandom   = "random"
	KindStations = "stations"
)

type Config struct {
	Points  Points  `toml:"points"`
	Diagram Diagram `toml:"diagram"`
	Server  Server  `toml:"server"`
	Render  Render  `toml:"render"`
	Chart   Chart   `toml:"chart"`
}

type Points struct {
	Kind   string  `toml:"kind"`
	Count  int     `toml:"count"` // per side for grid, total otherwise
	Jitter float64 `toml:"jitter"`
	Seed   int64   `toml:"seed"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
}

type Diagram struct {
	Center     string `toml:"center"`
	MaxValence int    `toml:"max_valence"`
}

type Server struct {
	Addr string `toml:"addr"`
}

type Render struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Out    string `toml:"out"`
}

// Chart configures the web view's chart.
type Chart struct {
	Width       string `toml:"width"`
	Height      string `toml:"height"`
	SiteColor   string `toml:"site_color"`
	HullColor   string `toml:"hull_color"`
	CenterColor string `toml:"center_color"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Points: Points{
			Kind:   KindGrid,
			Count:  12,
			Jitter: 0.35,
			Seed:   1,
			Width:  1000,
			Height: 1000,
		},
		Diagram: Diagram{
			Center:     voronoi.CenterCircumcenter.String(),
			MaxValence: voronoi.DefaultMaxValence,
		},
		Server: Server{Addr: ":8080"},
		Render: Render{Width: 1024, Height: 768, Out: "voronoi.png"},
		Chart: Chart{
			Width:       "1020px",
			Height:      "580px",
			SiteColor:   "lightgreen",
			HullColor:   "orange",
			CenterColor: "gray",
		},
	}
}

// Load reads path on top of Default. Keys absent from the file keep their
// defaults; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	var errs []error

	switch c.Points.Kind {
	case KindGrid, KindRandom, KindStations:
	default:
		errs = append(errs, fmt.Errorf("points.kind: unknown kind %q", c.Points.Kind))
	}
	if c.Points.Count < 2 {
		errs = append(errs, fmt.Errorf("points.count: %d is too small", c.Points.Count))
	}
	if c.Points.Jitter < 0 {
		errs = append(errs, fmt.Errorf("points.jitter: must not be negative"))
	}
	if c.Points.Kind != KindGrid && (c.Points.Width <= 0 || c.Points.Height <= 0) {
		errs = append(errs, fmt.Errorf("points: width and height must be positive"))
	}
	if _, err := c.CenterMode(); err != nil {
		errs = append(errs, fmt.Errorf("diagram.center: %w", err))
	}
	if c.Diagram.MaxValence < 0 {
		errs = append(errs, fmt.Errorf("diagram.max_valence: must not be negative"))
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("render: width and height must be positive"))
	}
	return errors.Join(errs...)
}

// CenterMode parses Diagram.Center.
func (c Config) CenterMode() (voronoi.CenterMode, error) {
	return voronoi.ParseCenterMode(c.Diagram.Center)
}
