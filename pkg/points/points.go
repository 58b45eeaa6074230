// Package points generates site sets for the diagram. Every random
// generator takes its source explicitly so a seed reproduces the set.
package points

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Grid returns count×count points on a lattice twice as wide as it is tall,
// each moved by up to ±jitter on both axes. Point x*count+y sits near
// (2x, y). A zero jitter gives an exact lattice and does not consume rng.
func Grid(count int, jitter float64, rng *rand.Rand) []voronoi.Vertex {
	out := make([]voronoi.Vertex, 0, count*count)
	for x := 0; x < count; x++ {
		for y := 0; y < count; y++ {
			p := voronoi.Vertex{X: 2 * float64(x), Y: float64(y)}
			if jitter != 0 {
				p.X += jitter * (rng.Float64() - rng.Float64())
				p.Y += jitter * (rng.Float64() - rng.Float64())
			}
			out = append(out, p)
		}
	}
	return out
}

// Random returns n points with integer coordinates in [0,width)×[0,height).
func Random(n, width, height int, rng *rand.Rand) []voronoi.Vertex {
	out := make([]voronoi.Vertex, n)
	for i := range out {
		out[i] = voronoi.Vertex{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
	}
	return out
}

// Stations spreads n points evenly over width×height, one per grid cell,
// row by row. The last row may be short.
func Stations(n, width, height int) []voronoi.Vertex {
	if n <= 0 {
		return nil
	}
	stations := make([]voronoi.Vertex, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows && len(stations) < n; i++ {
		for j := 0; j < cols && len(stations) < n; j++ {
			stations = append(stations, voronoi.Vertex{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return stations
}
