package render

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// PNGOptions controls the raster output.
type PNGOptions struct {
	Width, Height int
	Margin        float64 // pixels kept free around the sites
	FillCells     bool
}

// DefaultPNGOptions is used for zero fields.
var DefaultPNGOptions = PNGOptions{Width: 1024, Height: 768, Margin: 24, FillCells: true}

// projection maps diagram coordinates onto the canvas, y pointing up.
type projection struct {
	scale, ox, oy float64
	height        float64
}

func newProjection(bb voronoi.BoundingBox, o PNGOptions) projection {
	w := math.Max(bb.Xr-bb.Xl, 1e-9)
	h := math.Max(bb.Yb-bb.Yt, 1e-9)
	scale := math.Min((float64(o.Width)-2*o.Margin)/w, (float64(o.Height)-2*o.Margin)/h)
	return projection{
		scale:  scale,
		ox:     o.Margin - bb.Xl*scale + (float64(o.Width)-2*o.Margin-w*scale)/2,
		oy:     o.Margin - bb.Yt*scale + (float64(o.Height)-2*o.Margin-h*scale)/2,
		height: float64(o.Height),
	}
}

func (p projection) apply(v voronoi.Vertex) (float64, float64) {
	return p.ox + v.X*p.scale, p.height - (p.oy + v.Y*p.scale)
}

// cellColor spreads hues by point index.
func cellColor(p int) (r, g, b float64) {
	h := math.Mod(float64(p)*0.618033988749895, 1)
	return 0.55 + 0.35*math.Sin(2*math.Pi*h), 0.55 + 0.35*math.Sin(2*math.Pi*(h+1.0/3)), 0.55 + 0.35*math.Sin(2*math.Pi*(h+2.0/3))
}

// PNG draws d and encodes it to w.
func PNG(w io.Writer, d *voronoi.Diagram, o PNGOptions) error {
	if o.Width <= 0 {
		o.Width = DefaultPNGOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultPNGOptions.Height
	}
	if len(d.Points) == 0 {
		return fmt.Errorf("render: empty diagram")
	}

	proj := newProjection(d.Bounds(), o)
	dc := gg.NewContext(o.Width, o.Height)
	dc.SetRGB(0.12, 0.12, 0.12)
	dc.Clear()

	// clip to the site bounds so hull cells with far-away centers stay readable
	x0, y0 := proj.apply(voronoi.Vertex{X: d.Bounds().Xl, Y: d.Bounds().Yb})
	x1, y1 := proj.apply(voronoi.Vertex{X: d.Bounds().Xr, Y: d.Bounds().Yt})
	dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	dc.Clip()

	if o.FillCells {
		for p := range d.Points {
			poly := d.CellPolygon(p)
			if len(poly) < 3 || d.Cells.IsBoundary[p] {
				continue
			}
			for i, v := range poly {
				x, y := proj.apply(v)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
			dc.SetRGB(cellColor(p))
			dc.Fill()
		}
	}

	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1.5)
	for _, e := range d.Edges() {
		ax, ay := proj.apply(e.Va)
		bx, by := proj.apply(e.Vb)
		dc.DrawLine(ax, ay, bx, by)
		dc.Stroke()
	}
	dc.ResetClip()

	for p, site := range d.Points {
		x, y := proj.apply(site)
		if d.Cells.IsBoundary[p] {
			dc.SetRGB(1, 0.6, 0)
		} else {
			dc.SetRGB(0.5, 1, 0.5)
		}
		dc.DrawCircle(x, y, 3)
		dc.Fill()
	}

	return dc.EncodePNG(w)
}
