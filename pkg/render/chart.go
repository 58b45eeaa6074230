// Package render draws a voronoi.Diagram: an interactive go-echarts chart for
// the web view and a PNG for the command line.
package render

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// ChartOptions sets the size and palette of the web chart.
type ChartOptions struct {
	Width, Height string // CSS sizes, e.g. "1020px"
	Title         string // empty means mode and cell count
	SiteColor     string
	HullColor     string
	CenterColor   string
	EdgeWidth     float32
}

// DefaultChartOptions fills zero fields.
var DefaultChartOptions = ChartOptions{
	Width:       "1020px",
	Height:      "580px",
	SiteColor:   "lightgreen",
	HullColor:   "orange",
	CenterColor: "gray",
	EdgeWidth:   2,
}

func (o ChartOptions) withDefaults() ChartOptions {
	def := DefaultChartOptions
	if o.Width == "" {
		o.Width = def.Width
	}
	if o.Height == "" {
		o.Height = def.Height
	}
	if o.SiteColor == "" {
		o.SiteColor = def.SiteColor
	}
	if o.HullColor == "" {
		o.HullColor = def.HullColor
	}
	if o.CenterColor == "" {
		o.CenterColor = def.CenterColor
	}
	if o.EdgeWidth <= 0 {
		o.EdgeWidth = def.EdgeWidth
	}
	return o
}

func prepareScatter(scatter *charts.Scatter, o ChartOptions) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: o.Height,
			Width:  o.Width,
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                o.Title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart plots sites, triangle centers and Voronoi edges. Boundary sites get
// their own series so hull cells stand out.
func Chart(d *voronoi.Diagram, o ChartOptions) *charts.Scatter {
	o = o.withDefaults()
	if o.Title == "" {
		o.Title = fmt.Sprintf("Voronoi (%s, %d cells)", d.Mode, d.Stats().Cells)
	}

	scatter := charts.NewScatter()
	prepareScatter(scatter, o)

	inner := make([]opts.ScatterData, 0, len(d.Points))
	hull := make([]opts.ScatterData, 0)
	for p, site := range d.Points {
		item := opts.ScatterData{Value: []float64{site.X, site.Y}}
		if d.Cells.IsBoundary[p] {
			hull = append(hull, item)
		} else {
			inner = append(inner, item)
		}
	}

	centers := make([]opts.ScatterData, 0, d.Vertices.Len())
	for _, c := range d.Centers() {
		if c.Valid() {
			centers = append(centers, opts.ScatterData{Value: []float64{c.X, c.Y}})
		}
	}

	scatter.AddSeries("Sites", inner).
		SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: o.SiteColor}))
	scatter.AddSeries("Hull sites", hull).
		SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: o.HullColor}))
	scatter.AddSeries("Centers", centers).
		SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: o.CenterColor}))

	for _, edge := range d.Edges() {
		line := charts.NewLine()
		line.AddSeries("Edges", []opts.LineData{
			{Value: []float64{edge.Va.X, edge.Va.Y}},
			{Value: []float64{edge.Vb.X, edge.Vb.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: o.EdgeWidth,
			}),
		)
		scatter.Overlap(line)
	}

	return scatter
}
