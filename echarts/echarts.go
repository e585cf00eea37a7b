// Package echarts renders density grids as interactive HTML scatter
// charts via go-echarts, for embedding in status or report pages where
// a static PNG is not enough.
package echarts

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/statviz/gaussplot"
)

// DefaultMaxPoints caps how many grid nodes a chart carries. Browsers
// handle a few thousand scatter points comfortably; a full 100x100
// grid already exceeds that, so charts subsample by default.
const DefaultMaxPoints = 8000

// viridis-like ramp for the density colour scale.
var densityColours = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// NewDensityScatter builds a scatter chart of g with one point per
// grid node, coloured by density. When the grid holds more than
// maxPoints nodes the chart keeps every stride-th node instead;
// maxPoints <= 0 means DefaultMaxPoints. Render the result with its
// Render method.
func NewDensityScatter(g *gaussplot.DensityGrid, maxPoints int) *charts.Scatter {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}

	rows, cols := g.Dims()
	total := rows * cols
	stride := 1
	if total > maxPoints {
		stride = int(math.Ceil(float64(total) / float64(maxPoints)))
	}

	data := make([]opts.ScatterData, 0, total/stride+1)
	var maxZ float64
	for k := 0; k < total; k += stride {
		i, j := k/cols, k%cols
		z := g.Z.At(i, j)
		if z > maxZ {
			maxZ = z
		}
		data = append(data, opts.ScatterData{
			Value: []interface{}{g.X1.At(i, j), g.X2.At(i, j), z},
		})
	}
	if maxZ <= 0 {
		maxZ = 1
	}

	pad := 1.05 * maxAbsEdge(g)
	if pad == 0 {
		pad = 1
	}

	// Equal width and height with symmetric axis ranges keeps the plot
	// square.
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Density Grid", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Bivariate normal density",
			Subtitle: fmt.Sprintf("grid=%dx%d points=%d stride=%d", rows, cols, len(data), stride),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "x1", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "x2", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxZ),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: densityColours},
		}),
	)
	scatter.AddSeries("density", data,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	return scatter
}

// maxAbsEdge returns the largest coordinate magnitude on the grid
// boundary, used to pad the chart axes symmetrically.
func maxAbsEdge(g *gaussplot.DensityGrid) float64 {
	rows, cols := g.Dims()
	edges := []float64{
		g.X1.At(0, 0), g.X1.At(0, cols-1),
		g.X2.At(0, 0), g.X2.At(rows-1, 0),
	}
	var m float64
	for _, v := range edges {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
