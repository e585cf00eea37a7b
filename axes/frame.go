package axes

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Frame draws a border along the edges of a plot's data area. Each edge
// toggles independently; a hidden edge is simply not stroked.
type Frame struct {
	Top, Bottom, Left, Right bool

	// LineStyle strokes every visible edge.
	draw.LineStyle
}

var _ plot.Plotter = (*Frame)(nil)

// NewFrame returns a frame with all four edges visible, stroked with
// plotter.DefaultLineStyle.
func NewFrame() *Frame {
	return &Frame{
		Top:       true,
		Bottom:    true,
		Left:      true,
		Right:     true,
		LineStyle: plotter.DefaultLineStyle,
	}
}

// Plot strokes the visible edges along the borders of the data canvas.
func (f *Frame) Plot(c draw.Canvas, _ *plot.Plot) {
	if f.Top {
		c.StrokeLine2(f.LineStyle, c.Min.X, c.Max.Y, c.Max.X, c.Max.Y)
	}
	if f.Bottom {
		c.StrokeLine2(f.LineStyle, c.Min.X, c.Min.Y, c.Max.X, c.Min.Y)
	}
	if f.Left {
		c.StrokeLine2(f.LineStyle, c.Min.X, c.Min.Y, c.Min.X, c.Max.Y)
	}
	if f.Right {
		c.StrokeLine2(f.LineStyle, c.Max.X, c.Min.Y, c.Max.X, c.Max.Y)
	}
}
