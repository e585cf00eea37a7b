// Package axes styles gonum/plot plots the way publication figures are
// usually drawn: a frame around the data area whose edges can be shown
// or hidden per plot.
//
// Styling is scoped to one Axes handle. Two handles never share state,
// so dressing one plot cannot restyle another that happens to be built
// at the same time.
package axes

import (
	"gonum.org/v1/plot"
)

// Axes couples a plot with the frame drawn around its data area. Create
// one with New or Wrap; the zero value has no plot or frame attached.
type Axes struct {
	*plot.Plot

	// Frame is the border plotter Wrap registered on the plot. Edge
	// toggles take effect on the next draw.
	Frame *Frame
}

// New returns a fresh plot wrapped in an Axes with all four frame edges
// visible.
func New() *Axes {
	return Wrap(plot.New())
}

// Wrap attaches a full frame to an existing plot and returns the pair
// as an Axes.
func Wrap(p *plot.Plot) *Axes {
	f := NewFrame()
	p.Add(f)
	return &Axes{Plot: p, Frame: f}
}

// Beautify hides the top and right frame edges and sets the axis
// labels. An empty label leaves that axis' existing label untouched.
// Calling Beautify again with the same arguments is a no-op: edges
// already hidden stay hidden and labels keep their values.
func (ax *Axes) Beautify(xlabel, ylabel string) {
	if ax.Frame != nil {
		ax.Frame.Top = false
		ax.Frame.Right = false
	}
	if xlabel != "" {
		ax.X.Label.Text = xlabel
	}
	if ylabel != "" {
		ax.Y.Label.Text = ylabel
	}
}
