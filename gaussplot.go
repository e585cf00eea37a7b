// Package gaussplot evaluates bivariate normal densities over plotting
// grids and adapts the results to gonum/plot's contour and heat-map
// plotters.
//
// Contours covers the common case: a fixed 100x100 mesh spanning
// [-3, 3] on both axes, dense enough for smooth contour lines without
// noticeable evaluation cost. Evaluate accepts any mesh built with the
// grid package when a different window or resolution is needed.
package gaussplot

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot/plotter"

	"github.com/statviz/gaussplot/grid"
)

// Default evaluation window: GridSteps nodes per axis spanning
// [GridMin, GridMax]. Three units either side of the origin covers the
// bulk of any near-standard normal.
const (
	GridMin   = -3.0
	GridMax   = 3.0
	GridSteps = 100
)

var (
	// ErrBadShape reports a mean vector or covariance matrix whose
	// dimensions do not describe a bivariate normal.
	ErrBadShape = errors.New("bad shape for bivariate normal")

	// ErrNotPositiveDefinite reports a covariance matrix that admits no
	// Cholesky factorisation: singular, indefinite, or carrying a
	// negative variance.
	ErrNotPositiveDefinite = errors.New("covariance matrix not positive definite")
)

// DensityGrid is a bivariate normal density sampled on a mesh. Z holds
// one density value per mesh node, indexed the same way as the
// coordinate matrices: Z.At(i, j) is the density at (X1.At(i, j),
// X2.At(i, j)).
type DensityGrid struct {
	grid.Mesh
	Z *mat.Dense
}

// Contours evaluates the N(mu, sigma) density on the default
// [GridMin, GridMax] mesh of GridSteps by GridSteps nodes. mu must
// have length 2 and sigma must be a symmetric 2x2 matrix; violations
// report ErrBadShape. A sigma that is not positive definite reports
// ErrNotPositiveDefinite.
func Contours(mu []float64, sigma mat.Matrix) (*DensityGrid, error) {
	axis := grid.Linspace(GridMin, GridMax, GridSteps)
	return Evaluate(mu, sigma, grid.Meshgrid(axis, axis))
}

// Evaluate computes the N(mu, sigma) density at every node of m. The
// same argument checks as Contours apply.
func Evaluate(mu []float64, sigma mat.Matrix, m grid.Mesh) (*DensityGrid, error) {
	if err := checkArgs(mu, sigma); err != nil {
		return nil, err
	}

	cov := mat.NewSymDense(2, nil)
	cov.SetSym(0, 0, sigma.At(0, 0))
	cov.SetSym(0, 1, sigma.At(0, 1))
	cov.SetSym(1, 1, sigma.At(1, 1))

	dist, ok := distmv.NewNormal(mu, cov, nil)
	if !ok {
		return nil, fmt.Errorf("sigma [%g %g; %g %g]: %w",
			sigma.At(0, 0), sigma.At(0, 1), sigma.At(1, 0), sigma.At(1, 1),
			ErrNotPositiveDefinite)
	}

	rows, cols := m.Dims()
	pts := m.Points()
	z := make([]float64, rows*cols)
	for k := range z {
		z[k] = dist.Prob(pts.RawRowView(k))
	}
	return &DensityGrid{Mesh: m, Z: mat.NewDense(rows, cols, z)}, nil
}

func checkArgs(mu []float64, sigma mat.Matrix) error {
	if len(mu) != 2 {
		return fmt.Errorf("mu: want length 2, got %d: %w", len(mu), ErrBadShape)
	}
	if sigma == nil {
		return fmt.Errorf("sigma: nil matrix: %w", ErrBadShape)
	}
	if r, c := sigma.Dims(); r != 2 || c != 2 {
		return fmt.Errorf("sigma: want 2x2, got %dx%d: %w", r, c, ErrBadShape)
	}
	if sigma.At(0, 1) != sigma.At(1, 0) {
		return fmt.Errorf("sigma: asymmetric off-diagonal %g vs %g: %w",
			sigma.At(0, 1), sigma.At(1, 0), ErrBadShape)
	}
	return nil
}

// XYZ returns a view of g satisfying plotter.GridXYZ, ready to hand to
// plotter.NewContour or plotter.NewHeatMap. The view shares g's
// backing data.
func (g *DensityGrid) XYZ() plotter.GridXYZ {
	return gridXYZ{g}
}

// gridXYZ flips between the mesh's (row, column) indexing and the
// (column, row) order plotter.GridXYZ uses.
type gridXYZ struct {
	g *DensityGrid
}

func (v gridXYZ) Dims() (c, r int) {
	rr, cc := v.g.Z.Dims()
	return cc, rr
}

func (v gridXYZ) X(c int) float64 { return v.g.X1.At(0, c) }

func (v gridXYZ) Y(r int) float64 { return v.g.X2.At(r, 0) }

func (v gridXYZ) Z(c, r int) float64 { return v.g.Z.At(r, c) }

// MarginalCurve samples the univariate N(mu, sigma^2) density at n
// evenly spaced points across [GridMin, GridMax], shaped for
// plotter.NewLine. It reports ErrNotPositiveDefinite unless sigma > 0,
// and panics if n < 2.
func MarginalCurve(mu, sigma float64, n int) (plotter.XYs, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("sigma %g: %w", sigma, ErrNotPositiveDefinite)
	}
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	xs := grid.Linspace(GridMin, GridMax, n)
	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i] = plotter.XY{X: x, Y: dist.Prob(x)}
	}
	return pts, nil
}
