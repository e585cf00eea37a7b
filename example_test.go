package gaussplot_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/statviz/gaussplot"
)

func ExampleContours() {
	g, err := gaussplot.Contours([]float64{0, 0}, mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	if err != nil {
		panic(err)
	}

	rows, cols := g.Z.Dims()
	fmt.Println(rows, cols)
	fmt.Printf("%.4f\n", g.Z.At(50, 50))
	// Output:
	// 100 100
	// 0.1590
}
