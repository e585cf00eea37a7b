package axes_test

import (
	"fmt"

	"github.com/statviz/gaussplot/axes"
)

func ExampleAxes_Beautify() {
	ax := axes.New()
	ax.Beautify("time (s)", "amplitude")

	fmt.Println(ax.X.Label.Text, ax.Y.Label.Text)
	fmt.Println(ax.Frame.Top, ax.Frame.Right, ax.Frame.Bottom, ax.Frame.Left)
	// Output:
	// time (s) amplitude
	// false false true true
}
