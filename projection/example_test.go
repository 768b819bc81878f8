package projection_test

import (
	"fmt"

	"github.com/katalvlaran/sparsity/projection"
)

// ExampleL1Ball projects a vector whose L1 norm is 2.1 onto the unit ball.
func ExampleL1Ball() {
	out, err := projection.L1Ball([]float64{0.7, 0.5, -0.9}, 1.0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f\n", out)

	// Output:
	// [0.15 0.00 -0.35]
}
