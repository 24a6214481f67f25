package roots_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rifc/roots"
)

// round3 rounds to three decimals and folds -0 into 0 for stable output.
func round3(x float64) float64 {
	r := math.Round(x*1000) / 1000
	if r == 0 {
		return 0
	}

	return r
}

// ExampleRoot lists the four fourth roots of 16.
func ExampleRoot() {
	for branch := 0; branch < 4; branch++ {
		r := roots.Root(16, branch, 4)
		fmt.Printf("branch %d: %.3f%+.3fi\n", branch, round3(real(r)), round3(imag(r)))
	}
	// Output:
	// branch 0: 2.000+0.000i
	// branch 1: 0.000+2.000i
	// branch 2: -2.000+0.000i
	// branch 3: 0.000-2.000i
}

// ExampleFind recovers which cube root of 8 was taken.
func ExampleFind() {
	r := roots.Root(8, 2, 3)
	branch, err := roots.Find(8, r, 3, 1e-9)
	fmt.Println(branch, err)
	// Output:
	// 2 <nil>
}
