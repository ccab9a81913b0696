package bivariate_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gauss2d/bivariate"
)

// ExampleNew draws one sample from N((10, -3), |2 1; 1 2|). A stubbed source
// returning 0.5 then -0.5 makes the output reproducible.
func ExampleNew() {
	draws := []float64{0.5, -0.5}
	i := 0
	src := bivariate.NormalFunc(func() float64 {
		v := draws[i%len(draws)]
		i++
		return v
	})

	s, err := bivariate.New(
		bivariate.Vec2{10, -3},
		bivariate.Cov2{A: 2, B: 1, C: 1, D: 2},
		src,
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	p := s.Sample()
	fmt.Printf("%.4f %.4f\n", p.X(), p.Y())
	// Output:
	// 10.2588 -2.0341
}

// ExampleDecompose prints the eigenbasis of |2 1; 1 2|.
func ExampleDecompose() {
	e, err := bivariate.Decompose(bivariate.Cov2{A: 2, B: 1, C: 1, D: 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("l1=%g e1=(%.4f, %.4f)\n", e.Val1, e.Vec1.X(), e.Vec1.Y())
	fmt.Printf("l2=%g e2=(%.4f, %.4f)\n", e.Val2, e.Vec2.X(), e.Vec2.Y())
	// Output:
	// l1=3 e1=(0.7071, 0.7071)
	// l2=1 e2=(0.7071, -0.7071)
}

// ExampleDecompose_degenerate shows the Strict rejection of complex eigenvalues.
func ExampleDecompose_degenerate() {
	_, err := bivariate.Decompose(bivariate.Cov2{A: 0, B: 1, C: -5, D: 0})
	fmt.Println(errors.Is(err, bivariate.ErrDegenerateMatrix))
	fmt.Println(err)
	// Output:
	// true
	// Decompose: bivariate: complex eigenvalues (negative radicand)
}
