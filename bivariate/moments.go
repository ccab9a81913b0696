// SPDX-License-Identifier: MIT

package bivariate

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Moments returns the sample mean and the unbiased sample covariance of
// samples. The result is always symmetric (B == C).
// ErrTooFewSamples when len(samples) < 2.
//
// Complexity: O(n) time, O(n) space.
func Moments(samples []Vec2) (Vec2, Cov2, error) {
	if len(samples) < 2 {
		return Vec2{}, Cov2{}, bivariateErrorf(opMoments, ErrTooFewSamples)
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i], ys[i] = s[0], s[1]
	}

	mean := Vec2{stat.Mean(xs, nil), stat.Mean(ys, nil)}
	cxy := stat.Covariance(xs, ys, nil)
	cov := Cov2{
		A: stat.Variance(xs, nil),
		B: cxy,
		C: cxy,
		D: stat.Variance(ys, nil),
	}

	return mean, cov, nil
}

// SymDense returns cov as a gonum symmetric matrix. The off-diagonal is
// taken from B; C is ignored.
func (c Cov2) SymDense() *mat.SymDense {
	return mat.NewSymDense(2, []float64{c.A, c.B, c.B, c.D})
}

// CovFromSymmetric converts a 2x2 gonum symmetric matrix into a Cov2.
// ErrBadShape for nil or for any other dimension.
func CovFromSymmetric(m mat.Symmetric) (Cov2, error) {
	if m == nil || m.SymmetricDim() != 2 {
		return Cov2{}, bivariateErrorf(opFromSym, ErrBadShape)
	}

	return Cov2{A: m.At(0, 0), B: m.At(0, 1), C: m.At(1, 0), D: m.At(1, 1)}, nil
}
