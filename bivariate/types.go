// SPDX-License-Identifier: MIT

package bivariate

import "math"

// Vec2 is an ordered pair (x, y). It is used both for the mean vector and
// for every drawn sample.
type Vec2 [2]float64

// X returns the first component.
func (v Vec2) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec2) Y() float64 { return v[1] }

// Norm returns the Euclidean length sqrt(x²+y²).
func (v Vec2) Norm() float64 { return math.Hypot(v[0], v[1]) }

// Cov2 is a 2x2 covariance matrix laid out as
//
//	| A  B |
//	| C  D |
//
// B == C is expected from the caller; it is verified only under WithSymmetryCheck.
type Cov2 struct {
	A, B, C, D float64
}

// Identity2 is the 2x2 identity covariance.
var Identity2 = Cov2{A: 1, D: 1}

// CovFromSlice reads the [a, b, c, d] row-major layout used by host
// parameterization layers. It returns ErrBadShape unless len(s) == 4.
func CovFromSlice(s []float64) (Cov2, error) {
	if len(s) != 4 {
		return Cov2{}, ErrBadShape
	}

	return Cov2{A: s[0], B: s[1], C: s[2], D: s[3]}, nil
}

// Slice returns the entries in [a, b, c, d] order.
func (c Cov2) Slice() []float64 { return []float64{c.A, c.B, c.C, c.D} }

// Trace returns A + D.
func (c Cov2) Trace() float64 { return c.A + c.D }

// Det returns A*D - B*C.
func (c Cov2) Det() float64 { return c.A*c.D - c.B*c.C }

// maxAbs is the largest absolute entry; used to scale tolerances.
func (c Cov2) maxAbs() float64 {
	return math.Max(math.Max(math.Abs(c.A), math.Abs(c.B)), math.Max(math.Abs(c.C), math.Abs(c.D)))
}

// finite reports whether every entry is neither NaN nor ±Inf.
func (c Cov2) finite() bool {
	return isFinite(c.A) && isFinite(c.B) && isFinite(c.C) && isFinite(c.D)
}

// Eigen is the eigen-decomposition of a Cov2.
//
//   - Val1 >= Val2 (Val1 = t1 + t2, Val2 = t1 - t2 in the closed form).
//   - Vec1, Vec2 are unit vectors paired with Val1, Val2.
//
// A Sampler computes it once at construction; Eigen values are copies.
type Eigen struct {
	Val1, Val2 float64
	Vec1, Vec2 Vec2
}

// NormalSource supplies successive standard-normal deviates (mean 0, sigma 1).
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
//
// Implementations are not required to be goroutine-safe; wrap a shared
// stream in LockedSource when drawing from several goroutines.
type NormalSource interface {
	NormFloat64() float64
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
