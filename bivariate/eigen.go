// SPDX-License-Identifier: MIT

package bivariate

import "math"

// EigenValues returns the eigenvalues of cov in closed form:
//
//	t1 = (a + d) / 2
//	t2 = sqrt((a + d)²/4 - a·d + b·c)
//	l1 = t1 + t2,  l2 = t1 - t2
//
// No guards: a negative radicand yields NaN for both values.
// l1 >= l2 whenever the radicand is non-negative.
//
// Complexity: O(1).
func EigenValues(cov Cov2) (l1, l2 float64) {
	t1 := (cov.A + cov.D) / 2
	t2 := math.Sqrt(radicand(cov))

	return t1 + t2, t1 - t2
}

// radicand evaluates (a+d)²/4 - a·d + b·c left to right. Products are
// rounded explicitly so that no platform fuses them into FMA instructions.
func radicand(cov Cov2) float64 {
	s := cov.A + cov.D

	return float64(s*s)/4 - float64(cov.A*cov.D) + float64(cov.B*cov.C)
}

// EigenVector returns the unit eigenvector of cov for eigenvalue lam using
// the summed-rows relation (a+c)·x + (b+d)·y = lam·(x+y) with x = 1:
//
//	y = (-(a + c) + lam) / (b + d - lam)
//
// The result is (1, y) / sqrt(1 + y²). No guards: when b + d == lam the
// result is NaN (0/0) or (0, NaN) (±Inf slope).
//
// Complexity: O(1).
func EigenVector(cov Cov2, lam float64) Vec2 {
	const x = 1.0
	y := x * ((-(cov.A + cov.C) + lam) / (cov.B + cov.D - lam))
	n := math.Sqrt(float64(x*x) + float64(y*y))

	return Vec2{x / n, y / n}
}

// Decompose computes the eigen-decomposition of cov under the resolved policy.
//
// Strict (default):
//   - non-finite entries      → ErrNaNInf
//   - |B-C| > tol (opt-in)    → ErrAsymmetry
//   - radicand < -tol·scale   → ErrDegenerateMatrix; tiny negatives clamp to 0
//   - Val2 < -tol             → ErrNotPositiveSemiDefinite; tiny negatives clamp to 0
//   - repeated eigenvalue     → axis-aligned basis (1,0), (0,1)
//   - |b+d-λ| <= tol          → direction recovered from a row of (M - λI)
//
// Legacy: EigenValues + EigenVector verbatim, never fails.
//
// scale = max|entry|. Eigenvalues, t2 and b+d-λ are compared against
// tol = eps·scale; the radicand, which has units of entry², against eps·scale².
// The zero matrix decomposes to λ1 = λ2 = 0 with the axis-aligned basis.
//
// Accuracy: when |b+d-λ| is only just above tol, the closed-form slope
// (-(a+c)+λ)/(b+d-λ) divides two nearly cancelled quantities, and the
// eigenvectors lose precision (e.g. |2 1; 1 2+1e-6| gives components good
// to about 1e-7). This is kept so Strict and Legacy agree bit for bit
// wherever the denominator is above tolerance.
func Decompose(cov Cov2, opts ...Option) (Eigen, error) {
	eig, err := decompose(cov, gatherOptions(opts...))
	if err != nil {
		return Eigen{}, bivariateErrorf(opDecompose, err)
	}

	return eig, nil
}

func decompose(cov Cov2, o Options) (Eigen, error) {
	if o.policy == Legacy {
		l1, l2 := EigenValues(cov)

		return Eigen{Val1: l1, Val2: l2, Vec1: EigenVector(cov, l1), Vec2: EigenVector(cov, l2)}, nil
	}

	if !cov.finite() {
		return Eigen{}, ErrNaNInf
	}
	scale := cov.maxAbs()
	if scale == 0 {
		return Eigen{Vec1: Vec2{1, 0}, Vec2: Vec2{0, 1}}, nil
	}
	tol := o.eps * scale
	if o.checkSymmetry && math.Abs(cov.B-cov.C) > tol {
		return Eigen{}, ErrAsymmetry
	}

	r := radicand(cov)
	if r < -tol*scale {
		return Eigen{}, ErrDegenerateMatrix
	}
	if r < 0 {
		r = 0
	}
	t1 := (cov.A + cov.D) / 2
	t2 := math.Sqrt(r)
	l1, l2 := t1+t2, t1-t2
	if l2 < -tol {
		return Eigen{}, ErrNotPositiveSemiDefinite
	}

	var (
		e   = Eigen{Val1: l1, Val2: l2}
		err error
	)
	if t2 <= tol {
		// Symmetric with a double root: cov is a multiple of the identity.
		e.Vec1, e.Vec2 = Vec2{1, 0}, Vec2{0, 1}
	} else {
		if e.Vec1, err = strictVector(cov, l1, tol); err != nil {
			return Eigen{}, err
		}
		if e.Vec2, err = strictVector(cov, l2, tol); err != nil {
			return Eigen{}, err
		}
	}
	e.Val1, e.Val2 = math.Max(e.Val1, 0), math.Max(e.Val2, 0)

	return e, nil
}

// EigenVectorStrict is the guarded form of EigenVector. When |b+d-lam| is
// within tolerance, the direction is recovered from a non-null row of
// (M - lam·I); if both rows are null as well, it returns ErrZeroDenominator.
// For lam an eigenvalue of a non-scalar matrix the fallback always succeeds.
func EigenVectorStrict(cov Cov2, lam float64, opts ...Option) (Vec2, error) {
	o := gatherOptions(opts...)
	if !cov.finite() || !isFinite(lam) {
		return Vec2{}, ErrNaNInf
	}

	return strictVector(cov, lam, o.eps*math.Max(cov.maxAbs(), math.Abs(lam)))
}

// strictVector is EigenVector with a fallback for a vanishing denominator:
// the eigenvector is perpendicular to any non-null row (p, q) of M - λI,
// so (-q, p) is used, flipped to keep x > 0 like the closed form does.
func strictVector(cov Cov2, lam, tol float64) (Vec2, error) {
	if math.Abs(cov.B+cov.D-lam) > tol {
		return EigenVector(cov, lam), nil
	}

	var v Vec2
	switch {
	case math.Hypot(cov.A-lam, cov.B) > tol:
		v = Vec2{-cov.B, cov.A - lam}
	case math.Hypot(cov.C, cov.D-lam) > tol:
		v = Vec2{-(cov.D - lam), cov.C}
	default:
		return Vec2{}, ErrZeroDenominator
	}

	n := v.Norm()
	v[0], v[1] = v[0]/n, v[1]/n
	if v[0] < 0 || (v[0] == 0 && v[1] < 0) {
		v[0], v[1] = -v[0], -v[1]
	}

	return v, nil
}
