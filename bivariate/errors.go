// SPDX-License-Identifier: MIT
// Package bivariate: sentinel error set.
// All constructors return these sentinels (optionally wrapped with an
// operation tag via bivariateErrorf); tests MUST match them via errors.Is.
// Sample never returns an error: every numeric domain check happens once,
// at construction time.

package bivariate

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when slice inputs do not have exactly the
	// required lengths (2 for the mean, 4 for the covariance) or when a
	// gonum matrix is not 2x2.
	ErrBadShape = errors.New("bivariate: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf entry in the mean or covariance.
	ErrNaNInf = errors.New("bivariate: NaN or Inf encountered")

	// ErrNilSource indicates that no standard-normal source was supplied.
	ErrNilSource = errors.New("bivariate: nil normal source")

	// ErrAsymmetry signals |B-C| above tolerance when symmetry checking is enabled.
	ErrAsymmetry = errors.New("bivariate: covariance is not symmetric within eps")

	// ErrDegenerateMatrix signals a negative radicand in the closed-form
	// eigenvalue formula: the eigenvalues are complex.
	ErrDegenerateMatrix = errors.New("bivariate: complex eigenvalues (negative radicand)")

	// ErrNotPositiveSemiDefinite signals a negative eigenvalue; sqrt(λ) is undefined.
	ErrNotPositiveSemiDefinite = errors.New("bivariate: covariance is not positive semi-definite")

	// ErrZeroDenominator signals that the eigenvector denominator (b+d-λ)
	// vanished and no row of (M - λI) could recover a direction.
	ErrZeroDenominator = errors.New("bivariate: zero denominator in eigenvector")

	// ErrNegativeCount is returned by SampleN for n < 0.
	ErrNegativeCount = errors.New("bivariate: negative sample count")

	// ErrTooFewSamples is returned by Moments when fewer than two samples are given.
	ErrTooFewSamples = errors.New("bivariate: at least two samples required")
)

// Operation tags for error wrapping.
const (
	opNew        = "New"
	opFromSlices = "NewFromSlices"
	opDecompose  = "Decompose"
	opSampleN    = "SampleN"
	opMoments    = "Moments"
	opFromSym    = "CovFromSymmetric"
	opLocked     = "NewLockedSource"
)

// bivariateErrorf wraps err with an operation tag, keeping errors.Is intact.
// Call only with a non-nil err.
func bivariateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
