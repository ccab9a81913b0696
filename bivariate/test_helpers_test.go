// SPDX-License-Identifier: MIT
// Package bivariate_test contains shared fixtures.

package bivariate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gauss2d/bivariate"
	"github.com/stretchr/testify/require"
)

// Tolerances.
const (
	epsExact = 1e-12 // closed-form arithmetic
	nDraws   = 20000 // statistical tests
)

// Well-conditioned covariances shared across tests.
var (
	covTwoOne  = bivariate.Cov2{A: 2, B: 1, C: 1, D: 2} // eigenvalues 3 and 1
	covGeneric = bivariate.Cov2{A: 3, B: 1, C: 1, D: 2} // no vanishing denominator
	covDiag12  = bivariate.Cov2{A: 1, D: 2}             // axis-aligned, distinct
)

// covScales spans micro-scale (σ ~ 1e-7) to large covariances.
var covScales = []float64{1e-14, 1e-13, 1e-12, 1e-9, 1e-6, 1e-3, 1, 1e3, 1e6, 1e8}

// scaled returns k·c.
func scaled(c bivariate.Cov2, k float64) bivariate.Cov2 {
	return bivariate.Cov2{A: k * c.A, B: k * c.B, C: k * c.C, D: k * c.D}
}

// seqSource replays vals cyclically and counts draws.
type seqSource struct {
	vals  []float64
	next  int
	calls int
}

func newSeq(vals ...float64) *seqSource { return &seqSource{vals: vals} }

func (s *seqSource) NormFloat64() float64 {
	v := s.vals[s.next%len(s.vals)]
	s.next++
	s.calls++

	return v
}

// mustSampler builds a Sampler or fails the test.
func mustSampler(t testing.TB, mean bivariate.Vec2, cov bivariate.Cov2, src bivariate.NormalSource, opts ...bivariate.Option) *bivariate.Sampler {
	t.Helper()
	s, err := bivariate.New(mean, cov, src, opts...)
	require.NoError(t, err, "New(%v, %+v)", mean, cov)

	return s
}

// residual returns |M·v - lam·v| for a symmetric-or-not 2x2 M.
func residual(c bivariate.Cov2, lam float64, v bivariate.Vec2) float64 {
	rx := c.A*v[0] + c.B*v[1] - lam*v[0]
	ry := c.C*v[0] + c.D*v[1] - lam*v[1]

	return math.Hypot(rx, ry)
}
