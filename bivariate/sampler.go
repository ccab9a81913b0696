// SPDX-License-Identifier: MIT

package bivariate

import "math"

// Sampler draws correlated 2D Gaussian samples N(mean, cov).
//
// The eigen-decomposition of cov is computed once in New and never changes;
// every Sample consumes exactly two standard-normal deviates from the
// injected NormalSource, v1 first, then v2.
//
// A Sampler holds no mutable state of its own. It is safe for concurrent
// use exactly when its NormalSource is (see LockedSource).
type Sampler struct {
	mean Vec2
	cov  Cov2
	eig  Eigen

	// sqrt(Val1), sqrt(Val2); NaN under Legacy for negative eigenvalues.
	root1, root2 float64

	src  NormalSource
	opts Options
}

// New builds a Sampler for N(mean, cov) drawing deviates from src.
//
// Errors (wrapped with "New: "):
//   - ErrNilSource for a nil src (all policies).
//   - ErrNaNInf for a non-finite mean or covariance (Strict).
//   - any Decompose error (Strict).
//
// Complexity: O(1).
func New(mean Vec2, cov Cov2, src NormalSource, opts ...Option) (*Sampler, error) {
	s, err := newSampler(mean, cov, src, gatherOptions(opts...))
	if err != nil {
		return nil, bivariateErrorf(opNew, err)
	}

	return s, nil
}

// NewFromSlices accepts the host parameterization layout: mu = [mx, my]
// and sigma = [a, b, c, d]. Lengths must be exactly 2 and 4, else ErrBadShape.
func NewFromSlices(mu, sigma []float64, src NormalSource, opts ...Option) (*Sampler, error) {
	if len(mu) != 2 {
		return nil, bivariateErrorf(opFromSlices, ErrBadShape)
	}
	cov, err := CovFromSlice(sigma)
	if err != nil {
		return nil, bivariateErrorf(opFromSlices, err)
	}
	s, err := newSampler(Vec2{mu[0], mu[1]}, cov, src, gatherOptions(opts...))
	if err != nil {
		return nil, bivariateErrorf(opFromSlices, err)
	}

	return s, nil
}

func newSampler(mean Vec2, cov Cov2, src NormalSource, o Options) (*Sampler, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if o.policy == Strict && (!isFinite(mean[0]) || !isFinite(mean[1])) {
		return nil, ErrNaNInf
	}
	eig, err := decompose(cov, o)
	if err != nil {
		return nil, err
	}

	return &Sampler{
		mean:  mean,
		cov:   cov,
		eig:   eig,
		root1: math.Sqrt(eig.Val1),
		root2: math.Sqrt(eig.Val2),
		src:   src,
		opts:  o,
	}, nil
}

// Sample draws v1, v2 ~ N(0, 1) and returns Transform(v1, v2).
func (s *Sampler) Sample() Vec2 {
	var v1, v2 float64
	if ps, ok := s.src.(pairSource); ok {
		v1, v2 = ps.NormPair()
	} else {
		v1 = s.src.NormFloat64()
		v2 = s.src.NormFloat64()
	}

	return s.Transform(v1, v2)
}

// Transform maps a pair of independent standard-normal deviates onto
// N(mean, cov) by eigenbasis synthesis:
//
//	y1 = √l1·e1.x·v1 + √l2·e2.x·v2 + mean.x
//	y2 = √l1·e1.y·v1 + √l2·e2.y·v2 + mean.y
//
// Pure and deterministic: the same (v1, v2) always yields the same bits.
func (s *Sampler) Transform(v1, v2 float64) Vec2 {
	y1 := float64(s.root1*s.eig.Vec1[0]*v1) + float64(s.root2*s.eig.Vec2[0]*v2)
	y2 := float64(s.root1*s.eig.Vec1[1]*v1) + float64(s.root2*s.eig.Vec2[1]*v2)

	return Vec2{y1 + s.mean[0], y2 + s.mean[1]}
}

// SampleN returns n fresh samples; ErrNegativeCount for n < 0.
func (s *Sampler) SampleN(n int) ([]Vec2, error) {
	if n < 0 {
		return nil, bivariateErrorf(opSampleN, ErrNegativeCount)
	}
	out := make([]Vec2, n)
	s.Fill(out)

	return out, nil
}

// Fill overwrites every element of dst with a fresh sample, in index order.
func (s *Sampler) Fill(dst []Vec2) {
	for i := range dst {
		dst[i] = s.Sample()
	}
}

// Mean returns the mean vector.
func (s *Sampler) Mean() Vec2 { return s.mean }

// Covariance returns the covariance matrix as supplied.
func (s *Sampler) Covariance() Cov2 { return s.cov }

// Eigen returns a copy of the eigen-decomposition computed at construction.
func (s *Sampler) Eigen() Eigen { return s.eig }

// Options returns the resolved configuration.
func (s *Sampler) Options() Options { return s.opts }
