// SPDX-License-Identifier: MIT

// Package bivariate: functional configuration for the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); user data errors are returned as sentinels.
//   - Defaults live in one place (Default* constants) and are mirrored by
//     defaultOptions.
package bivariate

import "math"

// Policy selects how numeric domain violations are handled.
type Policy int

const (
	// Strict rejects complex eigenvalues, negative eigenvalues and vanishing
	// eigenvector denominators with sentinel errors, and recovers a valid
	// eigenbasis for diagonal or (1,1)-aligned matrices.
	Strict Policy = iota

	// Legacy reproduces the raw closed-form behavior: no checks, no
	// fallbacks, NaN propagates silently into samples.
	Legacy
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Legacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Defaults: single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the relative tolerance; the absolute tolerance is
	// DefaultEpsilon * max(1, max|entry|).
	DefaultEpsilon = 1e-12

	// DefaultPolicy is Strict.
	DefaultPolicy = Strict

	// DefaultCheckSymmetry leaves B == C as a caller contract.
	DefaultCheckSymmetry = false
)

const (
	panicEpsilonInvalid = "bivariate: WithEpsilon: eps must be finite, non-negative"
	panicPolicyInvalid  = "bivariate: WithPolicy: unknown policy"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps           float64
	policy        Policy
	checkSymmetry bool
}

// WithEpsilon sets the relative tolerance used by the Strict checks.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPolicy selects Strict or Legacy handling. Panics on unknown values.
func WithPolicy(p Policy) Option {
	if p != Strict && p != Legacy {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithSymmetryCheck makes constructors reject |B-C| > tol with ErrAsymmetry.
// Ignored under Legacy.
func WithSymmetryCheck() Option {
	return func(o *Options) { o.checkSymmetry = true }
}

// Epsilon returns the configured relative tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Policy returns the configured policy.
func (o Options) Policy() Policy { return o.policy }

// CheckSymmetry reports whether symmetry is enforced.
func (o Options) CheckSymmetry() bool { return o.checkSymmetry }

func defaultOptions() Options {
	return Options{
		eps:           DefaultEpsilon,
		policy:        DefaultPolicy,
		checkSymmetry: DefaultCheckSymmetry,
	}
}

// gatherOptions resolves opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
