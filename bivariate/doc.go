// Package bivariate draws correlated 2D Gaussian samples from a mean vector
// and a 2x2 covariance matrix via a closed-form eigen-decomposition.
//
// 🚀 How it works
//
//	For a covariance M = |a b; c d| the eigenvalues are
//	  l1,2 = (a+d)/2 ± sqrt((a+d)²/4 - a·d + b·c)
//	with unit eigenvectors e1, e2. Two independent standard-normal deviates
//	v1, v2 are scaled by sqrt(l) along each eigenvector and summed
//	(eigenbasis synthesis), then shifted by the mean:
//	  y = √l1·e1·v1 + √l2·e2·v2 + μ
//
// ✨ Key features:
//   - decomposition computed once at construction, immutable afterwards
//   - fixed-size Vec2 / Cov2 value types; slice entry point for host layers
//   - injectable NormalSource (math/rand, math/rand/v2, gonum distuv, stubs)
//   - Strict policy: complex or negative eigenvalues and vanishing
//     eigenvector denominators are rejected with sentinel errors
//   - Legacy policy: raw closed form, NaN propagates silently
//
// ⚙️ Usage:
//
//	s, err := bivariate.New(
//	  bivariate.Vec2{10, -3},
//	  bivariate.Cov2{A: 2, B: 1, C: 1, D: 2},
//	  bivariate.NewSource(42),
//	)
//	if err != nil {
//	  // ErrDegenerateMatrix, ErrNotPositiveSemiDefinite, ...
//	}
//	p := s.Sample()
//
// Concurrency:
//
//	A Sampler has no mutable state; it is as goroutine-safe as its source.
//	Wrap a shared source in LockedSource, or give each worker DeriveSource(seed, id).
//
// Performance:
//
//   - New:    O(1)
//   - Sample: O(1), two deviates, no allocation
package bivariate
