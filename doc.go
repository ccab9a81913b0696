// Package gauss2d samples correlated two-dimensional Gaussians for
// simulation hosts: beam-spot smearing, detector-position jitter, paired
// energy perturbations and anything else drawn from N(μ, Σ) with a 2x2 Σ.
//
// 🚀 What is inside?
//
//	bivariate/ — the Sampler: closed-form eigen-decomposition of Σ,
//	             eigenbasis synthesis of two standard-normal deviates,
//	             Strict/Legacy numeric policies, seeded and gonum-backed
//	             deviate sources, empirical moments.
//
// ✨ Why?
//
//   - O(1) per sample, no allocation, decomposition computed once
//   - deterministic: inject any NormalSource, stub it in tests
//   - explicit failures for complex or negative eigenvalues instead of NaN
//
// Quick example:
//
//	s, _ := bivariate.New(bivariate.Vec2{0, 0}, bivariate.Cov2{A: 2, B: 1, C: 1, D: 2}, bivariate.NewSource(1))
//	p := s.Sample()
//
//	go get github.com/katalvlaran/gauss2d/bivariate
package gauss2d
