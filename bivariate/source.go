// SPDX-License-Identifier: MIT

// Package bivariate - standard-normal sources.
//
// This file centralizes deterministic random generation for samplers.
//
// Goals:
//   - Determinism: same seed ⇒ identical deviate streams across platforms.
//   - Encapsulation: no time-based seeding hidden anywhere.
//   - Concurrency: *rand.Rand is NOT goroutine-safe. Use DeriveSource for
//     per-worker streams, or LockedSource to share one stream.
package bivariate

import (
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// goldenGamma is the SplitMix64 increment.
const goldenGamma uint64 = 0x9e3779b97f4a7c15

// NormalFunc adapts a plain function to NormalSource.
type NormalFunc func() float64

// NormFloat64 calls f.
func (f NormalFunc) NormFloat64() float64 { return f() }

// Shoot draws one deviate from N(mean, sigma²): src.NormFloat64()·sigma + mean.
func Shoot(src NormalSource, mean, sigma float64) float64 {
	return src.NormFloat64()*sigma + mean
}

// NewSource returns a deterministic math/rand/v2 generator backed by PCG.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewSource(seed int64) *rand.Rand {
	return rand.New(newPCG(seed))
}

// DeriveSource returns an independent deterministic stream for (seed, stream).
// Use it at setup time to hand each worker its own source.
func DeriveSource(seed int64, stream uint64) *rand.Rand {
	return rand.New(newPCG(deriveSeed(seedOrDefault(seed), stream)))
}

// NewGonumSource returns a NormalSource drawing from gonum's
// distuv.Normal{Mu: 0, Sigma: 1} over the same seeded PCG as NewSource.
func NewGonumSource(seed int64) NormalSource {
	d := distuv.Normal{Mu: 0, Sigma: 1, Src: newPCG(seed)}

	return NormalFunc(d.Rand)
}

func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return DefaultSeed
	}

	return seed
}

func newPCG(seed int64) *rand.PCG {
	u := uint64(seedOrDefault(seed))

	return rand.NewPCG(mix64(u), mix64(u+goldenGamma))
}

// deriveSeed mixes a parent seed and a stream id into a new seed.
func deriveSeed(parent int64, stream uint64) int64 {
	return int64(mix64(uint64(parent) ^ (stream + goldenGamma)))
}

// mix64 is the SplitMix64 finalizer.
func mix64(x uint64) uint64 {
	x += goldenGamma
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// pairSource is implemented by sources that can hand out two deviates
// atomically, so that concurrent Samplers never interleave v1 and v2.
type pairSource interface {
	NormPair() (float64, float64)
}

// LockedSource serializes access to a shared NormalSource.
type LockedSource struct {
	mu  sync.Mutex
	src NormalSource
}

// NewLockedSource wraps src. A nil src is rejected with ErrNilSource.
func NewLockedSource(src NormalSource) (*LockedSource, error) {
	if src == nil {
		return nil, bivariateErrorf(opLocked, ErrNilSource)
	}

	return &LockedSource{src: src}, nil
}

// NormFloat64 draws one deviate under the lock.
func (l *LockedSource) NormFloat64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.src.NormFloat64()
}

// NormPair draws two consecutive deviates under a single lock acquisition.
func (l *LockedSource) NormPair() (float64, float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v1 := l.src.NormFloat64()
	v2 := l.src.NormFloat64()

	return v1, v2
}
