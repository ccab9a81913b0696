package bivariate_test

import (
	"testing"

	"github.com/katalvlaran/gauss2d/bivariate"
)

// BenchmarkNew measures construction, which includes the decomposition.
func BenchmarkNew(b *testing.B) {
	src := bivariate.NewSource(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bivariate.New(bivariate.Vec2{1, 2}, covTwoOne, src); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkSample measures one draw: two deviates plus the transform.
func BenchmarkSample(b *testing.B) {
	s := mustSampler(b, bivariate.Vec2{1, 2}, covGeneric, bivariate.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sample()
	}
}

// BenchmarkSample_Locked adds the mutex of a shared source.
func BenchmarkSample_Locked(b *testing.B) {
	src, err := bivariate.NewLockedSource(bivariate.NewSource(1))
	if err != nil {
		b.Fatalf("NewLockedSource failed: %v", err)
	}
	s := mustSampler(b, bivariate.Vec2{1, 2}, covGeneric, src)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sample()
	}
}

// BenchmarkFill amortizes over a 1024-sample buffer.
func BenchmarkFill(b *testing.B) {
	s := mustSampler(b, bivariate.Vec2{1, 2}, covGeneric, bivariate.NewGonumSource(1))
	dst := make([]bivariate.Vec2, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Fill(dst)
	}
}
