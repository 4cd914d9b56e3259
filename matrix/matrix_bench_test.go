package matrix

import (
	"math/rand"
	"testing"

	"github.com/pkg/profile"
)

var benchRes *Dense

func randMatrix(rows, cols int, density float64, seed int64) *Dense {
	r := rand.New(rand.NewSource(seed))
	m := NewLazy(rows, cols)
	for c := 0; c < cols; c++ {
		for row := 0; row < rows; row++ {
			if r.Float64() < density {
				m.Set(row, c, r.NormFloat64())
			}
		}
	}
	return m
}

func BenchmarkProd(b *testing.B) {
	m0 := randMatrix(256, 128, 1, 1)
	m1 := randMatrix(128, 64, 1, 2)
	res := &Dense{}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(b.TempDir()), profile.Quiet).Stop()
	for b.Loop() {
		res.Prod(m0, m1, false, false)
	}
	benchRes = res
}

func BenchmarkTranspose(b *testing.B) {
	m := randMatrix(512, 256, 0.05, 3)

	b.ResetTimer()
	for b.Loop() {
		benchRes = m.Transpose(-1, 0)
	}
}

func BenchmarkAddMatrix(b *testing.B) {
	m := randMatrix(512, 256, 1, 4)
	o := randMatrix(512, 256, 0.5, 5)

	b.ResetTimer()
	for b.Loop() {
		m.AddMatrix(o, 0.5)
	}
	benchRes = m
}
