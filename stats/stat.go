package stats

import (
	"errors"
	"math"

	"github.com/aouyang1/go-dmat/floatsunrolled"
)

var (
	ErrLenMismatch  = errors.New("mean and mean of squares have different lengths")
	ErrNoSamples    = errors.New("need at least 1 sample")
	ErrSampleLength = errors.New("some sample length is not consistent")
)

// Sdev computes the standard deviation sqrt(E[x^2] - E[x]^2) per element from the mean and
// the mean of squares. Rounding can push the difference slightly below zero; such values are
// reported as 0. The result is written to dst, allocated when nil.
func Sdev(dst, mean, meanSq []float64) []float64 {
	if len(mean) != len(meanSq) {
		panic(ErrLenMismatch)
	}
	dst = floatsunrolled.MulTo(dst, mean, mean)
	floatsunrolled.SubTo(dst, meanSq, dst)
	for i, v := range dst {
		if v <= 0 {
			dst[i] = 0
			continue
		}
		dst[i] = math.Sqrt(v)
	}
	return dst
}

// RowMeanSdev returns the mean and standard deviation per element across samples, each of
// which must have the same length.
func RowMeanSdev(samples [][]float64) ([]float64, []float64, error) {
	if len(samples) == 0 {
		return nil, nil, ErrNoSamples
	}
	m := len(samples[0])
	mean := make([]float64, m)
	meanSq := make([]float64, m)
	sq := make([]float64, m)
	for _, s := range samples {
		if len(s) != m {
			return nil, nil, ErrSampleLength
		}
		floatsunrolled.Add(mean, s)
		floatsunrolled.Add(meanSq, floatsunrolled.MulTo(sq, s, s))
	}
	n := 1.0 / float64(len(samples))
	floatsunrolled.ScaleTo(mean, n, mean)
	floatsunrolled.ScaleTo(meanSq, n, meanSq)
	return mean, Sdev(nil, mean, meanSq), nil
}
