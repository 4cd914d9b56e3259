package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSdev(t *testing.T) {
	testData := map[string]struct {
		mean     []float64
		meanSq   []float64
		err      error
		expected []float64
	}{
		"simple": {
			mean:     []float64{1, 0},
			meanSq:   []float64{5, 9},
			expected: []float64{2, 3},
		},
		"rounding below zero clamps": {
			mean:     []float64{0.1},
			meanSq:   []float64{0.1*0.1 - 1e-18},
			expected: []float64{0},
		},
		"length mismatch": {
			mean:   []float64{1},
			meanSq: []float64{1, 2},
			err:    ErrLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if td.err != nil {
					err, ok := r.(error)
					require.True(t, ok, "panic is not an error")
					assert.ErrorIs(t, err, td.err)
					return
				}
				assert.Nil(t, r)
			}()
			res := Sdev(nil, td.mean, td.meanSq)
			assert.InDeltaSlice(t, td.expected, res, 1e-12)
		})
	}
}

func TestRowMeanSdev(t *testing.T) {
	samples := [][]float64{
		{1, 2, 3},
		{3, 2, 1},
		{5, 2, 2},
	}
	mean, sdev, err := RowMeanSdev(samples)
	require.Nil(t, err)

	for i := 0; i < 3; i++ {
		row := []float64{samples[0][i], samples[1][i], samples[2][i]}
		assert.InDelta(t, stat.Mean(row, nil), mean[i], 1e-12)
		assert.InDelta(t, stat.PopStdDev(row, nil), sdev[i], 1e-12)
	}

	_, _, err = RowMeanSdev(nil)
	assert.ErrorIs(t, err, ErrNoSamples)

	_, _, err = RowMeanSdev([][]float64{{1}, {1, 2}})
	assert.ErrorIs(t, err, ErrSampleLength)
}
