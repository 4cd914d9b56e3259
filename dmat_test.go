package dmat

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aouyang1/go-dmat/fault"
	"github.com/aouyang1/go-dmat/matrix"
	"github.com/aouyang1/go-dmat/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	testData := map[string]struct {
		path     string
		expected Format
	}{
		"json":       {"m.json", FormatJSON},
		"upper json": {"dir/M.JSON", FormatJSON},
		"binary":     {"m.bin", FormatBinary},
		"no ext":     {"m", FormatBinary},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, FormatFromPath(td.path))
		})
	}
}

func TestVectorFiles(t *testing.T) {
	dir := t.TempDir()
	v := vector.NewFromSlice([]float64{0, 3, 0, -4})

	for _, name := range []string{"v.bin", "v.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.Nil(t, SaveVector(path, v))

			res, err := LoadVector(path)
			require.Nil(t, err)
			assert.Equal(t, v.RawData(), res.RawData())
		})
	}

	err := SaveVector(filepath.Join(dir, "nil.bin"), nil)
	assert.ErrorIs(t, err, fault.ErrNullArgument)
}

func TestMatrixFiles(t *testing.T) {
	dir := t.TempDir()
	m := matrix.NewLazy(3, 2)
	m.Set(2, 1, 1.25)
	m.Set(0, 0, -7)

	for _, name := range []string{"m.bin", "m.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.Nil(t, SaveMatrix(path, m))

			res, err := LoadMatrix(path)
			require.Nil(t, err)
			rows, cols := res.Dims()
			assert.Equal(t, 3, rows)
			assert.Equal(t, 2, cols)
			assert.Equal(t, -7.0, res.At(0, 0))
			assert.Equal(t, 1.25, res.At(2, 1))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMatrix(filepath.Join(dir, "missing.bin"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	truncated := filepath.Join(dir, "truncated.bin")
	require.Nil(t, os.WriteFile(truncated, []byte{2, 0, 0, 0, 1}, 0o644))
	_, err = LoadMatrix(truncated)
	assert.NotNil(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.Nil(t, os.WriteFile(bad, []byte(`{"rows":2,"cols":1,"columns":[[1]]}`), 0o644))
	_, err = LoadMatrix(bad)
	assert.NotNil(t, err)
}

func TestTransformOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt *TransformOptions
		err error
	}{
		"default": {
			opt: NewDefaultTransformOptions(),
		},
		"negative cut": {
			opt: &TransformOptions{Cut: -1},
			err: ErrNegativeCut,
		},
		"unknown binarize": {
			opt: &TransformOptions{Binarize: "round"},
			err: ErrUnknownBinarize,
		},
		"unknown normalize": {
			opt: &TransformOptions{Normalize: "max"},
			err: ErrUnknownNormalize,
		},
		"inverted truncate": {
			opt: &TransformOptions{Truncate: &RangeOptions{Min: 1, Max: 0}},
			err: ErrInvalidRange,
		},
		"negative eps": {
			opt: &TransformOptions{Calibrate: &CalibrateOptions{Min: 0, Max: 1, Eps: -1}},
			err: ErrInvalidRange,
		},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := td.opt.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			assert.Nil(t, err)
		})
	}
}

func TestTransformOptionsApply(t *testing.T) {
	testData := map[string]struct {
		opt      *TransformOptions
		expected [][]float64
	}{
		"default leaves matrix unchanged": {
			opt:      NewDefaultTransformOptions(),
			expected: [][]float64{{3, -4}, {0, 0.5}},
		},
		"cut then binarize": {
			opt:      &TransformOptions{Cut: 1, Binarize: BinarizeSign},
			expected: [][]float64{{1, -1}, {0, 0}},
		},
		"square then l1": {
			opt:      &TransformOptions{Square: true, Normalize: NormalizeL1},
			expected: [][]float64{{9.0 / 25, 16.0 / 25}, {0, 1}},
		},
		"l2 then truncate": {
			opt:      &TransformOptions{Normalize: NormalizeL2, Truncate: &RangeOptions{Min: 0, Max: 0.5}},
			expected: [][]float64{{0.5, 0}, {0, 0.5}},
		},
		"calibrate": {
			opt:      &TransformOptions{Calibrate: &CalibrateOptions{Min: 0, Max: 1, Eps: 0.1}},
			expected: [][]float64{{0.95, 0.05}, {0.05, 0.5}},
		},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			m := matrix.NewLazy(2, 2)
			m.Set(0, 0, 3)
			m.Set(1, 0, -4)
			m.Set(1, 1, 0.5)

			require.Nil(t, td.opt.Apply(m))
			for c, col := range td.expected {
				assert.InDeltaSlice(t, col, m.Col(c).RawData(), 1e-12, "column %d", c)
			}
		})
	}

	err := (&TransformOptions{Normalize: "max"}).Apply(matrix.New(1, 1))
	assert.ErrorIs(t, err, ErrUnknownNormalize)
	err = NewDefaultTransformOptions().Apply(nil)
	assert.ErrorIs(t, err, fault.ErrNullArgument)
}

func TestLoadTransformOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opt.json")
	require.Nil(t, os.WriteFile(path, []byte(`{"cut":0.5,"normalize":"l1","truncate":{"min":-1,"max":1}}`), 0o644))

	opt, err := LoadTransformOptions(path)
	require.Nil(t, err)
	assert.Equal(t, 0.5, opt.Cut)
	assert.Equal(t, NormalizeL1, opt.Normalize)
	require.NotNil(t, opt.Truncate)
	assert.Equal(t, 1.0, opt.Truncate.Max)
	assert.Nil(t, opt.Calibrate)

	var buf bytes.Buffer
	require.Nil(t, opt.TablePrint(&buf, ""))
	assert.Contains(t, buf.String(), "Normalize:")
	assert.Contains(t, buf.String(), "[-1,1]")

	bad := filepath.Join(dir, "bad.json")
	require.Nil(t, os.WriteFile(bad, []byte(`{"binarize":"x"}`), 0o644))
	_, err = LoadTransformOptions(bad)
	assert.ErrorIs(t, err, ErrUnknownBinarize)
}
