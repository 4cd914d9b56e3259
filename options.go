package dmat

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/aouyang1/go-dmat/array"
	"github.com/aouyang1/go-dmat/fault"
	"github.com/aouyang1/go-dmat/matrix"
	"github.com/goccy/go-json"
)

const (
	NormalizeL2 = "l2"
	NormalizeL1 = "l1"

	BinarizeSign    = "sign"
	BinarizeNonZero = "nonzero"
)

var (
	ErrUnknownNormalize = errors.New("unknown normalization")
	ErrUnknownBinarize  = errors.New("unknown binarization")
	ErrInvalidRange     = errors.New("invalid range")
	ErrNegativeCut      = errors.New("cut threshold must be non-negative")
)

// RangeOptions clamps every element into [Min, Max].
type RangeOptions struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CalibrateOptions clamps every element into [Min, Max] and keeps values at least Eps away
// from either bound.
type CalibrateOptions struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Eps float64 `json:"eps"`
}

// TransformOptions configures the element-wise transformations applied to a matrix. Steps run
// in the order square, cut, binarize, normalize, truncate, calibrate; unset steps are skipped.
type TransformOptions struct {
	Square    bool              `json:"square"`
	Cut       float64           `json:"cut"`
	Binarize  string            `json:"binarize"`
	Normalize string            `json:"normalize"`
	Truncate  *RangeOptions     `json:"truncate"`
	Calibrate *CalibrateOptions `json:"calibrate"`
}

// NewDefaultTransformOptions returns options that leave a matrix unchanged
func NewDefaultTransformOptions() *TransformOptions {
	return &TransformOptions{}
}

// LoadTransformOptions reads json encoded options from path.
func LoadTransformOptions(path string) (*TransformOptions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read transform options, %w", err)
	}
	opt := NewDefaultTransformOptions()
	if err := json.Unmarshal(b, opt); err != nil {
		return nil, fmt.Errorf("unable to decode transform options, %w", err)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

func (o *TransformOptions) Validate() error {
	if o.Cut < 0 {
		return fmt.Errorf("cut %g, %w", o.Cut, ErrNegativeCut)
	}
	switch o.Binarize {
	case "", BinarizeSign, BinarizeNonZero:
	default:
		return fmt.Errorf("%q, %w", o.Binarize, ErrUnknownBinarize)
	}
	switch o.Normalize {
	case "", NormalizeL2, NormalizeL1:
	default:
		return fmt.Errorf("%q, %w", o.Normalize, ErrUnknownNormalize)
	}
	if o.Truncate != nil && o.Truncate.Min > o.Truncate.Max {
		return fmt.Errorf("truncate [%g,%g], %w", o.Truncate.Min, o.Truncate.Max, ErrInvalidRange)
	}
	if c := o.Calibrate; c != nil && (c.Min > c.Max || c.Eps < 0) {
		return fmt.Errorf("calibrate [%g,%g] eps %g, %w", c.Min, c.Max, c.Eps, ErrInvalidRange)
	}
	return nil
}

// Apply transforms m in place.
func (o *TransformOptions) Apply(m *matrix.Dense) (err error) {
	defer fault.Recover(&err)

	if err := o.Validate(); err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("matrix, %w", fault.ErrNullArgument)
	}

	if o.Square {
		m.Square()
	}
	if o.Cut > 0 {
		m.Cut(o.Cut)
	}
	switch o.Binarize {
	case BinarizeSign:
		m.Binarize()
	case BinarizeNonZero:
		m.Binarize1()
	}
	switch o.Normalize {
	case NormalizeL2:
		m.Normalize()
	case NormalizeL1:
		m.Normalize1()
	}

	if o.Truncate == nil && o.Calibrate == nil {
		return nil
	}
	flat := array.NewFromMatrix(m)
	if o.Truncate != nil {
		flat.Truncate(o.Truncate.Min, o.Truncate.Max)
	}
	if o.Calibrate != nil {
		flat.Calibrate0(o.Calibrate.Min, o.Calibrate.Max, o.Calibrate.Eps)
	}
	_, cols := m.Dims()
	for c := 0; c < cols; c++ {
		m.ColU(c).SetSlice(flat.GetCol(c))
	}
	return nil
}

func (o *TransformOptions) TablePrint(w io.Writer, prefix string) error {
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tbl, "%sSquare:\t%t\t\n", prefix, o.Square)
	fmt.Fprintf(tbl, "%sCut:\t%g\t\n", prefix, o.Cut)
	fmt.Fprintf(tbl, "%sBinarize:\t%s\t\n", prefix, orNone(o.Binarize))
	fmt.Fprintf(tbl, "%sNormalize:\t%s\t\n", prefix, orNone(o.Normalize))
	if o.Truncate != nil {
		fmt.Fprintf(tbl, "%sTruncate:\t[%g,%g]\t\n", prefix, o.Truncate.Min, o.Truncate.Max)
	} else {
		fmt.Fprintf(tbl, "%sTruncate:\tNone\t\n", prefix)
	}
	if o.Calibrate != nil {
		fmt.Fprintf(tbl, "%sCalibrate:\t[%g,%g] eps %g\t\n", prefix, o.Calibrate.Min, o.Calibrate.Max, o.Calibrate.Eps)
	} else {
		fmt.Fprintf(tbl, "%sCalibrate:\tNone\t\n", prefix)
	}
	return tbl.Flush()
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
