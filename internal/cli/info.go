package cli

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/aouyang1/go-dmat"
	"github.com/aouyang1/go-dmat/array"
	dmatmat "github.com/aouyang1/go-dmat/mat"
	"github.com/aouyang1/go-dmat/matrix"
	"github.com/aouyang1/go-dmat/sparse"
	"github.com/aouyang1/go-dmat/stats"
	"github.com/aouyang1/go-dmat/vector"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func (c *CLI) newInfoCommand() *cobra.Command {
	var isVector, colStats bool

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print shape, nonzero count and extremes of a matrix or vector file",
		Args:  cobra.ExactArgs(1),
		Example: `  # Summarize a binary matrix
  dmat info weights.bin

  # Summarize a json vector
  dmat info bias.json --vector

  # Include the mean and standard deviation of every column
  dmat info weights.bin --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			slog.Debug("Loading file", "path", path, "vector", isVector)
			if isVector {
				v, err := dmat.LoadVector(path)
				if err != nil {
					return fmt.Errorf("load vector: %w", err)
				}
				return printVectorInfo(cmd.OutOrStdout(), v)
			}
			m, err := dmat.LoadMatrix(path)
			if err != nil {
				return fmt.Errorf("load matrix: %w", err)
			}
			if err := printMatrixInfo(cmd.OutOrStdout(), m); err != nil {
				return err
			}
			if colStats {
				return printColumnStats(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&isVector, "vector", false, "Treat the file as a vector")
	cmd.Flags().BoolVar(&colStats, "stats", false, "Print the mean and standard deviation of every matrix column")
	return cmd
}

func printVectorInfo(w io.Writer, v *vector.Dense) error {
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	maxVal, maxRow := v.Max()
	minVal, minRow := v.Min()
	absVal, absRow, _ := v.MaxAbs()
	fmt.Fprintf(tbl, "Length:\t%d\n", v.Len())
	fmt.Fprintf(tbl, "NonZero:\t%d\n", v.NonZeroRowNum())
	fmt.Fprintf(tbl, "Sum:\t%g\n", v.Sum())
	fmt.Fprintf(tbl, "Norm:\t%g\n", vectorNorm(v))
	fmt.Fprintf(tbl, "Max:\t%g\t(row %d)\n", maxVal, maxRow)
	fmt.Fprintf(tbl, "Min:\t%g\t(row %d)\n", minVal, minRow)
	fmt.Fprintf(tbl, "MaxAbs:\t%g\t(row %d)\n", absVal, absRow)
	return tbl.Flush()
}

func printMatrixInfo(w io.Writer, m *matrix.Dense) error {
	rows, cols := m.Dims()
	sm := sparse.NewMatrix(0, 0)
	m.ToSparse(sm)
	flat := array.NewFromMatrix(m)
	maxVal, maxRow, maxCol := m.Max()

	zeroCols := 0
	for col := 0; col < cols; col++ {
		if m.IsZeroCol(col) {
			zeroCols++
		}
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tbl, "Shape:\t%dx%d\n", rows, cols)
	fmt.Fprintf(tbl, "NonZero:\t%d\n", sm.NNZ())
	fmt.Fprintf(tbl, "ZeroColumns:\t%d\n", zeroCols)
	fmt.Fprintf(tbl, "Norm:\t%g\n", matrixNorm(m))
	fmt.Fprintf(tbl, "Min:\t%g\n", flat.Min())
	fmt.Fprintf(tbl, "Max:\t%g\t(row %d, col %d)\n", maxVal, maxRow, maxCol)
	return tbl.Flush()
}

// vectorNorm is the euclidean norm of v, 0 when v is empty.
func vectorNorm(v *vector.Dense) float64 {
	if v.Len() == 0 {
		return 0
	}
	return mat.Norm(dmatmat.VecToGonum(v), 2)
}

// matrixNorm is the Frobenius norm of m, 0 when m has no elements.
func matrixNorm(m *matrix.Dense) float64 {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return 0
	}
	return mat.Norm(dmatmat.ToGonum(m), 2)
}

// printColumnStats treats every row of m as a sample and prints the per column mean and
// standard deviation.
func printColumnStats(w io.Writer, m *matrix.Dense) error {
	rows, cols := m.Dims()
	if rows == 0 {
		return nil
	}
	flat := array.NewFromMatrix(m)
	samples := make([][]float64, rows)
	for r := range samples {
		samples[r] = flat.GetRow(r)
	}
	mean, sdev, err := stats.RowMeanSdev(samples)
	if err != nil {
		return fmt.Errorf("column stats: %w", err)
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tbl, "Column\tMean\tSdev\n")
	for c := 0; c < cols; c++ {
		fmt.Fprintf(tbl, "%d\t%g\t%g\n", c, mean[c], sdev[c])
	}
	return tbl.Flush()
}
