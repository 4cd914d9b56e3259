package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-dmat"
	"github.com/aouyang1/go-dmat/array"
	"github.com/aouyang1/go-dmat/fault"
	dmatmat "github.com/aouyang1/go-dmat/mat"
	"github.com/aouyang1/go-dmat/matrix"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var ErrProdMismatch = errors.New("product differs from gonum")

func (c *CLI) newProdCommand() *cobra.Command {
	var check bool
	var tol float64

	cmd := &cobra.Command{
		Use:   "prod <a> <b> <out>",
		Short: "Multiply two matrices",
		Args:  cobra.ExactArgs(3),
		Example: `  # Multiply and verify the result against gonum
  dmat prod a.bin b.bin ab.bin --check`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer fault.Recover(&err)

			a, err := dmat.LoadMatrix(args[0])
			if err != nil {
				return fmt.Errorf("load matrix: %w", err)
			}
			b, err := dmat.LoadMatrix(args[1])
			if err != nil {
				return fmt.Errorf("load matrix: %w", err)
			}

			res := &matrix.Dense{}
			res.Prod(a, b, false, false)
			if check {
				dev := gonumDeviation(a, b, res)
				slog.Debug("Checked product against gonum", "deviation", dev)
				if dev > tol {
					return fmt.Errorf("max deviation %g above %g, %w", dev, tol, ErrProdMismatch)
				}
			}
			if err := dmat.SaveMatrix(args[2], res); err != nil {
				return fmt.Errorf("save matrix: %w", err)
			}
			rows, cols := res.Dims()
			slog.Info("Multiplied matrices", "out", args[2], "rows", rows, "cols", cols)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Recompute the product with gonum and compare")
	cmd.Flags().Float64Var(&tol, "tol", 1e-9, "Largest absolute element difference accepted by --check")
	return cmd
}

// gonumDeviation returns the largest absolute element difference between res and a*b computed
// by gonum. Products without elements have nothing to compare.
func gonumDeviation(a, b, res *matrix.Dense) float64 {
	rows, inner := a.Dims()
	_, cols := b.Dims()
	if rows == 0 || inner == 0 || cols == 0 {
		return 0
	}
	var g mat.Dense
	g.Mul(dmatmat.ToGonum(a), dmatmat.ToGonum(b))

	diff := dmatmat.FromGonum(&g)
	diff.AddMatrix(res, -1)
	flat := array.NewFromMatrix(diff)
	return max(flat.Max(), -flat.Min())
}
