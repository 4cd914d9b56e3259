package cli

import (
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-dmat"
	"github.com/aouyang1/go-dmat/array"
	"github.com/aouyang1/go-dmat/fault"
	"github.com/spf13/cobra"
)

func (c *CLI) newConcatCommand() *cobra.Command {
	var axis string

	cmd := &cobra.Command{
		Use:   "concat <a> <b> <out>",
		Short: "Stack two matrices by rows or by columns",
		Args:  cobra.ExactArgs(3),
		Example: `  # Append the rows of b below a
  dmat concat a.bin b.bin out.bin --axis rows`,
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

			var res *array.Array
			switch axis {
			case "rows":
				res = array.Append(array.NewFromMatrix(a), array.NewFromMatrix(b))
			case "cols":
				res = array.Extend(array.NewFromMatrix(a), array.NewFromMatrix(b))
			default:
				return fmt.Errorf("axis %q, %w", axis, fault.ErrInvalidArgument)
			}

			out := res.ToMatrix()
			if err := dmat.SaveMatrix(args[2], out); err != nil {
				return fmt.Errorf("save matrix: %w", err)
			}
			rows, cols := out.Dims()
			slog.Info("Concatenated matrices", "axis", axis, "out", args[2], "rows", rows, "cols", cols)
			return nil
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "rows", "Stack along rows or cols")
	return cmd
}
