package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aouyang1/go-dmat"
	"github.com/aouyang1/go-dmat/fault"
	"github.com/spf13/cobra"
)

func (c *CLI) newTransformCommand() *cobra.Command {
	var optionsPath string

	cmd := &cobra.Command{
		Use:   "transform <in> <out>",
		Short: "Apply element-wise transformations configured in a json file to a matrix",
		Args:  cobra.ExactArgs(2),
		Example: `  # Normalize every column and clamp into [0, 1]
  echo '{"normalize":"l2","truncate":{"min":0,"max":1}}' > opt.json
  dmat transform weights.bin normalized.bin --options opt.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := dmat.NewDefaultTransformOptions()
			if optionsPath != "" {
				var err error
				opt, err = dmat.LoadTransformOptions(optionsPath)
				if err != nil {
					return err
				}
			}
			if c.verbose {
				if err := opt.TablePrint(os.Stderr, "  "); err != nil {
					return err
				}
			}

			m, err := dmat.LoadMatrix(args[0])
			if err != nil {
				return fmt.Errorf("load matrix: %w", err)
			}
			if err := opt.Apply(m); err != nil {
				return fmt.Errorf("transform: %w", err)
			}
			if err := dmat.SaveMatrix(args[1], m); err != nil {
				return fmt.Errorf("save matrix: %w", err)
			}
			rows, cols := m.Dims()
			slog.Info("Transformed matrix", "in", args[0], "out", args[1], "rows", rows, "cols", cols)
			return nil
		},
	}
	cmd.Flags().StringVar(&optionsPath, "options", "", "JSON transform options file")
	return cmd
}

func (c *CLI) newTransposeCommand() *cobra.Command {
	var begin, end int

	cmd := &cobra.Command{
		Use:   "transpose <in> <out>",
		Short: "Transpose a matrix or a range of its columns",
		Long: `Transpose a matrix or the column range [begin, end) of it. Only nonzero values are
carried over, so all zero rows of the input come back as unallocated columns.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer fault.Recover(&err)

			m, err := dmat.LoadMatrix(args[0])
			if err != nil {
				return fmt.Errorf("load matrix: %w", err)
			}
			tr := m.Transpose(begin, end)
			if err := dmat.SaveMatrix(args[1], tr); err != nil {
				return fmt.Errorf("save matrix: %w", err)
			}
			rows, cols := tr.Dims()
			slog.Info("Transposed matrix", "in", args[0], "out", args[1], "rows", rows, "cols", cols)
			return nil
		},
	}
	cmd.Flags().IntVar(&begin, "begin", -1, "First column to transpose, negative selects every column")
	cmd.Flags().IntVar(&end, "end", 0, "Column after the last one to transpose")
	return cmd
}
