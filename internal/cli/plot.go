package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aouyang1/go-dmat"
	"github.com/aouyang1/go-dmat/plot"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"
)

func (c *CLI) newPlotCommand() *cobra.Command {
	var title string
	var isVector bool

	cmd := &cobra.Command{
		Use:   "plot <in> <out.html>",
		Short: "Render a matrix as a heatmap or a vector as a line chart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				title = filepath.Base(args[0])
			}

			var chart components.Charter
			if isVector {
				v, err := dmat.LoadVector(args[0])
				if err != nil {
					return fmt.Errorf("load vector: %w", err)
				}
				chart = plot.Lines(title, []string{"value"}, [][]float64{v.RawData()})
			} else {
				m, err := dmat.LoadMatrix(args[0])
				if err != nil {
					return fmt.Errorf("load matrix: %w", err)
				}
				chart = plot.HeatMap(title, m)
			}

			if err := plot.RenderFile(args[1], chart); err != nil {
				return err
			}
			slog.Info("Rendered plot", "in", args[0], "out", args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Chart title, defaults to the input file name")
	cmd.Flags().BoolVar(&isVector, "vector", false, "Treat the file as a vector")
	return cmd
}
