package cli

import (
	"fmt"

	"github.com/aouyang1/go-dmat"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func (c *CLI) newShowCommand() *cobra.Command {
	var isVector bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a matrix or vector file as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var obj any
			if isVector {
				v, err := dmat.LoadVector(args[0])
				if err != nil {
					return fmt.Errorf("load vector: %w", err)
				}
				obj = v
			} else {
				m, err := dmat.LoadMatrix(args[0])
				if err != nil {
					return fmt.Errorf("load matrix: %w", err)
				}
				obj = m
			}

			b, err := json.MarshalIndent(obj, "", "  ")
			if err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().BoolVar(&isVector, "vector", false, "Treat the file as a vector")
	return cmd
}
