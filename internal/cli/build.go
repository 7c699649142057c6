package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// newBuildCmd returns the build command: construct a tiling and print
// its connection table, one "output input" pair per line.
func newBuildCmd() *cobra.Command {
	var (
		flags   geometryFlags
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a routing table from tiling geometry",
		Example: `  switchgrid build --kind rect --grid 6x4 --field 2x2 --spacing 2x2
  switchgrid build --kind doublerhomb --grid 4x4 --diag 2
  switchgrid build --config geometry.toml --out table.txt`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := flags.config()
			if err != nil {
				return err
			}
			logger.Debug("building tiling", "kind", cfg.Kind, "grid", cfg.Grid, "field", cfg.Field)

			l, err := build(cfg)
			if err != nil {
				return err
			}
			geo, _ := l.board.Geometry()
			logger.Info("tiling built",
				"kind", l.kind,
				"input_dim", l.board.InputDim(),
				"output_dim", l.board.OutputDim(),
				"output_channels", geo.OutputChannels,
				"invertible", l.board.IsInvertible())

			w := io.Writer(os.Stdout)
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return writeTable(w, l.board.Connections())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&outPath, "out", "", "write the table to a file instead of stdout")

	return cmd
}

// writeTable writes "output input" pairs, one per line.
func writeTable(w io.Writer, conns []int) error {
	bw := bufio.NewWriter(w)
	for out, in := range conns {
		if _, err := fmt.Fprintf(bw, "%d %d\n", out, in); err != nil {
			return err
		}
	}

	return bw.Flush()
}
