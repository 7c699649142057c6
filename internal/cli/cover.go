package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Coverage map styles: uncovered cells should jump out.
var (
	styleUncovered = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // red
	styleSingle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray
	styleDouble    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))           // green
	styleMany      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))           // yellow
)

// newCoverCmd returns the cover command: render how many fields cover
// each input channel of the grid.
func newCoverCmd() *cobra.Command {
	var flags geometryFlags

	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Render the per-channel field coverage of a tiling",
		Example: `  switchgrid cover --kind rect --grid 9x9 --field 3x3 --spacing 3x3
  switchgrid cover --kind doublerect --grid 6x4 --field 2x2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := flags.config()
			if err != nil {
				return err
			}
			l, err := build(cfg)
			if err != nil {
				return err
			}

			hits := channelHits(l)
			uncovered := 0
			for _, n := range hits {
				if n == 0 {
					uncovered++
				}
			}
			logger.Info("coverage computed",
				"kind", l.kind,
				"input_channels", len(hits),
				"uncovered", uncovered)

			out := cmd.OutOrStdout()
			switch l.kind {
			case "doublerhomb":
				fmt.Fprintln(out, "long rows:")
				fmt.Fprint(out, renderGrid(hits[:l.longGrid.X*l.longGrid.Y], l.longGrid))
				fmt.Fprintln(out, "short rows:")
				fmt.Fprint(out, renderGrid(hits[l.longGrid.X*l.longGrid.Y:], l.shortGrid))
			default:
				fmt.Fprint(out, renderGrid(hits, l.grid))
			}

			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// channelHits counts, per input channel, how many output fields read it.
func channelHits(l *layout) []int {
	geo, _ := l.board.Geometry()
	hits := make([]int, l.board.InputDim()/geo.InChannelDim)
	for _, slot := range l.board.Connections() {
		hits[slot/geo.InChannelDim]++
	}
	// Every covered channel contributes InChannelDim slot entries.
	for i := range hits {
		hits[i] /= geo.InChannelDim
	}

	return hits
}

// renderGrid renders per-channel cover counts as one styled digit per
// cell, row by row.
func renderGrid(hits []int, grid Pair) string {
	var sb strings.Builder
	for y := 0; y < grid.Y; y++ {
		for x := 0; x < grid.X; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(renderCell(hits[y*grid.X+x]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// renderCell styles a single cover count.
func renderCell(n int) string {
	cell := fmt.Sprintf("%d", n)
	if n > 9 {
		cell = "+"
	}
	switch {
	case n == 0:
		return styleUncovered.Render(cell)
	case n == 1:
		return styleSingle.Render(cell)
	case n == 2:
		return styleDouble.Render(cell)
	default:
		return styleMany.Render(cell)
	}
}
