// Package cli implements the switchgrid command-line interface.
//
// The CLI builds routing tables from geometry flags or TOML files and
// inspects them:
//   - build: construct a tiling and print its connection table
//   - cover: render the input-grid coverage as a colored ASCII map
//
// All commands support --verbose (-v) for debug-level logging; loggers
// travel through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the switchgrid CLI under ctx and returns an error if any
// command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "switchgrid",
		Short:        "switchgrid builds static routing tables from grid geometry",
		Long:         `switchgrid turns 2D tiling geometry (rectangular, double-cover, or diamond fields) into flat connection tables and renders their input coverage.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("switchgrid %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newCoverCmd())

	return root.ExecuteContext(ctx)
}

// geometryFlags holds the flag set shared by build and cover.
type geometryFlags struct {
	kind        string
	grid        string
	field       string
	spacing     string
	diag        int
	channelDim  int
	ignoreCover bool
	configPath  string
}

// register adds the geometry flags to cmd.
func (g *geometryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.kind, "kind", "rect", "tiling kind: rect, doublerect, or doublerhomb")
	cmd.Flags().StringVar(&g.grid, "grid", "", "input grid size as WxH (long-row grid for doublerhomb)")
	cmd.Flags().StringVar(&g.field, "field", "", "field size as WxH")
	cmd.Flags().StringVar(&g.spacing, "spacing", "1x1", "field spacing as WxH (rect only)")
	cmd.Flags().IntVar(&g.diag, "diag", 0, "diamond edge size (doublerhomb only)")
	cmd.Flags().IntVar(&g.channelDim, "channel-dim", 1, "slots per input channel")
	cmd.Flags().BoolVar(&g.ignoreCover, "ignore-cover", false, "accept tilings that leave border channels unrouted")
	cmd.Flags().StringVar(&g.configPath, "config", "", "TOML geometry file (overrides geometry flags)")
}

// config resolves the flags (or the TOML file, when given) to a Config.
func (g *geometryFlags) config() (Config, error) {
	if g.configPath != "" {
		return loadConfig(g.configPath)
	}
	cfg := Config{
		Kind:        g.kind,
		Diag:        g.diag,
		ChannelDim:  g.channelDim,
		IgnoreCover: g.ignoreCover,
	}
	var err error
	if cfg.Grid, err = parsePair(g.grid); err != nil {
		return Config{}, fmt.Errorf("--grid: %w", err)
	}
	if g.kind != "doublerhomb" {
		if cfg.Field, err = parsePair(g.field); err != nil {
			return Config{}, fmt.Errorf("--field: %w", err)
		}
	}
	if g.kind == "rect" || g.kind == "" {
		if cfg.Spacing, err = parsePair(g.spacing); err != nil {
			return Config{}, fmt.Errorf("--spacing: %w", err)
		}
	}

	return cfg, nil
}
