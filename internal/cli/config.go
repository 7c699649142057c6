package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/switchgrid/switchboard"
	"github.com/katalvlaran/switchgrid/tiling"
)

// Config is the TOML representation of a tiling geometry.
//
// Example:
//
//	kind = "doublerect"
//	channel_dim = 1
//
//	[grid]
//	x = 6
//	y = 4
//
//	[field]
//	x = 2
//	y = 2
type Config struct {
	// Kind selects the generator: "rect", "doublerect", or "doublerhomb".
	Kind       string `toml:"kind"`
	ChannelDim int    `toml:"channel_dim"`
	// Diag is the diamond edge size (doublerhomb only).
	Diag        int  `toml:"diag"`
	IgnoreCover bool `toml:"ignore_cover"`

	Grid    Pair `toml:"grid"`
	Field   Pair `toml:"field"`
	Spacing Pair `toml:"spacing"`
}

// Pair is an x/y parameter pair.
type Pair struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// loadConfig reads a TOML geometry file.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return cfg, nil
}

// parsePair parses a "WxH" flag value such as "6x4".
func parsePair(s string) (Pair, error) {
	lo, hi, ok := strings.Cut(s, "x")
	if !ok {
		return Pair{}, fmt.Errorf("expected WxH, got %q", s)
	}
	x, err := strconv.Atoi(lo)
	if err != nil {
		return Pair{}, fmt.Errorf("expected WxH, got %q", s)
	}
	y, err := strconv.Atoi(hi)
	if err != nil {
		return Pair{}, fmt.Errorf("expected WxH, got %q", s)
	}

	return Pair{X: x, Y: y}, nil
}

// layout is the uniform result of building any tiling kind: the routing
// switchboard plus the grid shapes the cover renderer needs.
type layout struct {
	board *switchboard.Switchboard
	kind  string
	// grid is the input channel grid (rect and doublerect kinds).
	grid Pair
	// longGrid/shortGrid describe the rhombic lattice (doublerhomb).
	longGrid, shortGrid Pair
}

// build runs the generator selected by cfg.Kind.
func build(cfg Config) (*layout, error) {
	switch cfg.Kind {
	case "", "rect":
		l, err := tiling.Rectangular(tiling.RectConfig{
			XInChannels: cfg.Grid.X, YInChannels: cfg.Grid.Y,
			XFieldChannels: cfg.Field.X, YFieldChannels: cfg.Field.Y,
			XFieldSpacing: cfg.Spacing.X, YFieldSpacing: cfg.Spacing.Y,
			InChannelDim: cfg.ChannelDim,
			IgnoreCover:  cfg.IgnoreCover,
		})
		if err != nil {
			return nil, err
		}

		return &layout{board: l.Switchboard, kind: "rect", grid: cfg.Grid}, nil
	case "doublerect":
		l, err := tiling.DoubleRect(tiling.DoubleRectConfig{
			XInChannels: cfg.Grid.X, YInChannels: cfg.Grid.Y,
			XFieldChannels: cfg.Field.X, YFieldChannels: cfg.Field.Y,
			InChannelDim: cfg.ChannelDim,
			IgnoreCover:  cfg.IgnoreCover,
		})
		if err != nil {
			return nil, err
		}

		return &layout{board: l.Switchboard, kind: "doublerect", grid: cfg.Grid}, nil
	case "doublerhomb":
		l, err := tiling.DoubleRhomb(tiling.DoubleRhombConfig{
			XLongInChannels: cfg.Grid.X, YLongInChannels: cfg.Grid.Y,
			DiagFieldChannels: cfg.Diag,
			InChannelDim:      cfg.ChannelDim,
		})
		if err != nil {
			return nil, err
		}

		return &layout{
			board:     l.Switchboard,
			kind:      "doublerhomb",
			longGrid:  cfg.Grid,
			shortGrid: Pair{X: cfg.Grid.X - 1, Y: cfg.Grid.Y - 1},
		}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q (want rect, doublerect, or doublerhomb)", cfg.Kind)
	}
}
