// Command slipview opens a window with a list of generated rows so gesture
// tuning can be tried by hand. Configuration is read with slippable.LoadConfig.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/slippable"
)

type options struct {
	configPath string
	rows       int
	rowHeight  float64
	width      int
	height     int
	script     string
	shotDir    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "slipview",
		Short:        "Try swipe and reorder gestures on a generated list",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "TOML gesture config file")
	f.IntVar(&opts.rows, "rows", 30, "number of rows")
	f.Float64Var(&opts.rowHeight, "row-height", 56, "row height in pixels")
	f.IntVar(&opts.width, "width", 360, "window width")
	f.IntVar(&opts.height, "height", 640, "window height")
	f.StringVar(&opts.script, "script", "", "JSON gesture script to replay")
	f.StringVar(&opts.shotDir, "screenshots", "screenshots", "directory for script screenshots")
	f.BoolVar(&opts.debug, "debug", false, "log gesture events and verify reorder bookkeeping")
	return cmd
}

func run(opts *options) error {
	if opts.rows < 1 {
		return fmt.Errorf("--rows must be at least 1, got %d", opts.rows)
	}
	cfg, err := slippable.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	level := zerolog.InfoLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	list := slippable.NewList(slippable.Rect{Width: float64(opts.width), Height: float64(opts.height)}, cfg)
	list.SetLogger(logger)
	list.SetDebugMode(opts.debug)
	list.ScreenshotDir = opts.shotDir
	list.ClearColor = slippable.Color{R: 0.1, G: 0.1, B: 0.12, A: 1}

	for i := 0; i < opts.rows; i++ {
		row, err := list.AddRow(fmt.Sprintf("row %d", i), opts.rowHeight)
		if err != nil {
			return err
		}
		shade := 0.55 + 0.35*float64(i%2)
		row.Color = slippable.Color{R: shade, G: shade, B: shade + 0.05, A: 1}
	}

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := slippable.LoadGestureScript(data)
		if err != nil {
			return err
		}
		list.SetTestRunner(runner)
	}

	list.OnDrawRow = func(dst *ebiten.Image, row *slippable.Row, rect slippable.Rect) {
		ebitenutil.DebugPrintAt(dst, row.Name(), int(rect.X)+12, int(rect.Y+rect.Height/2)-8)
	}
	list.OnOutcome(func(out slippable.Outcome) {
		switch out.Kind {
		case slippable.OutcomeRemoved:
			logger.Info().Str("row", out.Row.Name()).Stringer("direction", out.Direction).Msg("swipe committed")
		case slippable.OutcomeReordered:
			logger.Info().Str("row", out.Row.Name()).Int("old", out.OldIndex).Int("new", out.NewIndex).Msg("reordered")
		}
	})

	return slippable.Run(list, slippable.RunConfig{
		Title:   "slipview",
		Width:   opts.width,
		Height:  opts.height,
		ShowFPS: opts.debug,
	})
}
