package slippable

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/mapstructure"
)

// EnvPrefix is the environment variable prefix read by LoadConfig.
// SLIPPABLE_HOLD_TIMEOUT=750ms overrides hold_timeout, and so on.
const EnvPrefix = "SLIPPABLE_"

// GestureConfig holds the per-row gesture tuning. Every row owns a copy; the
// list hands out DefaultGestureConfig (or the config passed to NewList) to rows
// it creates.
type GestureConfig struct {
	// HoldTimeout is how long the pointer must stay nearly still before an
	// undecided press becomes a reorder.
	HoldTimeout time.Duration `koanf:"hold_timeout"`

	// SwipeStartDistance is the horizontal distance in pixels an undecided
	// press must exceed to become a swipe.
	SwipeStartDistance float64 `koanf:"swipe_start_distance"`

	// ReorderSlopX and ReorderSlopY bound how far the pointer may wander
	// before the hold timer fires for the press to still become a reorder.
	ReorderSlopX float64 `koanf:"reorder_slop_x"`
	ReorderSlopY float64 `koanf:"reorder_slop_y"`

	// Commit thresholds as a fraction of row width.
	SwipeLeftThreshold  float64 `koanf:"swipe_left_threshold"`
	SwipeRightThreshold float64 `koanf:"swipe_right_threshold"`

	// Percentage of row width over which a panel's opacity ramps to 1.
	SwipeLeftContentPercentToFullOpacity  float64 `koanf:"swipe_left_content_percent_to_full_opacity"`
	SwipeRightContentPercentToFullOpacity float64 `koanf:"swipe_right_content_percent_to_full_opacity"`

	// Gap is the vertical space in pixels below the row.
	Gap float64 `koanf:"gap"`

	BlockSwipe   bool `koanf:"block_swipe"`
	BlockReorder bool `koanf:"block_reorder"`

	SwipeLeftOverThresholdAnimation  ActionAnimation `koanf:"swipe_left_over_threshold_animation"`
	SwipeRightOverThresholdAnimation ActionAnimation `koanf:"swipe_right_over_threshold_animation"`

	// AutoScrollTrigger is the distance from a visible container edge, in
	// pixels, at which a reordering row starts scrolling the container. It is
	// also the largest scroll step per move.
	AutoScrollTrigger float64 `koanf:"auto_scroll_trigger"`

	// AnimationDuration is how long return/remove animations take. Zero
	// applies the terminal state immediately.
	AnimationDuration time.Duration `koanf:"animation_duration"`
}

// DefaultGestureConfig returns the stock tuning.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		HoldTimeout:                           500 * time.Millisecond,
		SwipeStartDistance:                    25,
		ReorderSlopX:                          25,
		ReorderSlopY:                          15,
		SwipeLeftThreshold:                    0.5,
		SwipeRightThreshold:                   0.5,
		SwipeLeftContentPercentToFullOpacity:  25,
		SwipeRightContentPercentToFullOpacity: 25,
		Gap:                                   0,
		SwipeLeftOverThresholdAnimation:       AnimationRemove,
		SwipeRightOverThresholdAnimation:      AnimationRemove,
		AutoScrollTrigger:                     40,
		AnimationDuration:                     250 * time.Millisecond,
	}
}

// Validate reports every out-of-range field.
func (c GestureConfig) Validate() error {
	var errs []error
	if c.HoldTimeout <= 0 {
		errs = append(errs, fmt.Errorf("hold_timeout must be positive, got %v", c.HoldTimeout))
	}
	if c.SwipeStartDistance < 0 {
		errs = append(errs, fmt.Errorf("swipe_start_distance must not be negative, got %v", c.SwipeStartDistance))
	}
	if c.ReorderSlopX < 0 || c.ReorderSlopY < 0 {
		errs = append(errs, fmt.Errorf("reorder slop must not be negative, got (%v, %v)", c.ReorderSlopX, c.ReorderSlopY))
	}
	if c.SwipeLeftThreshold < 0 || c.SwipeRightThreshold < 0 {
		errs = append(errs, fmt.Errorf("swipe thresholds must not be negative, got (%v, %v)", c.SwipeLeftThreshold, c.SwipeRightThreshold))
	}
	if c.SwipeLeftContentPercentToFullOpacity <= 0 || c.SwipeRightContentPercentToFullOpacity <= 0 {
		errs = append(errs, fmt.Errorf("opacity ramp percentages must be positive, got (%v, %v)",
			c.SwipeLeftContentPercentToFullOpacity, c.SwipeRightContentPercentToFullOpacity))
	}
	if c.Gap < 0 {
		errs = append(errs, fmt.Errorf("gap must not be negative, got %v", c.Gap))
	}
	if c.SwipeLeftOverThresholdAnimation > AnimationNone || c.SwipeRightOverThresholdAnimation > AnimationNone {
		errs = append(errs, errors.New("unknown over-threshold animation"))
	}
	if c.AutoScrollTrigger < 0 {
		errs = append(errs, fmt.Errorf("auto_scroll_trigger must not be negative, got %v", c.AutoScrollTrigger))
	}
	if c.AnimationDuration < 0 {
		errs = append(errs, fmt.Errorf("animation_duration must not be negative, got %v", c.AnimationDuration))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid gesture config: %w", errors.Join(errs...))
}

// defaultsMap flattens DefaultGestureConfig into koanf keys.
func defaultsMap() map[string]any {
	d := DefaultGestureConfig()
	return map[string]any{
		"hold_timeout":                                d.HoldTimeout.String(),
		"swipe_start_distance":                        d.SwipeStartDistance,
		"reorder_slop_x":                              d.ReorderSlopX,
		"reorder_slop_y":                              d.ReorderSlopY,
		"swipe_left_threshold":                        d.SwipeLeftThreshold,
		"swipe_right_threshold":                       d.SwipeRightThreshold,
		"swipe_left_content_percent_to_full_opacity":  d.SwipeLeftContentPercentToFullOpacity,
		"swipe_right_content_percent_to_full_opacity": d.SwipeRightContentPercentToFullOpacity,
		"gap":                                         d.Gap,
		"block_swipe":                                 d.BlockSwipe,
		"block_reorder":                               d.BlockReorder,
		"swipe_left_over_threshold_animation":         d.SwipeLeftOverThresholdAnimation.String(),
		"swipe_right_over_threshold_animation":        d.SwipeRightOverThresholdAnimation.String(),
		"auto_scroll_trigger":                         d.AutoScrollTrigger,
		"animation_duration":                          d.AnimationDuration.String(),
	}
}

// LoadConfig builds a GestureConfig from the defaults, then the TOML file at
// path (skipped when path is empty), then SLIPPABLE_* environment variables.
// Durations are written as Go duration strings ("500ms").
func LoadConfig(path string) (GestureConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return GestureConfig{}, fmt.Errorf("load config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return GestureConfig{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return GestureConfig{}, fmt.Errorf("load config environment: %w", err)
	}

	var cfg GestureConfig
	err = k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return GestureConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GestureConfig{}, err
	}
	return cfg, nil
}
