// Package config holds the editor options. Options come from built-in
// defaults, optionally overlaid by a TOML file and then by GGEDIT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ggedit"
)

// EnvPrefix is the prefix of environment overrides, e.g. GGEDIT_SNAP_X.
const EnvPrefix = "ggedit"

// Options are the editor settings.
type Options struct {
	SnapToGrid   bool    `toml:"snap_to_grid" envconfig:"SNAP_TO_GRID"`
	SnapX        float64 `toml:"snap_x" envconfig:"SNAP_X"`
	SnapY        float64 `toml:"snap_y" envconfig:"SNAP_Y"`
	HitThreshold float64 `toml:"hit_threshold" envconfig:"HIT_THRESHOLD"`
	TryToConnect bool    `toml:"try_to_connect" envconfig:"TRY_TO_CONNECT"`

	DefaultIsStroked bool            `toml:"default_is_stroked" envconfig:"DEFAULT_IS_STROKED"`
	DefaultIsFilled  bool            `toml:"default_is_filled" envconfig:"DEFAULT_IS_FILLED"`
	DefaultIsClosed  bool            `toml:"default_is_closed" envconfig:"DEFAULT_IS_CLOSED"`
	DefaultFillRule  ggedit.FillRule `toml:"default_fill_rule" envconfig:"DEFAULT_FILL_RULE"`

	PointSize  float64 `toml:"point_size" envconfig:"POINT_SIZE"`
	DrawPoints bool    `toml:"draw_points" envconfig:"DRAW_POINTS"`
	Zoom       float64 `toml:"zoom" envconfig:"ZOOM"`

	// EnableRotate adds the rotation handle to the selection decorator.
	EnableRotate bool `toml:"enable_rotate" envconfig:"ENABLE_ROTATE"`

	// ImageCacheSize bounds the number of decoded images kept in memory.
	ImageCacheSize int `toml:"image_cache_size" envconfig:"IMAGE_CACHE_SIZE"`
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		SnapToGrid:       true,
		SnapX:            15,
		SnapY:            15,
		HitThreshold:     7,
		TryToConnect:     false,
		DefaultIsStroked: true,
		DefaultIsFilled:  false,
		DefaultIsClosed:  true,
		DefaultFillRule:  ggedit.FillRuleEvenOdd,
		PointSize:        4,
		DrawPoints:       false,
		Zoom:             1,
		ImageCacheSize:   64,
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid options")

// Validate checks that steps, sizes and thresholds are usable.
func (o Options) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"snap_x", o.SnapX},
		{"snap_y", o.SnapY},
		{"hit_threshold", o.HitThreshold},
		{"point_size", o.PointSize},
		{"zoom", o.Zoom},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.v)
		}
	}
	if o.ImageCacheSize < 0 {
		return fmt.Errorf("%w: image_cache_size must not be negative, got %d", ErrInvalid, o.ImageCacheSize)
	}
	return nil
}

// Decode reads TOML from r over o. Keys missing from the input keep
// their current value.
func (o *Options) Decode(r io.Reader) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(o); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("config: %s", strict.String())
		}
		return fmt.Errorf("config: decode: %w", err)
	}
	return nil
}

// Encode writes o as TOML.
func (o Options) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(o); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// Load reads the TOML file at path over the defaults and validates the
// result.
func Load(path string) (Options, error) {
	opts := Default()
	f, err := os.Open(path)
	if err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err := opts.Decode(f); err != nil {
		return opts, fmt.Errorf("%w (%s)", err, path)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// FromEnv applies GGEDIT_* environment overrides to opts and validates
// the result. Unset variables leave the field unchanged.
func FromEnv(opts Options) (Options, error) {
	if err := envconfig.Process(EnvPrefix, &opts); err != nil {
		return opts, fmt.Errorf("config: environment: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
