// Package config loads render presets from TOML or YAML files and merges
// them with command line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/coffeeboi0811/glyphcam/ascii"
)

// OrientationAuto takes the orientation from the picture's EXIF data.
const OrientationAuto = "auto"

// Preset is the user facing render configuration.
type Preset struct {
	TileSize    int     `toml:"size" yaml:"size"`
	Scale       float64 `toml:"scale" yaml:"scale"`
	Workers     int     `toml:"workers" yaml:"workers"`
	Inverted    bool    `toml:"inverted" yaml:"inverted"`
	Orientation string  `toml:"orientation" yaml:"orientation"`
	Color       bool    `toml:"color" yaml:"color"`
	// Width limits the source image width before rendering, 0 disables it.
	Width uint `toml:"width" yaml:"width"`
}

// Default returns the preset matching ascii.DefaultConfig.
func Default() Preset {
	d := ascii.DefaultConfig()
	return Preset{
		TileSize:    d.TileSize,
		Scale:       d.Scale,
		Workers:     d.Workers,
		Inverted:    d.Inverted,
		Orientation: OrientationAuto,
	}
}

// Load reads a preset file on top of Default. The format is picked by
// extension: .toml, .yaml or .yml.
func Load(path string) (Preset, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &p); err != nil {
			return p, fmt.Errorf("config: %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("config: %s: %w", path, err)
		}
	default:
		return p, fmt.Errorf("config: %s: unsupported preset format %q", path, filepath.Ext(path))
	}
	return p, nil
}

// Flag names understood by Register and Merge.
const (
	FlagSize        = "size"
	FlagScale       = "scale"
	FlagWorkers     = "workers"
	FlagInverted    = "inverted"
	FlagOrientation = "orientation"
	FlagColor       = "color"
	FlagWidth       = "width"
)

// Register defines the preset flags on fs with the Default values.
func Register(fs *pflag.FlagSet) {
	d := Default()
	fs.IntP(FlagSize, "s", d.TileSize, "tile edge length in pixels")
	fs.Float64(FlagScale, d.Scale, "glyph size relative to a tile when exporting")
	fs.IntP(FlagWorkers, "j", d.Workers, "number of row bands rendered in parallel")
	fs.BoolP(FlagInverted, "i", d.Inverted, "use the inverted ramp (bright pixels become '@')")
	fs.StringP(FlagOrientation, "o", d.Orientation, "upright, flip-h, rotate180, flip-v, transpose, rotate90, transverse, rotate270 or auto")
	fs.BoolP(FlagColor, "c", d.Color, "color glyphs with the sampled pixel color")
	fs.UintP(FlagWidth, "w", d.Width, "shrink the source to this many pixels wide first (0 keeps it)")
}

// Merge overrides p with every preset flag that was set explicitly on fs.
func Merge(p Preset, fs *pflag.FlagSet) (Preset, error) {
	var err error
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return err == nil && f != nil && f.Changed
	}
	if changed(FlagSize) {
		p.TileSize, err = fs.GetInt(FlagSize)
	}
	if changed(FlagScale) {
		p.Scale, err = fs.GetFloat64(FlagScale)
	}
	if changed(FlagWorkers) {
		p.Workers, err = fs.GetInt(FlagWorkers)
	}
	if changed(FlagInverted) {
		p.Inverted, err = fs.GetBool(FlagInverted)
	}
	if changed(FlagOrientation) {
		p.Orientation, err = fs.GetString(FlagOrientation)
	}
	if changed(FlagColor) {
		p.Color, err = fs.GetBool(FlagColor)
	}
	if changed(FlagWidth) {
		p.Width, err = fs.GetUint(FlagWidth)
	}
	return p, err
}

// RenderConfig builds a validated ascii.Config. exif is the orientation
// read from the picture and is used when the preset says "auto".
func (p Preset) RenderConfig(exif ascii.Orientation) (ascii.Config, error) {
	cfg := ascii.Config{
		TileSize: p.TileSize,
		Scale:    p.Scale,
		Workers:  p.Workers,
		Inverted: p.Inverted,
	}
	if strings.EqualFold(strings.TrimSpace(p.Orientation), OrientationAuto) {
		cfg.Orientation = exif
	} else {
		o, err := ascii.ParseOrientation(p.Orientation)
		if err != nil {
			return cfg, err
		}
		cfg.Orientation = o
	}
	return cfg, cfg.Validate()
}
