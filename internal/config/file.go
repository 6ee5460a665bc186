package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/ytget/swipeactions/internal/model"
)

var (
	// ErrUnsupportedFormat is returned for options files that are neither TOML nor YAML
	ErrUnsupportedFormat = errors.New("unsupported options file format")
	// ErrInvalidColor is returned for colors that are not #rgb or #rrggbb
	ErrInvalidColor = errors.New("invalid color")
	// ErrUnknownValue is returned for enum fields with an unrecognized value
	ErrUnknownValue = errors.New("unknown value")
)

// Format is an options file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// OptionsFile is the on-disk shape of the layout options. Empty fields keep
// their defaults.
type OptionsFile struct {
	Transition         string  `toml:"transition" yaml:"transition"`
	Expansion          string  `toml:"expansion" yaml:"expansion"`
	Orientation        string  `toml:"orientation" yaml:"orientation"`
	MinimumButtonWidth float32 `toml:"minimum_button_width" yaml:"minimum_button_width"`
	MaximumButtonWidth float32 `toml:"maximum_button_width" yaml:"maximum_button_width"`
	ButtonSpacing      float32 `toml:"button_spacing" yaml:"button_spacing"`
	ButtonPadding      float32 `toml:"button_padding" yaml:"button_padding"`
	VerticalAlignment  string  `toml:"vertical_alignment" yaml:"vertical_alignment"`
	BackgroundColor    string  `toml:"background_color" yaml:"background_color"`
}

// Layout is a validated options file
type Layout struct {
	Options     model.Options
	Orientation model.Orientation
	// BackgroundColor keeps the source hex so it can be stored again
	BackgroundColor string
}

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// LoadOptionsFile reads and validates a TOML or YAML options file
func LoadOptionsFile(path string) (Layout, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Layout{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read options file: %w", err)
	}
	file, err := ParseOptions(data, format)
	if err != nil {
		return Layout{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Layout()
}

// ParseOptions decodes data in format
func ParseOptions(data []byte, format Format) (OptionsFile, error) {
	var file OptionsFile
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &file); err != nil {
			return OptionsFile{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return OptionsFile{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return OptionsFile{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return file, nil
}

// Layout validates the file and converts it to layout options
func (f OptionsFile) Layout() (Layout, error) {
	var layout Layout
	o := &layout.Options

	switch style := model.TransitionStyle(strings.ToLower(f.Transition)); style {
	case "":
		o.TransitionStyle = DefaultTransitionStyle
	case model.TransitionDrag, model.TransitionReveal, model.TransitionBorder:
		o.TransitionStyle = style
	default:
		return Layout{}, fmt.Errorf("transition %q: %w", f.Transition, ErrUnknownValue)
	}

	switch name := strings.ToLower(f.Expansion); name {
	case "", ExpansionNone:
	default:
		style, ok := model.ExpansionStyleByName(name)
		if !ok {
			return Layout{}, fmt.Errorf("expansion %q: %w", f.Expansion, ErrUnknownValue)
		}
		o.ExpansionStyle = style
	}

	switch strings.ToLower(f.Orientation) {
	case "", "right":
		layout.Orientation = model.OrientationRight
	case "left":
		layout.Orientation = model.OrientationLeft
	default:
		return Layout{}, fmt.Errorf("orientation %q: %w", f.Orientation, ErrUnknownValue)
	}

	switch a := f.VerticalAlignment; {
	case a == "":
	case strings.EqualFold(a, string(model.AlignCenter)):
		o.ButtonVerticalAlignment = model.AlignCenter
	case strings.EqualFold(a, string(model.AlignCenterFirstBaseline)):
		o.ButtonVerticalAlignment = model.AlignCenterFirstBaseline
	default:
		return Layout{}, fmt.Errorf("vertical alignment %q: %w", f.VerticalAlignment, ErrUnknownValue)
	}

	o.MinimumButtonWidth = clampFloat(f.MinimumButtonWidth, MaxButtonWidthLimit)
	o.MaximumButtonWidth = clampFloat(f.MaximumButtonWidth, MaxButtonWidthLimit)
	o.ButtonSpacing = clampFloat(f.ButtonSpacing, MaxButtonGapLimit)
	o.ButtonPadding = clampFloat(f.ButtonPadding, MaxButtonGapLimit)

	if f.BackgroundColor != "" {
		c, err := ParseColor(f.BackgroundColor)
		if err != nil {
			return Layout{}, fmt.Errorf("background color: %w", err)
		}
		o.BackgroundColor = c
		layout.BackgroundColor = f.BackgroundColor
	}
	return layout, nil
}

// ParseColor parses a #rgb or #rrggbb hex color
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidColor, hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
