// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"tilekit.org/unit"
)

// ErrColor is returned for color values that are neither a
// "#rrggbb", "#rrggbbaa" hex string nor an SVG color name.
var ErrColor = errors.New("theme: invalid color")

// file is the TOML representation of a theme. Empty or zero
// fields keep the defaults from New.
type file struct {
	Background string  `toml:"background"`
	Panel      string  `toml:"panel"`
	Frame      string  `toml:"frame"`
	Text       string  `toml:"text"`
	Indicator  string  `toml:"indicator"`
	Button     string  `toml:"button"`
	FrameWidth float32 `toml:"frame_width"`
	TextSize   float32 `toml:"text_size"`
	IconSize   float32 `toml:"icon_size"`
	Padding    float32 `toml:"padding"`
}

// Load reads a TOML theme description from r and applies it on
// top of the defaults returned by New. Unknown keys are rejected.
func Load(r io.Reader) (*Theme, error) {
	var f file
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("theme: decode: %w", err)
	}
	th := New()
	colors := []struct {
		name string
		src  string
		dst  *color.NRGBA
	}{
		{"background", f.Background, &th.Background},
		{"panel", f.Panel, &th.Panel},
		{"frame", f.Frame, &th.Frame},
		{"text", f.Text, &th.Text},
		{"indicator", f.Indicator, &th.Indicator},
		{"button", f.Button, &th.Button},
	}
	for _, c := range colors {
		if c.src == "" {
			continue
		}
		v, err := ParseColor(c.src)
		if err != nil {
			return nil, fmt.Errorf("theme: %s: %w", c.name, err)
		}
		*c.dst = v
	}
	if f.FrameWidth > 0 {
		th.FrameWidth = unit.Dp(f.FrameWidth)
	}
	if f.TextSize > 0 {
		th.TextSize = unit.Sp(f.TextSize)
	}
	if f.IconSize > 0 {
		th.IconSize = unit.Dp(f.IconSize)
	}
	if f.Padding > 0 {
		th.Padding = unit.Dp(f.Padding)
	}
	return th, nil
}

// ParseColor parses a "#rrggbb" or "#rrggbbaa" hex string or an
// SVG color name such as "steelblue".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
		}
		return nrgba(c), nil
	}
	hex := s[1:]
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
