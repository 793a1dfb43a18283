package chroma

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// RGBA implements the standard color.Color interface.
// The colour is fully opaque.
func (c Rgb[T]) RGBA() (r, g, b, a uint32) {
	w := RgbToRgb[uint16](c)
	return uint32(w.R), uint32(w.G), uint32(w.B), 0xffff
}

// RGBA implements the standard color.Color interface by converting to RGB.
func (c Hsv[T]) RGBA() (r, g, b, a uint32) {
	return HsvToRgb[uint16](c).RGBA()
}

// FromColor converts a standard color.Color to Rgb in domain T.
// Alpha is un-premultiplied away and then dropped.
func FromColor[T Channel](c color.Color) Rgb[T] {
	switch v := c.(type) {
	case Rgb[T]:
		return v
	case Hsv[T]:
		return v.ToRgb()
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RgbToRgb[T](NewRgb(n.R, n.G, n.B))
}

// RgbModel returns a color.Model that converts any colour to Rgb[T].
func RgbModel[T Channel]() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return FromColor[T](c)
	})
}

// HsvModel returns a color.Model that converts any colour to Hsv[T].
func HsvModel[T Channel]() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		if v, ok := c.(Hsv[T]); ok {
			return v
		}
		return FromColor[T](c).ToHsv()
	})
}

// Named returns the SVG 1.1 colour keyword name, such as "steelblue".
// Matching ignores case and spaces, so "Steel Blue" also works.
func Named[T Channel](name string) (Rgb[T], bool) {
	key := cases.Fold().String(strings.ReplaceAll(name, " ", ""))
	c, ok := colornames.Map[key]
	if !ok {
		return Rgb[T]{}, false
	}
	return RgbToRgb[T](NewRgb(c.R, c.G, c.B)), true
}

// ParseHex parses a hex colour string.
// Supports formats: "RGB", "RRGGBB", each with an optional leading '#'.
func ParseHex[T Channel](s string) (Rgb[T], error) {
	hex := strings.TrimPrefix(s, "#")

	var r, g, b uint32
	ok := false

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	}

	if !ok {
		Logger().Debug("chroma: rejected hex color", "input", s)
		return Rgb[T]{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RgbToRgb[T](NewRgb(uint8(r), uint8(g), uint8(b))), nil
}

// parseHex accumulates the hex digits of s into val. It reports false on
// the first non-hex character.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Hex formats c as "#rrggbb" after rescaling to 8 bits per channel.
func (c Rgb[T]) Hex() string {
	b := RgbToRgb[uint8](c)
	return fmt.Sprintf("#%02x%02x%02x", b.R, b.G, b.B)
}

// GPU converts c to a WebGPU colour value with alpha 1, suitable for
// render pass clear values and blend constants.
func (c Rgb[T]) GPU() gputypes.Color {
	f := RgbToRgb[float64](c)
	return gputypes.Color{R: f.R, G: f.G, B: f.B, A: 1}
}

// FromGPU converts a WebGPU colour value to Rgb in domain T.
// Alpha is ignored.
func FromGPU[T Channel](c gputypes.Color) Rgb[T] {
	return RgbToRgb[T](NewRgb(float64(c.R), float64(c.G), float64(c.B)))
}
