package chroma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRgbClamp(t *testing.T) {
	c := NewRgb(-0.5, 0.5, 1.5)
	assert.Equal(t, NewRgb(0.0, 0.5, 1), c.ClampS(0, 1))
	assert.Equal(t, NewRgb(0.1, 0.4, 0.9), c.ClampC(NewRgb(0.1, 0.1, 0.1), NewRgb(0.9, 0.4, 0.9)))
}

func TestRgbInverse(t *testing.T) {
	assert.Equal(t, NewRgb[uint8](255, 155, 0), NewRgb[uint8](0, 100, 255).Inverse())
	assert.Equal(t, NewRgb(0.75, 0.5, 0), NewRgb(0.25, 0.5, 1).Inverse())

	c := NewRgb[uint16](1, 2, 65534)
	assert.Equal(t, c, c.Inverse().Inverse())
}

func TestRgbMix(t *testing.T) {
	a := NewRgb[uint8](0, 100, 255)
	b := NewRgb[uint8](255, 200, 0)

	assert.Equal(t, a, a.Mix(b, 0))
	assert.Equal(t, b, a.Mix(b, 255))
	assert.Equal(t, NewRgb[uint8](128, 150, 127), a.Mix(b, 128))

	f := NewRgb(0.0, 0.5, 1).Mix(NewRgb(1.0, 0.5, 0), 0.25)
	assert.Equal(t, NewRgb(0.25, 0.5, 0.75), f)

	// t outside [0, 1] is saturated.
	assert.Equal(t, NewRgb(1.0, 0.5, 0), NewRgb(0.0, 0.5, 1).Mix(NewRgb(1.0, 0.5, 0), 3))
}

func TestRgbSaturate(t *testing.T) {
	assert.Equal(t, NewRgb(0.0, 1, 0.5), NewRgb(-1.0, 2, 0.5).Saturate())
	assert.Equal(t, NewRgb[uint8](1, 2, 3), NewRgb[uint8](1, 2, 3).Saturate())
}

func TestRgbToRgb(t *testing.T) {
	assert.Equal(t, NewRgb[uint8](153, 0, 255), RgbToRgb[uint8](NewRgb[uint16](39321, 0, 65535)))
	assert.Equal(t, NewRgb(1.0, 0, 0.2), RgbToRgb[float64](NewRgb[uint8](255, 0, 51)))
	assert.Equal(t, NewRgb[uint8](255, 0, 0), RgbToRgb[uint8](NewRgb(2.0, -1, 0)))
}

func TestRgbToHsv(t *testing.T) {
	tests := []struct {
		name string
		in   Rgb[uint8]
		want Hsv[float64]
	}{
		{"black", NewRgb[uint8](0, 0, 0), NewHsv(Degrees(0.0), 0, 0)},
		{"white", NewRgb[uint8](255, 255, 255), NewHsv(Degrees(0.0), 0, 1)},
		{"red", NewRgb[uint8](255, 0, 0), NewHsv(Degrees(0.0), 1, 1)},
		{"yellow", NewRgb[uint8](255, 255, 0), NewHsv(Degrees(60.0), 1, 1)},
		{"green", NewRgb[uint8](0, 255, 0), NewHsv(Degrees(120.0), 1, 1)},
		{"cyan", NewRgb[uint8](0, 255, 255), NewHsv(Degrees(180.0), 1, 1)},
		{"blue", NewRgb[uint8](0, 0, 255), NewHsv(Degrees(240.0), 1, 1)},
		{"magenta", NewRgb[uint8](255, 0, 255), NewHsv(Degrees(300.0), 1, 1)},
		{"half red", NewRgb[uint8](51, 0, 0), NewHsv(Degrees(0.0), 1, 0.2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RgbToHsv[float64](tt.in)
			assert.InDelta(t, tt.want.H.Value(), got.H.Value(), 1e-9)
			assert.InDelta(t, tt.want.S, got.S, 1e-12)
			assert.InDelta(t, tt.want.V, got.V, 1e-12)
		})
	}
}

func TestRgbToHsvIntegerDomain(t *testing.T) {
	got := RgbToHsv[uint16](NewRgb[uint8](0, 153, 0))
	assert.Equal(t, NewHsv[uint16](Degrees[uint16](120), 65535, 39321), got)

	// Hue is rounded to the nearest whole degree in integer domains.
	orange := RgbToHsv[uint16](NewRgb[uint8](255, 128, 0))
	assert.Equal(t, uint16(30), orange.H.Value())
}

func TestRgbString(t *testing.T) {
	assert.Equal(t, "rgb(153, 0, 0)", NewRgb[uint8](153, 0, 0).String())
	assert.Equal(t, "rgb(0.5, 0, 1)", NewRgb(0.5, 0, 1).String())
}
