package chroma

import (
	"fmt"
	"math"
)

// Rgb is a colour in the RGB model with each channel in domain T.
type Rgb[T Channel] struct {
	R, G, B T
}

// NewRgb creates an Rgb colour from its channels.
func NewRgb[T Channel](r, g, b T) Rgb[T] {
	return Rgb[T]{R: r, G: g, B: b}
}

// ClampS clamps every channel to the range [lo, hi].
func (c Rgb[T]) ClampS(lo, hi T) Rgb[T] {
	return Rgb[T]{
		R: Clamp(c.R, lo, hi),
		G: Clamp(c.G, lo, hi),
		B: Clamp(c.B, lo, hi),
	}
}

// ClampC clamps the channels component-wise between lo and hi.
func (c Rgb[T]) ClampC(lo, hi Rgb[T]) Rgb[T] {
	return Rgb[T]{
		R: Clamp(c.R, lo.R, hi.R),
		G: Clamp(c.G, lo.G, hi.G),
		B: Clamp(c.B, lo.B, hi.B),
	}
}

// Inverse returns the complementary colour.
func (c Rgb[T]) Inverse() Rgb[T] {
	return Rgb[T]{R: Invert(c.R), G: Invert(c.G), B: Invert(c.B)}
}

// Mix linearly interpolates from c towards other. t is a channel value
// where 0 yields c and Max yields other; it is saturated first.
func (c Rgb[T]) Mix(other Rgb[T], t T) Rgb[T] {
	w := float64(Saturate(t)) / float64(Max[T]())
	return Rgb[T]{
		R: lerpChannel(c.R, other.R, w),
		G: lerpChannel(c.G, other.G, w),
		B: lerpChannel(c.B, other.B, w),
	}
}

// Saturate clamps every channel to [0, Max].
func (c Rgb[T]) Saturate() Rgb[T] {
	return Rgb[T]{R: Saturate(c.R), G: Saturate(c.G), B: Saturate(c.B)}
}

// ToRgb returns c. It makes Rgb an RgbConverter.
func (c Rgb[T]) ToRgb() Rgb[T] {
	return c
}

// ToHsv converts c to HSV in the same channel domain.
func (c Rgb[T]) ToHsv() Hsv[T] {
	return RgbToHsv[T](c)
}

func (c Rgb[T]) String() string {
	return fmt.Sprintf("rgb(%v, %v, %v)", c.R, c.G, c.B)
}

// RgbToRgb rescales every channel of c into domain U.
func RgbToRgb[U, T Channel](c Rgb[T]) Rgb[U] {
	return Rgb[U]{
		R: Convert[U](c.R),
		G: Convert[U](c.G),
		B: Convert[U](c.B),
	}
}

// RgbToHsv converts an RGB colour into HSV in domain U.
//
// Black and grays have no defined hue; they map to hue 0 with zero
// saturation.
func RgbToHsv[U, T Channel](c Rgb[T]) Hsv[U] {
	r := Convert[float64](c.R)
	g := Convert[float64](c.G)
	b := Convert[float64](c.B)

	hi := max(r, g, b)
	lo := min(r, g, b)
	delta := hi - lo

	var h float64
	switch {
	case delta == 0:
		h = 0
	case hi == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case hi == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if hi > 0 {
		s = delta / hi
	}

	return Hsv[U]{
		H: Deg[U]{deg: angleFrom[U](h)},
		S: Convert[U](s),
		V: Convert[U](hi),
	}
}

// lerpChannel interpolates between a and b by w in [0, 1]. Integer domains
// round to the nearest value, which always lies between a and b.
func lerpChannel[T Channel](a, b T, w float64) T {
	f := float64(a) + (float64(b)-float64(a))*w
	if domainOf[T]() == domainFloat {
		return T(f)
	}
	return T(math.Floor(f + 0.5))
}
