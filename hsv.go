package chroma

import (
	"fmt"
	"math"
)

// Hsv is a colour in the HSV model: hue H in degrees, saturation S and
// value V as channels in domain T.
//
// S and V conceptually lie in [0, Max[T]()]. H may be any angle; it is
// wrapped into [0, 360) only by Wrap, Saturate, Inverse and conversion,
// never by construction.
type Hsv[T Channel] struct {
	H Deg[T]
	S T
	V T
}

// NewHsv creates an Hsv colour. No normalization is performed.
func NewHsv[T Channel](h Deg[T], s, v T) Hsv[T] {
	return Hsv[T]{H: h, S: s, V: v}
}

// ClampS clamps saturation and value to the range [lo, hi].
// The hue is passed through unchanged.
func (c Hsv[T]) ClampS(lo, hi T) Hsv[T] {
	// Whether hue should be clamped as well is an open question; it is not.
	return Hsv[T]{
		H: c.H,
		S: Clamp(c.S, lo, hi),
		V: Clamp(c.V, lo, hi),
	}
}

// ClampC clamps saturation and value component-wise between lo and hi.
// The hue is passed through unchanged.
func (c Hsv[T]) ClampC(lo, hi Hsv[T]) Hsv[T] {
	return Hsv[T]{
		H: c.H,
		S: Clamp(c.S, lo.S, hi.S),
		V: Clamp(c.V, lo.V, hi.V),
	}
}

// Inverse rotates the hue by 180 degrees, wraps it, and inverts saturation
// and value.
func (c Hsv[T]) Inverse() Hsv[T] {
	return Hsv[T]{
		H: c.H.Rotate(180),
		S: Invert(c.S),
		V: Invert(c.V),
	}
}

// Mix blends c towards other by t, where 0 yields c and Max yields other.
//
// Both colours are converted to RGB, mixed there, and the result is
// converted back, so the blend follows a straight line in RGB.
func (c Hsv[T]) Mix(other Hsv[T], t T) Hsv[T] {
	return c.ToRgb().Mix(other.ToRgb(), t).ToHsv()
}

// Saturate wraps the hue into [0, 360) and clamps saturation and value to
// [0, Max].
func (c Hsv[T]) Saturate() Hsv[T] {
	return Hsv[T]{
		H: c.H.Wrap(),
		S: Saturate(c.S),
		V: Saturate(c.V),
	}
}

// Wrap wraps only the hue into [0, 360).
func (c Hsv[T]) Wrap() Hsv[T] {
	return Hsv[T]{H: c.H.Wrap(), S: c.S, V: c.V}
}

// ToHsv returns c. It makes Hsv an HsvConverter.
func (c Hsv[T]) ToHsv() Hsv[T] {
	return c
}

// ToRgb converts c to RGB in the same channel domain.
func (c Hsv[T]) ToRgb() Rgb[T] {
	return HsvToRgb[T](c)
}

func (c Hsv[T]) String() string {
	return fmt.Sprintf("hsv(%v, %v, %v)", c.H, c.S, c.V)
}

// HsvToHsv rescales c into domain U. The hue is numerically recast without
// wrapping; saturation and value go through Convert.
func HsvToHsv[U, T Channel](c Hsv[T]) Hsv[U] {
	return Hsv[U]{
		H: degToDeg[U](c.H),
		S: Convert[U](c.S),
		V: Convert[U](c.V),
	}
}

// HsvToRgb converts c into an RGB colour in domain U.
//
// Zero value gives black and zero saturation gives a gray of value V.
// Otherwise the wrapped hue selects one of six 60 degree sectors of the HSV
// hexagon. The three intermediate levels are computed in domain T and each
// is rescaled into U on its own, so float32 input and uint16 input agree on
// the 8-bit result.
func HsvToRgb[U, T Channel](c Hsv[T]) Rgb[U] {
	if IsZero(c.V) {
		return Rgb[U]{}
	}
	if IsZero(c.S) {
		gray := Convert[U](c.V)
		return Rgb[U]{R: gray, G: gray, B: gray}
	}

	top := Max[T]()
	index := float64(c.H.Wrap().Value()) / 60
	sector := hueSector(index)
	frac := Convert[T](index - math.Floor(index))

	p := Convert[U](NormalizedMul(top-c.S, c.V))
	q := Convert[U](NormalizedMul(top-NormalizedMul(c.S, frac), c.V))
	t := Convert[U](NormalizedMul(top-NormalizedMul(c.S, top-frac), c.V))
	b := Convert[U](c.V)

	switch sector {
	case 0, 6:
		return Rgb[U]{R: b, G: t, B: p}
	case 1:
		return Rgb[U]{R: q, G: b, B: p}
	case 2:
		return Rgb[U]{R: p, G: b, B: t}
	case 3:
		return Rgb[U]{R: p, G: q, B: b}
	case 4:
		return Rgb[U]{R: t, G: p, B: b}
	case 5:
		return Rgb[U]{R: b, G: p, B: q}
	default:
		Logger().Error("chroma: hue sector out of range", "sector", sector, "hue", c.H.String())
		panic(&InvariantError{
			Op:     "HsvToRgb",
			Detail: fmt.Sprintf("hue %v maps to sector %d", c.H, sector),
		})
	}
}

// hueSector returns floor(index), or -1 when index is not a finite
// non-negative number.
func hueSector(index float64) int {
	if math.IsNaN(index) || math.IsInf(index, 0) || index < 0 {
		return -1
	}
	return int(index)
}

// PackedToHsv builds an Hsv from a packed 32 or 64 bit integer.
//
// It is not implemented: it always returns the zero Hsv and an error
// wrapping ErrNotImplemented.
func PackedToHsv[U Channel, P uint32 | uint64](p P) (Hsv[U], error) {
	Logger().Warn("chroma: packed integer to HSV conversion is not implemented", "value", uint64(p))
	return Hsv[U]{}, fmt.Errorf("PackedToHsv(%#x): %w", uint64(p), ErrNotImplemented)
}
