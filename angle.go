package chroma

import (
	"fmt"
	"math"
)

// Deg is an angle in degrees stored in the numeric type of a colour channel.
//
// Angles are cyclic modulo 360 but are never wrapped implicitly: arithmetic
// keeps accumulating, and Wrap must be called to bring a value into
// [0, 360). This lets callers sum hue deltas without losing turns.
//
// Deg[uint8] can only hold 0..255. Results outside the representable range
// saturate to the nearest representable value.
type Deg[T Channel] struct {
	deg T
}

// Degrees returns the angle v degrees.
func Degrees[T Channel](v T) Deg[T] {
	return Deg[T]{deg: v}
}

// Value returns the raw angle.
func (a Deg[T]) Value() T {
	return a.deg
}

// Add returns a + b without wrapping.
func (a Deg[T]) Add(b Deg[T]) Deg[T] {
	return Deg[T]{deg: angleFrom[T](float64(a.deg) + float64(b.deg))}
}

// Rotate returns the angle turned by delta degrees and wrapped into
// [0, 360). delta may be negative.
func (a Deg[T]) Rotate(delta float64) Deg[T] {
	r := angleFrom[T](wrapDegrees(float64(a.deg) + delta))
	// Narrowing can round 359.99999 up to 360.
	if float64(r) >= 360 {
		r = 0
	}
	return Deg[T]{deg: r}
}

// Wrap returns the equivalent angle in [0, 360).
func (a Deg[T]) Wrap() Deg[T] {
	if domainOf[T]() != domainFloat {
		return Deg[T]{deg: T(uint64(a.deg) % 360)}
	}
	w := T(wrapDegrees(float64(a.deg)))
	// float32 can round 359.99999 up to 360.
	if float64(w) >= 360 {
		w = 0
	}
	return Deg[T]{deg: w}
}

func (a Deg[T]) String() string {
	return fmt.Sprintf("%v°", a.deg)
}

// degToDeg recasts an angle into another numeric type without wrapping.
func degToDeg[U, T Channel](a Deg[T]) Deg[U] {
	return Deg[U]{deg: angleFrom[U](float64(a.deg))}
}

// wrapDegrees maps d into [0, 360).
func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// angleFrom converts a float64 angle into T. Integer types round to the
// nearest degree and saturate at their bounds.
func angleFrom[T Channel](d float64) T {
	dom := domainOf[T]()
	if dom == domainFloat {
		return T(d)
	}
	if math.IsNaN(d) || d <= 0 {
		return 0
	}
	if limit := float64(dom.max()); d >= limit {
		return T(dom.max())
	}
	return T(math.Round(d))
}
