package chroma

import (
	"math"

	"github.com/gogpu/chroma/internal/fixed"
)

// Channel is the set of numeric types that can hold one colour component.
//
// Unsigned integers are fixed-point fractions of their type maximum, so a
// uint8 channel of 153 means 153/255. Floats are fractions of 1.
type Channel interface {
	uint8 | uint16 | uint32 | float32 | float64
}

// FloatChannel is the subset of Channel with a floating-point representation.
type FloatChannel interface {
	float32 | float64
}

// domain identifies the concrete representation behind a Channel type.
type domain uint8

const (
	domainFloat domain = iota
	domainU8
	domainU16
	domainU32
)

func domainOf[T Channel]() domain {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return domainU8
	case uint16:
		return domainU16
	case uint32:
		return domainU32
	default:
		return domainFloat
	}
}

// max returns the domain maximum as an integer. Floats report 1.
func (d domain) max() uint64 {
	switch d {
	case domainU8:
		return math.MaxUint8
	case domainU16:
		return math.MaxUint16
	case domainU32:
		return math.MaxUint32
	default:
		return 1
	}
}

// Max returns the largest value of the channel domain: 1 for floats and the
// type maximum for unsigned integers.
func Max[T Channel]() T {
	return T(domainOf[T]().max())
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp[T Channel](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Invert returns the complement of v relative to the domain maximum.
func Invert[T Channel](v T) T {
	return Max[T]() - v
}

// NormalizedMul multiplies two channel values as fractions of Max and
// returns the product in the same domain.
//
// Integer domains widen to 64 bits before dividing back down by Max and
// round to the nearest value. Floats use ordinary multiplication.
func NormalizedMul[T Channel](a, b T) T {
	switch d := domainOf[T](); d {
	case domainFloat:
		return a * b
	case domainU8:
		return T(fixed.MulDiv255(uint8(a), uint8(b)))
	default:
		return T(fixed.MulDiv(uint64(a), uint64(b), d.max()))
	}
}

// Saturate clamps v to [0, Max]. Unsigned integer domains cannot leave that
// range, so Saturate is the identity for them. NaN saturates to 0.
func Saturate[T Channel](v T) T {
	if domainOf[T]() != domainFloat {
		return v
	}
	if math.IsNaN(float64(v)) {
		return 0
	}
	return Clamp(v, 0, Max[T]())
}

// IsZero reports whether v is the zero channel value.
func IsZero[T Channel](v T) bool {
	return v == 0
}

// Convert rescales a channel value from domain T into domain U by the ratio
// of their maxima, rounding to the nearest representable U.
//
// Float to float is a plain numeric conversion and keeps out-of-range
// values. A float narrowing into an integer domain is saturated first.
//
// Example:
//
//	Convert[uint8](float32(0.6))  // 153
//	Convert[uint8](uint16(39321)) // 153
//	Convert[float64](uint8(255))  // 1
func Convert[U, T Channel](v T) U {
	from, to := domainOf[T](), domainOf[U]()
	switch {
	case from == domainFloat && to == domainFloat:
		return U(v)
	case from == domainFloat:
		f := float64(Saturate(v))
		return U(math.Floor(f*float64(to.max()) + 0.5))
	case to == domainFloat:
		return U(float64(v) / float64(from.max()))
	default:
		return U(fixed.Rescale(uint64(v), from.max(), to.max()))
	}
}
