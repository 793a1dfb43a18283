// Package fixed provides widen-multiply-narrow kernels for unsigned
// fixed-point colour channels.
//
// A fixed-point channel stores the fraction v/max as the integer v. Products
// of two such fractions must be divided back down by max, and the
// intermediate product of two uint32 channels does not fit in 32 bits, so
// every kernel here widens to uint64 first.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package fixed

// Div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, exact for x in [0, 65279]. Larger
// inputs overflow the uint16 intermediate.
func Div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// MulDiv255 multiplies two 8-bit channels and divides by 255, rounding to
// the nearest integer.
//
// Formula: round(a * b / 255) = Div255(a*b + 127)
//
// The largest input to Div255 is 255*255 + 127 = 65152.
func MulDiv255(a, b uint8) uint8 {
	return uint8(Div255(uint16(a)*uint16(b) + 127))
}

// MulDiv returns round(a * b / max) for channel values in [0, max].
//
// a and b must not exceed max, and max must not exceed the uint32 range;
// under those bounds the widened product plus the rounding bias stays below
// 2^64.
func MulDiv(a, b, max uint64) uint64 {
	if max == 0 {
		return 0
	}
	return (a*b + max/2) / max
}

// Rescale maps v from the range [0, from] onto [0, to], rounding to the
// nearest integer.
//
// Both from and to must not exceed the uint32 range.
func Rescale(v, from, to uint64) uint64 {
	if from == to {
		return v
	}
	if from == 0 {
		return 0
	}
	return (v*to + from/2) / from
}
