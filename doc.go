// Package chroma provides HSV and RGB colour models that are generic over
// the numeric type of their channels.
//
// # Overview
//
// The same conversion formulas work for 8, 16 and 32 bit fixed-point
// channels and for float32 and float64 channels. A fixed-point channel
// stores the fraction v/max of its type maximum; a float channel stores the
// fraction directly, so 1.0 is full intensity.
//
// # Quick Start
//
//	import "github.com/gogpu/chroma"
//
//	// Hue 120 degrees, full saturation, 60% value, float32 channels
//	c := chroma.NewHsv(chroma.Degrees[float32](120), 1, 0.6)
//
//	// Convert to 8-bit RGB: rgb(0, 153, 0)
//	rgb := chroma.HsvToRgb[uint8](c)
//
//	// And back to 16-bit HSV
//	hsv := chroma.RgbToHsv[uint16](rgb)
//
// # Channels
//
// [Channel] lists the supported types. [Max], [Clamp], [Invert],
// [NormalizedMul], [Saturate], [Convert] and [IsZero] form the channel
// contract that every colour operation is written against. Integer
// products widen to 64 bits before dividing back down, so no channel type
// overflows.
//
// # Hue
//
// Hue is a [Deg] angle that is never wrapped implicitly. [Deg.Wrap],
// [Hsv.Wrap], [Hsv.Saturate] and [Hsv.Inverse] bring it into [0, 360);
// construction and [Deg.Add] do not.
//
// # Errors
//
// Conversions are total. Declared but unsupported conversions, such as
// [PackedToHsv], return an error wrapping [ErrNotImplemented]. A broken
// internal invariant panics with an [*InvariantError].
//
// # Interoperability
//
// [Rgb] and [Hsv] implement the standard color.Color interface, and
// [RgbModel] and [HsvModel] adapt them to color.Model. [Named] looks up SVG
// colour keywords, [ParseHex] reads hex strings, and [Rgb.GPU] produces a
// WebGPU colour value.
package chroma
