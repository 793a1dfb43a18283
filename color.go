package chroma

// Color is the capability set shared by every colour model in chroma.
// C is the implementing type itself, so operations return the same model.
type Color[T Channel, C any] interface {
	// ClampS clamps the components of the colour to the range [lo, hi].
	ClampS(lo, hi T) C

	// ClampC clamps the components of the colour component-wise between
	// lo and hi.
	ClampC(lo, hi C) C

	// Inverse returns the inverted colour.
	Inverse() C

	// Mix blends towards other by t, where 0 is the receiver and Max[T]()
	// is other.
	Mix(other C, t T) C
}

// FloatColor is implemented by colour models that can be normalized back
// into their canonical ranges after unbounded float arithmetic.
type FloatColor[C any] interface {
	Saturate() C
}

// RgbConverter is implemented by colour models that convert to RGB.
type RgbConverter[T Channel] interface {
	ToRgb() Rgb[T]
}

// HsvConverter is implemented by colour models that convert to HSV.
type HsvConverter[T Channel] interface {
	ToHsv() Hsv[T]
}

// Compile-time interface checks.
var (
	_ Color[float32, Hsv[float32]] = Hsv[float32]{}
	_ Color[uint16, Hsv[uint16]]   = Hsv[uint16]{}
	_ Color[float32, Rgb[float32]] = Rgb[float32]{}
	_ Color[uint8, Rgb[uint8]]     = Rgb[uint8]{}
	_ FloatColor[Hsv[float64]]     = Hsv[float64]{}
	_ FloatColor[Rgb[float64]]     = Rgb[float64]{}
	_ RgbConverter[uint8]          = Hsv[uint8]{}
	_ RgbConverter[uint8]          = Rgb[uint8]{}
	_ HsvConverter[float32]        = Hsv[float32]{}
	_ HsvConverter[float32]        = Rgb[float32]{}
)

// ConvertToRgb converts any RgbConverter into RGB in the caller-chosen
// domain U.
//
// Hsv and Rgb sources convert straight into U, so intermediate values are
// rounded once. Other converters go through their own ToRgb first.
//
// Example:
//
//	c := chroma.NewHsv(chroma.Degrees[float32](120), 1, 0.6)
//	rgb := chroma.ConvertToRgb[uint8, float32](c) // rgb(0, 153, 0)
func ConvertToRgb[U, T Channel](c RgbConverter[T]) Rgb[U] {
	switch v := c.(type) {
	case Hsv[T]:
		return HsvToRgb[U](v)
	case Rgb[T]:
		return RgbToRgb[U](v)
	}
	return RgbToRgb[U](c.ToRgb())
}

// ConvertToHsv converts any HsvConverter into HSV in the caller-chosen
// domain U.
func ConvertToHsv[U, T Channel](c HsvConverter[T]) Hsv[U] {
	switch v := c.(type) {
	case Hsv[T]:
		return HsvToHsv[U](v)
	case Rgb[T]:
		return RgbToHsv[U](v)
	}
	return HsvToHsv[U](c.ToHsv())
}
