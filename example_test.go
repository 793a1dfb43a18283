package chroma_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/chroma"
)

func ExampleHsvToRgb() {
	c := chroma.NewHsv(chroma.Degrees[float32](120), 1, 0.6)
	fmt.Println(chroma.HsvToRgb[uint8](c))

	// The same colour with 16-bit channels gives the same 8-bit result.
	d := chroma.NewHsv[uint16](chroma.Degrees[uint16](120), 65535, 39321)
	fmt.Println(chroma.HsvToRgb[uint8](d))
	// Output:
	// rgb(0, 153, 0)
	// rgb(0, 153, 0)
}

func ExampleHsv_Inverse() {
	c := chroma.NewHsv(chroma.Degrees(300.0), 0.25, 0.75)
	fmt.Println(c.Inverse())
	// Output: hsv(120°, 0.75, 0.25)
}

func ExampleHsv_Mix() {
	red := chroma.NewHsv(chroma.Degrees(0.0), 1, 1)
	blue := chroma.NewHsv(chroma.Degrees(240.0), 1, 1)
	fmt.Println(red.Mix(blue, 0.5).ToRgb())
	// Output: rgb(0.5, 0, 0.5)
}

func ExamplePackedToHsv() {
	_, err := chroma.PackedToHsv[uint8](uint32(0xff0000))
	fmt.Println(errors.Is(err, chroma.ErrNotImplemented))
	// Output: true
}

func ExampleNamed() {
	c, ok := chroma.Named[uint8]("steelblue")
	fmt.Println(c.Hex(), ok)
	fmt.Println(c.ToHsv())
	// Output:
	// #4682b4 true
	// hsv(207°, 156, 180)
}
