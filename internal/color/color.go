// Package color implements the RGB colour type used throughout shading.
// Channels are kept unclamped until pixel encoding so intermediate lighting
// math (overshoot from specular highlights, additive reflection terms) is
// never lossy.
package color

// Color is an RGB triple of floats, typically but not necessarily in [0,1].
type Color struct {
	R, G, B float64
}

// New constructs a Color from its channels.
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero colour, the default background radiance.
var Black = Color{}

// White is full-intensity white.
var White = Color{R: 1, G: 1, B: 1}

// Add returns the component-wise sum c+o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the component-wise difference c-o.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale returns c with every channel multiplied by the scalar s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the Hadamard (component-wise) product c*o, used to modulate a
// surface colour by a light's intensity.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Equal reports exact equality.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

const epsilon = 1e-5

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

// AlmostEqual reports approximate equality, used in golden-value tests
// where the expected channels are given to five decimal places.
func (c Color) AlmostEqual(o Color) bool {
	return almostEqual(c.R, o.R) && almostEqual(c.G, o.G) && almostEqual(c.B, o.B)
}
