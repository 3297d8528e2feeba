package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"

	"github.com/msealion/raytracer/internal/color"
)

// Canvas is a rectangular grid of pixel colors, written to by the
// renderer and exported as either PPM or PNG.
type Canvas struct {
	Width, Height int

	lock   sync.Mutex
	pixels []color.Color
}

// NewCanvas builds a black width x height Canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]color.Color, width*height),
	}
}

// Set writes the color at (x, y). Out-of-range coordinates are
// silently ignored, matching a generator that samples slightly outside
// the grid under a wide antialiasing kernel.
func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.pixels[y*c.Width+x] = col
}

// At returns the color at (x, y).
func (c *Canvas) At(x, y int) color.Color {
	return c.pixels[y*c.Width+x]
}

func clampByte(v float64) int {
	scaled := int(math.Round(v * 255))
	switch {
	case scaled < 0:
		return 0
	case scaled > 255:
		return 255
	default:
		return scaled
	}
}

// WritePPM writes the canvas in plain PPM (P3) format, wrapping color
// component lines at 70 characters as the format's readers expect.
func (c *Canvas) WritePPM(w io.Writer) error {
	out := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(out, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	for y := 0; y < c.Height; y++ {
		lineLen := 0
		for x := 0; x < c.Width; x++ {
			col := c.At(x, y)
			for _, component := range [3]int{clampByte(col.R), clampByte(col.G), clampByte(col.B)} {
				token := fmt.Sprintf("%d", component)
				if lineLen > 0 && lineLen+1+len(token) > 70 {
					if err := out.WriteByte('\n'); err != nil {
						return err
					}
					lineLen = 0
				} else if lineLen > 0 {
					if err := out.WriteByte(' '); err != nil {
						return err
					}
					lineLen++
				}
				if _, err := out.WriteString(token); err != nil {
					return err
				}
				lineLen += len(token)
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}

	return out.Flush()
}

// SavePNG renders the canvas to a PNG file at path.
func (c *Canvas) SavePNG(path string) error {
	ctx := gg.NewContext(c.Width, c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.At(x, y)
			ctx.SetRGB(clampUnit(col.R), clampUnit(col.G), clampUnit(col.B))
			ctx.SetPixel(x, y)
		}
	}
	return ctx.SavePNG(path)
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
