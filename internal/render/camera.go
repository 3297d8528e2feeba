package render

import (
	"math"

	"github.com/msealion/raytracer/internal/vecmath"
)

// ViewTransform builds the world-to-camera frame that places the
// camera at from, looking toward to, with up establishing which way is
// "up" in the resulting image. It is the orientation half of a
// Camera's transform.
func ViewTransform(from, to vecmath.Point, up vecmath.Vector) vecmath.Transform {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := vecmath.Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	translate := vecmath.NewTransform(vecmath.Translate(-from.X, -from.Y, -from.Z))
	return translate.Compose(vecmath.FromMatrix(orientation))
}

// Camera converts a pixel grid into primary rays through a pinhole
// viewport one unit in front of the camera's eye.
type Camera struct {
	HSize, VSize int
	FieldOfView  float64
	Transform    vecmath.Transform

	halfWidth, halfHeight float64
	pixelSize              float64
}

// NewCamera builds a Camera with the given pixel grid, horizontal field
// of view in radians, and world-to-camera transform.
func NewCamera(hsize, vsize int, fieldOfView float64, transform vecmath.Transform) *Camera {
	c := &Camera{HSize: hsize, VSize: vsize, FieldOfView: fieldOfView, Transform: transform}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)
	return c
}

// RayForPixel builds the world-space ray from the camera's eye through
// the center of pixel (px, py).
func (c *Camera) RayForPixel(px, py int) vecmath.Ray {
	return c.RayForSubPixel(px, py, 0.5, 0.5)
}

// RayForSubPixel builds the world-space ray from the camera's eye
// through an arbitrary sample location within pixel (px, py), given as
// fractional offsets in [0,1) from the pixel's top-left corner. Ray
// generators that sample a pixel more than once (e.g. for
// antialiasing) use this instead of RayForPixel.
func (c *Camera) RayForSubPixel(px, py int, fracX, fracY float64) vecmath.Ray {
	xOffset := (float64(px) + fracX) * c.pixelSize
	yOffset := (float64(py) + fracY) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inverse := c.Transform.Invert()
	pixel := inverse.ApplyPoint(vecmath.NewPoint(worldX, worldY, -1))
	origin := inverse.ApplyPoint(vecmath.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return vecmath.NewRay(origin, direction)
}
