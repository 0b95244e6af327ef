package quakeglobe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/quakeglobe/geo"
)

const (
	DefaultFOV   = 45.0
	DefaultNearZ = 0.1
)

// Camera looks from a position towards a target. Camera space follows mgl64.LookAtV:
// the camera sits at the origin looking down -Z with +Y up.
type Camera struct {
	camMatrixRev   *Matrix
	cameraPosition mgl64.Vec3
	target         mgl64.Vec3
	up             mgl64.Vec3
	fovY           float64
	nearZ          float64
}

func NewCameraLookAt(camPos, lookAt, up mgl64.Vec3) *Camera {
	c := &Camera{
		cameraPosition: camPos,
		target:         lookAt,
		up:             up,
		fovY:           geo.DegreesToRadians(DefaultFOV),
		nearZ:          DefaultNearZ,
	}
	c.updateMatrix()
	return c
}

func (c *Camera) updateMatrix() {
	c.camMatrixRev = FromMat4(mgl64.LookAtV(c.cameraPosition, c.target, c.up))
}

func (c *Camera) GetMatrix() *Matrix {
	return c.camMatrixRev
}

func (c *Camera) GetPosition() mgl64.Vec3 {
	return c.cameraPosition
}

func (c *Camera) SetCameraPosition(x, y, z float64) {
	c.cameraPosition = mgl64.Vec3{x, y, z}
	c.updateMatrix()
}

func (c *Camera) LookAt(lookAt mgl64.Vec3) {
	c.target = lookAt
	c.updateMatrix()
}

// SetFOV sets the vertical field of view in degrees.
func (c *Camera) SetFOV(degrees float64) {
	if degrees <= 0 || degrees >= 180 {
		return
	}
	c.fovY = geo.DegreesToRadians(degrees)
}

func (c *Camera) NearZ() float64 {
	return c.nearZ
}

// focalLength is the projection scale in pixels for a viewport height.
func (c *Camera) focalLength(screenHeight float64) float64 {
	return (screenHeight / 2) / math.Tan(c.fovY/2)
}

// ToScreen projects a camera space point. Points must be in front of the near plane.
func (c *Camera) ToScreen(p mgl64.Vec3, screenWidth, screenHeight float64) (float32, float32) {
	f := c.focalLength(screenHeight)
	depth := -p[2]
	x := screenWidth/2 + f*p[0]/depth
	y := screenHeight/2 - f*p[1]/depth
	return float32(x), float32(y)
}

// FromScreen is the inverse of ToScreen for a known camera space depth.
func (c *Camera) FromScreen(sx, sy float32, depth, screenWidth, screenHeight float64) mgl64.Vec3 {
	f := c.focalLength(screenHeight)
	x := (float64(sx) - screenWidth/2) * depth / f
	y := -(float64(sy) - screenHeight/2) * depth / f
	return mgl64.Vec3{x, y, -depth}
}
