package quakeglobe

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
)

// referenceIntensity is the point light intensity that gives full diffuse brightness
// at close range.
const referenceIntensity = 1000.0

type PointLight struct {
	Position  mgl64.Vec3
	Intensity float64
	Range     float64
	Color     color.RGBA
}

func NewPointLight(x, y, z, intensity, rng float64) *PointLight {
	return &PointLight{
		Position:  mgl64.Vec3{x, y, z},
		Intensity: intensity,
		Range:     rng,
		Color:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// diffuse is the Lambert contribution at a world space point and unit normal.
func (l *PointLight) diffuse(point, normal mgl64.Vec3) float32 {
	toLight := l.Position.Sub(point)
	dist := float32(toLight.Len())
	if dist == 0 {
		return 0
	}
	rng := float32(l.Range)
	if rng > 0 && dist >= rng {
		return 0
	}

	lambert := float32(normal.Dot(toLight)) / dist
	if lambert <= 0 {
		return 0
	}

	falloff := float32(1)
	if rng > 0 {
		d := dist / rng
		falloff = math32.Pow(1-d*d, 2)
	}
	strength := math32.Min(float32(l.Intensity/referenceIntensity), 1)
	return lambert * falloff * strength
}

// shade returns the brightness of a vertex: ambient plus every light, capped at 1.
func shade(lights []*PointLight, ambient float32, point, normal mgl64.Vec3) float32 {
	b := ambient
	for _, l := range lights {
		b += l.diffuse(point, normal)
	}
	return clampf(b, 0, 1)
}
