package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/smasonuk/quakeglobe/geo"
)

const (
	perlinAlpha     = 2.0
	perlinBeta      = 2.0
	perlinOctaves   = 4
	noiseFrequency  = 2.5
	seaLevel        = 0.05
	iceCapLatitude  = 72.0
	DefaultFallback = 512
)

var (
	deepOcean    = color.RGBA{R: 12, G: 38, B: 92, A: 255}
	shallowOcean = color.RGBA{R: 36, G: 90, B: 160, A: 255}
	lowland      = color.RGBA{R: 64, G: 128, B: 56, A: 255}
	highland     = color.RGBA{R: 140, G: 118, B: 78, A: 255}
	ice          = color.RGBA{R: 235, G: 240, B: 245, A: 255}
)

// Procedural builds an equirectangular land and ocean map from Perlin noise. The
// noise is sampled on the sphere so the map wraps without a seam.
func Procedural(width, height int, seed int64) *image.RGBA {
	width, height = max(width, 2), max(height, 1)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)

	for y := 0; y < height; y++ {
		lat := 90 - (float64(y)+0.5)/float64(height)*180
		for x := 0; x < width; x++ {
			lon := (float64(x)+0.5)/float64(width)*360 - 180
			pos := geo.Placement(lat, lon).Mul(noiseFrequency)
			n := p.Noise3D(pos[0], pos[1], pos[2])
			img.SetRGBA(x, y, surfaceColor(lat, n))
		}
	}
	return img
}

func surfaceColor(lat, n float64) color.RGBA {
	if math.Abs(lat) > iceCapLatitude {
		return ice
	}
	switch {
	case n < seaLevel-0.2:
		return deepOcean
	case n < seaLevel:
		return shallowOcean
	case n < seaLevel+0.25:
		return lowland
	default:
		return highland
	}
}
