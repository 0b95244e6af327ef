package quakeglobe

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrUnknownVariant = errors.New("unknown scene variant")

var (
	greyBackground  = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	blackBackground = color.RGBA{A: 0xff}

	markerRed    = color.RGBA{R: 230, G: 30, B: 30, A: 255}
	markerOrange = color.RGBA{R: 255, G: 140, B: 20, A: 255}
)

var variantNames = []string{"basic", "quakes", "detailed", "glow"}

// Variants lists the preset names in presentation order.
func Variants() []string {
	return append([]string(nil), variantNames...)
}

func baseScene() SceneConfig {
	return SceneConfig{
		GlobeRadius:  1,
		GlobeSectors: DefaultSphereSectors,
		GlobeStacks:  DefaultSphereStacks,
		Markers:      MarkerConfig{Style: MarkerNone},
		Camera: CameraConfig{
			Position: mgl64.Vec3{0, 0, 3},
			Target:   mgl64.Vec3{0, 0, 0},
			FOV:      DefaultFOV,
		},
		Light: LightConfig{
			Position:  mgl64.Vec3{8, 16, 8},
			Intensity: 9000,
			Range:     100,
		},
		Ambient:    DefaultAmbient,
		SpinRate:   DefaultSpinRate,
		Background: greyBackground,
	}
}

// Variant returns the preset configuration for name.
func Variant(name string) (SceneConfig, error) {
	cfg := baseScene()
	cfg.Name = name

	switch name {
	case "basic":
	case "quakes":
		cfg.Markers = MarkerConfig{Style: MarkerSphere, Sectors: 12, Stacks: 6, Color: markerRed}
	case "detailed":
		cfg.GlobeSectors, cfg.GlobeStacks = 72, 36
		cfg.Markers = MarkerConfig{Style: MarkerSphere, Sectors: 16, Stacks: 8, Color: markerRed}
	case "glow":
		cfg.GlobeSectors, cfg.GlobeStacks = 72, 36
		cfg.Markers = MarkerConfig{Style: MarkerIcoSphere, Subdivisions: 2, Color: markerOrange, Emissive: true}
		cfg.Bloom = BloomConfig{Enabled: true, Intensity: DefaultBloomIntensity, Passes: DefaultBloomPasses}
		cfg.Background = blackBackground
	default:
		return SceneConfig{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return cfg, nil
}
