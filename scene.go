package quakeglobe

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/smasonuk/quakeglobe/geo"
	"github.com/smasonuk/quakeglobe/quake"
)

// DefaultSpinRate is the globe's angular speed in radians per second.
const DefaultSpinRate = 0.5

type MarkerStyle string

const (
	MarkerNone      MarkerStyle = "none"
	MarkerSphere    MarkerStyle = "sphere"
	MarkerIcoSphere MarkerStyle = "icosphere"
)

type MarkerConfig struct {
	Style        MarkerStyle
	Sectors      int
	Stacks       int
	Subdivisions int
	Color        color.RGBA
	Emissive     bool
}

type CameraConfig struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	FOV      float64
}

type LightConfig struct {
	Position  mgl64.Vec3
	Intensity float64
	Range     float64
}

type BloomConfig struct {
	Enabled   bool
	Intensity float64
	Passes    int
}

// SceneConfig describes one variant of the globe scene.
type SceneConfig struct {
	Name         string
	GlobeRadius  float64
	GlobeSectors int
	GlobeStacks  int
	TexturePath  string
	Markers      MarkerConfig
	Camera       CameraConfig
	Light        LightConfig
	Ambient      float32
	SpinRate     float64
	Bloom        BloomConfig
	Background   color.RGBA
}

// Scene is a built world plus the handles the game loop needs.
type Scene struct {
	Config  SceneConfig
	World   *World
	Globe   *Node
	Markers []*Node
	Texture *TextureHandle
	Bloom   *Bloom
}

type buildOptions struct {
	logger zerolog.Logger
}

type BuildOption func(*buildOptions)

func WithLogger(l zerolog.Logger) BuildOption {
	return func(o *buildOptions) {
		o.logger = l
	}
}

// Build assembles the world for cfg with one marker per event.
func Build(cfg SceneConfig, events []quake.Event, opts ...BuildOption) *Scene {
	o := buildOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	radius := cfg.GlobeRadius
	if radius <= 0 {
		radius = 1
	}

	world := NewWorld3d()
	world.Ambient = cfg.Ambient
	world.Background = cfg.Background

	cam := NewCameraLookAt(cfg.Camera.Position, cfg.Camera.Target, mgl64.Vec3{0, 1, 0})
	if cfg.Camera.FOV > 0 {
		cam.SetFOV(cfg.Camera.FOV)
	}
	world.AddCamera(cam)
	world.AddLight(NewPointLight(
		cfg.Light.Position[0], cfg.Light.Position[1], cfg.Light.Position[2],
		cfg.Light.Intensity, cfg.Light.Range,
	))

	tex := NewTextureHandle(cfg.TexturePath)
	globeMat := NewTexturedMaterial(tex)
	globeMat.DoubleSided = true
	globeMat.AlphaBlend = true

	globeMesh := NewUVSphere(radius, cfg.GlobeSectors, cfg.GlobeStacks)
	o.logger.Debug().
		Str("scene", cfg.Name).
		Int("vertices", globeMesh.VertexCount()).
		Int("faces", globeMesh.FaceCount()).
		Msg("globe mesh built")

	globe := NewNode("globe", globeMesh, globeMat).AddTag(TagGlobe)
	world.AddObject(globe)

	scene := &Scene{
		Config:  cfg,
		World:   world,
		Globe:   globe,
		Texture: tex,
	}

	if markerMesh := newMarkerMesh(cfg.Markers); markerMesh != nil {
		o.logger.Debug().
			Str("style", string(cfg.Markers.Style)).
			Int("vertices", markerMesh.VertexCount()).
			Int("faces", markerMesh.FaceCount()).
			Int("events", len(events)).
			Msg("marker mesh built")

		markerMat := NewColorMaterial(cfg.Markers.Color)
		markerMat.Emissive = cfg.Markers.Emissive
		for i, ev := range events {
			m := NewNode(fmt.Sprintf("event-%d", i), markerMesh, markerMat).AddTag(TagMarker)
			p := geo.Placement(ev.Latitude(), ev.Longitude()).Mul(radius)
			m.SetPosition(p[0], p[1], p[2])
			m.SetScale(ev.MarkerRadius())
			globe.AddChild(m)
			scene.Markers = append(scene.Markers, m)
		}
	}

	spin := cfg.SpinRate
	if spin == 0 {
		spin = DefaultSpinRate
	}
	world.AddSystem(SpinSystem(spin))

	if cfg.Bloom.Enabled {
		scene.Bloom = NewBloom(cfg.Bloom.Intensity, cfg.Bloom.Passes)
	}
	return scene
}

// newMarkerMesh returns the unit mesh shared by every marker, or nil for no markers.
func newMarkerMesh(mc MarkerConfig) *Mesh {
	switch mc.Style {
	case MarkerSphere:
		return NewUVSphere(1, mc.Sectors, mc.Stacks)
	case MarkerIcoSphere:
		return NewIcoSphere(1, mc.Subdivisions)
	default:
		return nil
	}
}
