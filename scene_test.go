package quakeglobe

import (
	"errors"
	"math"
	"testing"

	"github.com/smasonuk/quakeglobe/geo"
	"github.com/smasonuk/quakeglobe/quake"
)

func mustVariant(t *testing.T, name string) SceneConfig {
	t.Helper()
	cfg, err := Variant(name)
	if err != nil {
		t.Fatalf("Variant(%q): %v", name, err)
	}
	return cfg
}

func TestVariants(t *testing.T) {
	testCases := []struct {
		name          string
		globeVertices int
		markerFaces   int
		emissive      bool
		bloom         bool
	}{
		{"basic", 703, 0, false, false},
		{"quakes", 703, 120, false, false},
		{"detailed", 2701, 224, false, false},
		{"glow", 2701, 320, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scene := Build(mustVariant(t, tc.name), quake.DefaultCatalog())

			if got := scene.Globe.Mesh.VertexCount(); got != tc.globeVertices {
				t.Errorf("globe has %d vertices, want %d", got, tc.globeVertices)
			}
			if (scene.Bloom != nil) != tc.bloom {
				t.Errorf("bloom enabled = %v, want %v", scene.Bloom != nil, tc.bloom)
			}
			if tc.markerFaces == 0 {
				if len(scene.Markers) != 0 {
					t.Errorf("got %d markers, want none", len(scene.Markers))
				}
				return
			}
			if len(scene.Markers) != len(quake.DefaultCatalog()) {
				t.Fatalf("got %d markers, want one per event", len(scene.Markers))
			}
			m := scene.Markers[0]
			if got := m.Mesh.FaceCount(); got != tc.markerFaces {
				t.Errorf("marker mesh has %d faces, want %d", got, tc.markerFaces)
			}
			if m.Material.Emissive != tc.emissive {
				t.Errorf("marker emissive = %v, want %v", m.Material.Emissive, tc.emissive)
			}
		})
	}
}

func TestVariantCommonSettings(t *testing.T) {
	for _, name := range Variants() {
		cfg := mustVariant(t, name)
		scene := Build(cfg, nil)
		w := scene.World

		if p := w.Camera().GetPosition(); !vecAlmostEqual(p, cfg.Camera.Position, 1e-12) || p[2] != 3 {
			t.Errorf("%s: camera at %v", name, p)
		}
		if len(w.Lights()) != 1 || w.Lights()[0].Intensity != 9000 || w.Lights()[0].Range != 100 {
			t.Errorf("%s: unexpected light setup", name)
		}
		if !scene.Globe.Material.DoubleSided || !scene.Globe.Material.AlphaBlend {
			t.Errorf("%s: globe material should be double sided with alpha blending", name)
		}
		if got := w.Query(TagGlobe); len(got) != 1 || got[0] != scene.Globe {
			t.Errorf("%s: Query(globe) = %v", name, got)
		}
	}
}

func TestUnknownVariant(t *testing.T) {
	_, err := Variant("wireframe")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Variant(wireframe) error = %v, want ErrUnknownVariant", err)
	}
}

func TestBuildPlacesMarkers(t *testing.T) {
	cfg := mustVariant(t, "quakes")
	cfg.GlobeRadius = 2
	events := []quake.Event{
		quake.NewEvent(0, 0, 10, 6.0),
		quake.NewEvent(38.3, 142.4, 29, 9.1),
	}

	scene := Build(cfg, events)

	for i, ev := range events {
		m := scene.Markers[i]
		if m.Parent() != scene.Globe || !m.HasTag(TagMarker) {
			t.Fatalf("marker %d not a tagged child of the globe", i)
		}
		want := geo.Placement(ev.Latitude(), ev.Longitude()).Mul(2)
		if got := m.WorldPosition(); !vecAlmostEqual(got, want, 1e-9) {
			t.Errorf("marker %d at %v, want %v", i, got, want)
		}
		if !almostEqual(m.Scale(), ev.Magnitude()/20) {
			t.Errorf("marker %d scale = %f, want %f", i, m.Scale(), ev.Magnitude()/20)
		}
	}

	if scene.Markers[0].Mesh != scene.Markers[1].Mesh {
		t.Error("markers should share one mesh")
	}
}

func TestMarkersRotateWithGlobe(t *testing.T) {
	scene := Build(mustVariant(t, "quakes"), []quake.Event{quake.NewEvent(0, 0, 0, 5)})

	// two seconds at half a radian per second turns the globe one radian
	scene.World.Update(2)

	want := geo.Placement(0, 180/math.Pi)
	if got := scene.Markers[0].WorldPosition(); !vecAlmostEqual(got, want, 1e-9) {
		t.Errorf("marker at %v, want %v", got, want)
	}
}
