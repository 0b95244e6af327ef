package quakeglobe

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCoordinateConversion(t *testing.T) {
	width := 800.0
	height := 600.0
	cam := NewCameraLookAt(mgl64.Vec3{0, 0, 3}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})

	testPoints := []struct {
		name string
		p    mgl64.Vec3
	}{
		{"Center point", mgl64.Vec3{0, 0, -50}},
		{"Arbitrary point", mgl64.Vec3{15, -25, -75}},
		{"Point with large z", mgl64.Vec3{100, 200, -1000}},
		{"Point close to the near plane", mgl64.Vec3{0.01, 0.02, -0.11}},
	}

	for _, tc := range testPoints {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := cam.ToScreen(tc.p, width, height)
			back := cam.FromScreen(sx, sy, -tc.p[2], width, height)

			if !vecAlmostEqual(back, tc.p, 1e-3*math.Max(1, -tc.p[2])) {
				t.Errorf("Coordinate conversion failed. Original: %v, After converting back: %v", tc.p, back)
			}
		})
	}
}

func TestToScreenOrientation(t *testing.T) {
	cam := NewCameraLookAt(mgl64.Vec3{0, 0, 3}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})

	x, y := cam.ToScreen(mgl64.Vec3{0, 0, -5}, 800, 600)
	if x != 400 || y != 300 {
		t.Errorf("centre projects to (%f, %f), want (400, 300)", x, y)
	}

	// up in camera space is up on screen, which has y growing downwards
	_, upY := cam.ToScreen(mgl64.Vec3{0, 1, -5}, 800, 600)
	if upY >= 300 {
		t.Errorf("point above the axis projects to y = %f, want < 300", upY)
	}

	// at the edge of the vertical field of view a point reaches the top of the screen
	half := math.Tan(cam.fovY / 2)
	_, topY := cam.ToScreen(mgl64.Vec3{0, half * 5, -5}, 800, 600)
	if !almostEqual(float64(topY), 0) {
		t.Errorf("top of the frustum projects to y = %f, want 0", topY)
	}
}

func TestCameraMatrix(t *testing.T) {
	cam := NewCameraLookAt(mgl64.Vec3{0, 0, 3}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})

	if p := cam.GetMatrix().TransformPoint(cam.GetPosition()); !vecAlmostEqual(p, mgl64.Vec3{}, 1e-9) {
		t.Errorf("camera position in camera space = %v, want origin", p)
	}
	if p := cam.GetMatrix().TransformPoint(mgl64.Vec3{}); !vecAlmostEqual(p, mgl64.Vec3{0, 0, -3}, 1e-9) {
		t.Errorf("target in camera space = %v, want (0, 0, -3)", p)
	}

	cam.SetCameraPosition(3, 0, 0)
	if p := cam.GetMatrix().TransformPoint(mgl64.Vec3{}); !vecAlmostEqual(p, mgl64.Vec3{0, 0, -3}, 1e-9) {
		t.Errorf("target after moving = %v, want (0, 0, -3)", p)
	}
}

func TestSetFOVIgnoresInvalidValues(t *testing.T) {
	cam := NewCameraLookAt(mgl64.Vec3{0, 0, 3}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	before := cam.fovY

	for _, deg := range []float64{0, -10, 180, 270} {
		cam.SetFOV(deg)
		if cam.fovY != before {
			t.Errorf("SetFOV(%f) changed the field of view", deg)
		}
	}

	cam.SetFOV(90)
	if !almostEqual(cam.fovY, math.Pi/2) {
		t.Errorf("fovY = %f, want pi/2", cam.fovY)
	}
}
