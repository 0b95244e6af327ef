package quakeglobe

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func verts(points ...mgl64.Vec3) []renderVertex {
	out := make([]renderVertex, len(points))
	for i, p := range points {
		out[i] = renderVertex{pos: p}
	}
	return out
}

func positions(vs []renderVertex) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = []float64{v.pos[0], v.pos[1], v.pos[2]}
	}
	return out
}

func TestClipPolygonAgainstNearPlane(t *testing.T) {
	near := NewNearPlane(10)

	testCases := []struct {
		name     string
		input    []renderVertex
		expected [][]float64
	}{
		{
			name:     "Polygon fully in front of near plane",
			input:    verts(mgl64.Vec3{0, 0, -20}, mgl64.Vec3{1, 0, -20}, mgl64.Vec3{0, 1, -20}),
			expected: [][]float64{{0, 0, -20}, {1, 0, -20}, {0, 1, -20}},
		},
		{
			name:     "Polygon fully behind near plane",
			input:    verts(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{1, 0, -5}, mgl64.Vec3{0, 1, -5}),
			expected: [][]float64{},
		},
		{
			name: "Polygon with one point in front",
			input: verts(
				mgl64.Vec3{0, 0, -15}, // Inside
				mgl64.Vec3{0, 1, -5},  // Outside
				mgl64.Vec3{1, 0, -5},  // Outside
			),
			expected: [][]float64{{0.5, 0, -10}, {0, 0, -15}, {0, 0.5, -10}},
		},
		{
			name: "Polygon with two points in front",
			input: verts(
				mgl64.Vec3{0, 0, -5},  // Outside
				mgl64.Vec3{0, 1, -15}, // Inside
				mgl64.Vec3{1, 0, -15}, // Inside
			),
			expected: [][]float64{{0.5, 0, -10}, {0, 0.5, -10}, {0, 1, -15}, {1, 0, -15}},
		},
		{
			name:     "Empty polygon",
			input:    nil,
			expected: [][]float64{},
		},
		{
			name:     "Polygon on the near plane",
			input:    verts(mgl64.Vec3{0, 0, -10}, mgl64.Vec3{1, 0, -10}, mgl64.Vec3{0, 1, -10}),
			expected: [][]float64{{0, 0, -10}, {1, 0, -10}, {0, 1, -10}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := positions(near.clipPolygon(tc.input))
			if !deepAlmostEqual(clipped, tc.expected) {
				t.Errorf("clipPolygon() = %v, want %v", clipped, tc.expected)
			}
		})
	}
}

func TestLineIntersectInterpolatesAttributes(t *testing.T) {
	near := NewNearPlane(10)
	p1 := renderVertex{pos: mgl64.Vec3{0, 0, 0}, u: 0, v: 1, shade: 0}
	p2 := renderVertex{pos: mgl64.Vec3{0, 0, -20}, u: 1, v: 0, shade: 1}

	got := near.lineIntersect(p1, p2)
	if !almostEqual(got.pos[2], -10) {
		t.Errorf("z = %f, want -10", got.pos[2])
	}
	if !almostEqual(got.u, 0.5) || !almostEqual(got.v, 0.5) {
		t.Errorf("uv = (%f, %f), want (0.5, 0.5)", got.u, got.v)
	}
	if !almostEqual(float64(got.shade), 0.5) {
		t.Errorf("shade = %f, want 0.5", got.shade)
	}
}

func TestLineIntersectParallel(t *testing.T) {
	near := NewNearPlane(10)
	p1 := renderVertex{pos: mgl64.Vec3{10, 10, -5}}
	p2 := renderVertex{pos: mgl64.Vec3{20, 20, -5}}

	if got := near.lineIntersect(p1, p2); got.pos != p1.pos {
		t.Errorf("lineIntersect() = %v, want p1 %v", got.pos, p1.pos)
	}
}

func TestPlaneFromPoint(t *testing.T) {
	p := NewPlaneFromPoint(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 5, 0})
	if d := p.PointOnPlane(mgl64.Vec3{3, 2, -1}); !almostEqual(d, 0) {
		t.Errorf("point on plane distance = %f, want 0", d)
	}
	if d := p.PointOnPlane(mgl64.Vec3{0, 5, 0}); !almostEqual(d, 3) {
		t.Errorf("distance = %f, want 3", d)
	}
}
