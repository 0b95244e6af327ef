package quakeglobe

import "github.com/hajimehoshi/ebiten/v2"

type drawCall struct {
	vertices []ebiten.Vertex
	indices  []uint16
	img      *ebiten.Image
}

// recordingDrawer is a TriangleDrawer that keeps copies of what it is asked to draw.
type recordingDrawer struct {
	calls []drawCall
}

func (r *recordingDrawer) DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions) {
	r.calls = append(r.calls, drawCall{
		vertices: append([]ebiten.Vertex(nil), vertices...),
		indices:  append([]uint16(nil), indices...),
		img:      img,
	})
}

func (r *recordingDrawer) triangles() int {
	n := 0
	for _, c := range r.calls {
		n += len(c.indices) / 3
	}
	return n
}

// newTestBatcher never touches the GPU: solid polygons are drawn with a nil image.
func newTestBatcher(target TriangleDrawer) *PolygonBatcher {
	b := NewPolygonBatcher(target)
	b.solid = func() *ebiten.Image { return nil }
	return b
}
