package quakeglobe

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TriangleDrawer is the drawing surface. *ebiten.Image satisfies it.
type TriangleDrawer interface {
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
}

const maxBatchVertices = 1 << 15

// solidSrc is the source coordinate of the centre of the white sub image.
const solidSrc = 1.5

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// PolygonBatcher merges consecutive convex polygons that share a source image into
// as few DrawTriangles calls as possible. Draw order is preserved.
type PolygonBatcher struct {
	target   TriangleDrawer
	source   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	options  *ebiten.DrawTrianglesOptions

	// solid supplies the image used for untextured polygons
	solid func() *ebiten.Image
	calls int
}

func NewPolygonBatcher(target TriangleDrawer) *PolygonBatcher {
	return &PolygonBatcher{
		target:   target,
		vertices: make([]ebiten.Vertex, 0, 4096),
		indices:  make([]uint16, 0, 8192),
		options:  &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear},
		solid:    whiteSubImage,
	}
}

func (b *PolygonBatcher) SetTarget(target TriangleDrawer) {
	b.target = target
}

// AddPolygon queues a convex polygon, fan triangulated. A nil source draws solid.
func (b *PolygonBatcher) AddPolygon(polygon []ebiten.Vertex, source *ebiten.Image) {
	if len(polygon) < 3 {
		return
	}
	if source != b.source || len(b.vertices)+len(polygon) > maxBatchVertices {
		b.Flush()
		b.source = source
	}

	base := uint16(len(b.vertices))
	b.vertices = append(b.vertices, polygon...)
	for i := 2; i < len(polygon); i++ {
		b.indices = append(b.indices, base, base+uint16(i-1), base+uint16(i))
	}
}

func (b *PolygonBatcher) Flush() {
	if len(b.indices) == 0 {
		return
	}
	src := b.source
	if src == nil {
		src = b.solid()
	}
	b.target.DrawTriangles(b.vertices, b.indices, src, b.options)
	b.calls++
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// Calls reports how many DrawTriangles calls have been issued.
func (b *PolygonBatcher) Calls() int {
	return b.calls
}

// drawPolygonOutline strokes the outline of a projected polygon.
func drawPolygonOutline(screen TriangleDrawer, polygon []ebiten.Vertex, strokeWidth float32, clr color.RGBA, solid *ebiten.Image) {
	if len(polygon) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(polygon[0].DstX, polygon[0].DstY)
	for i := 1; i < len(polygon); i++ {
		path.LineTo(polygon[i].DstX, polygon[i].DstY)
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{Width: strokeWidth}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = solidSrc
		vertices[i].SrcY = solidSrc
	}

	screen.DrawTriangles(vertices, indices, solid, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
