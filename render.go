package quakeglobe

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

var outlineColor = color.RGBA{R: 50, G: 50, B: 50, A: 160}

// PaintObjects draws the scene into screen, far faces first.
func (w *World) PaintObjects(screen TriangleDrawer, batcher *PolygonBatcher, xsize, ysize int) {
	if w.camera == nil {
		return
	}
	w.collectFaces(float64(xsize), float64(ysize))

	batcher.SetTarget(screen)
	w.paintFaces(batcher, false)
	batcher.Flush()

	if w.Wireframe {
		solid := batcher.solid()
		for _, f := range w.store.faces {
			drawPolygonOutline(screen, f.vertices, 1.0, outlineColor, solid)
		}
	}
}

// collectFaces transforms every node and fills the face store in painter order.
func (w *World) collectFaces(screenWidth, screenHeight float64) {
	w.store.Reset()
	view := w.camera.GetMatrix()
	near := NewNearPlane(w.camera.NearZ())

	for _, root := range w.objects {
		root.Walk(func(n *Node, world *Matrix) {
			if n.Mesh == nil || n.Material == nil {
				return
			}
			n.ApplyMatrixTemp(world, view)
			w.collectNodeFaces(n, near, screenWidth, screenHeight)
		})
	}
	w.store.SortFacesByDistance()
}

func (w *World) collectNodeFaces(n *Node, near *Plane, screenWidth, screenHeight float64) {
	mat := n.Material
	tex := mat.Texture.Image()

	var texX, texY, texW, texH float64
	if tex != nil {
		b := tex.Bounds()
		texX, texY = float64(b.Min.X), float64(b.Min.Y)
		texW, texH = float64(b.Dx()), float64(b.Dy())
	}

	cr := float32(mat.BaseColor.R) / 255.0
	cg := float32(mat.BaseColor.G) / 255.0
	cb := float32(mat.BaseColor.B) / 255.0
	ca := float32(1)
	if mat.AlphaBlend {
		ca = float32(mat.BaseColor.A) / 255.0
	}

	poly := make([]renderVertex, 0, 4)
	for _, f := range n.Mesh.Faces {
		first := rowVec(n.camPoints, f.PointIndices[0])
		if !mat.DoubleSided && !facesCamera(n.camPoints, f, first) {
			continue
		}

		poly = poly[:0]
		var depth float64
		for _, idx := range f.PointIndices {
			p := rowVec(n.camPoints, idx)
			s := float32(1)
			if !mat.Emissive {
				s = shade(w.lights, w.Ambient, rowVec(n.worldPoints, idx), rowVec(n.worldNormals, idx))
			}
			uv := n.Mesh.UVs[idx]
			poly = append(poly, renderVertex{pos: p, u: uv[0], v: uv[1], shade: s})
			depth -= p[2]
		}

		clipped := near.clipPolygon(poly)
		if len(clipped) < 3 {
			continue
		}

		vertices := make([]ebiten.Vertex, len(clipped))
		for i, rv := range clipped {
			x, y := w.camera.ToScreen(rv.pos, screenWidth, screenHeight)
			srcX, srcY := float32(solidSrc), float32(solidSrc)
			if tex != nil {
				srcX = float32(texX + rv.u*texW)
				srcY = float32(texY + rv.v*texH)
			}
			vertices[i] = ebiten.Vertex{
				DstX:   x,
				DstY:   y,
				SrcX:   srcX,
				SrcY:   srcY,
				ColorR: cr * rv.shade,
				ColorG: cg * rv.shade,
				ColorB: cb * rv.shade,
				ColorA: ca,
			}
		}

		w.store.AddFace(&projectedFace{
			vertices: vertices,
			depth:    depth / float64(len(f.PointIndices)),
			source:   tex,
			emissive: mat.Emissive,
		})
	}
}

// facesCamera reports whether the triangle's front side is towards the camera, which
// sits at the camera space origin.
func facesCamera(camPoints *Matrix, f *Face, first mgl64.Vec3) bool {
	second := rowVec(camPoints, f.PointIndices[1])
	third := rowVec(camPoints, f.PointIndices[2])
	n := second.Sub(first).Cross(third.Sub(second))
	return n.Dot(first) < 0
}

// paintFaces queues the sorted faces. In the glow pass only emissive faces keep their
// colour; the rest are drawn black so they still hide what is behind them.
func (w *World) paintFaces(batcher *PolygonBatcher, glow bool) {
	var scratch []ebiten.Vertex
	for _, f := range w.store.faces {
		if !glow || f.emissive {
			batcher.AddPolygon(f.vertices, f.source)
			continue
		}
		scratch = append(scratch[:0], f.vertices...)
		for i := range scratch {
			scratch[i].ColorR, scratch[i].ColorG, scratch[i].ColorB = 0, 0, 0
		}
		batcher.AddPolygon(scratch, f.source)
	}
}
