package quakeglobe

import "github.com/go-gl/mathgl/mgl64"

// Face is a triangle of a mesh, referencing its vertices by index.
type Face struct {
	PointIndices []int
	normal       mgl64.Vec3
}

func NewFace(a, b, c int) *Face {
	return &Face{PointIndices: []int{a, b, c}}
}

func (f *Face) GetNormal() mgl64.Vec3 {
	return f.normal
}

func (f *Face) createNormal(points *Matrix) {
	if len(f.PointIndices) < 3 {
		f.normal = mgl64.Vec3{0, 0, 1}
		return
	}
	p1 := rowVec(points, f.PointIndices[0])
	p2 := rowVec(points, f.PointIndices[1])
	p3 := rowVec(points, f.PointIndices[2])

	n := p2.Sub(p1).Cross(p3.Sub(p2))
	if n.Len() > 0 {
		n = n.Normalize()
	}
	f.normal = n
}

// orientOutward flips the winding when the face points towards the mesh centre.
// Only valid for meshes that are convex around their origin.
func (f *Face) orientOutward(points *Matrix) {
	f.createNormal(points)
	if f.normal.Dot(f.GetMidPoint(points)) < 0 {
		f.PointIndices[1], f.PointIndices[2] = f.PointIndices[2], f.PointIndices[1]
		f.normal = f.normal.Mul(-1)
	}
}

func (f *Face) GetMidPoint(points *Matrix) mgl64.Vec3 {
	if len(f.PointIndices) == 0 {
		return mgl64.Vec3{}
	}
	var sum mgl64.Vec3
	for _, idx := range f.PointIndices {
		sum = sum.Add(rowVec(points, idx))
	}
	return sum.Mul(1 / float64(len(f.PointIndices)))
}

func rowVec(m *Matrix, i int) mgl64.Vec3 {
	r := m.ThisMatrix[i]
	return mgl64.Vec3{r[0], r[1], r[2]}
}
