package quakeglobe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/quakeglobe/geo"
)

const (
	DefaultSphereSectors = 36
	DefaultSphereStacks  = 18
)

// Mesh is an indexed triangle mesh. Points and Normals hold one row per vertex
// ({x, y, z, 1} and {x, y, z, 0}); UVs are texture coordinates in 0..1.
type Mesh struct {
	Points  *Matrix
	Normals *Matrix
	UVs     [][2]float64
	Faces   []*Face

	pointIndex map[vertexKey]int
}

type vertexKey struct {
	x, y, z float64
	u, v    float64
}

func NewMesh() *Mesh {
	return &Mesh{
		Points:     NewMatrix(),
		Normals:    NewMatrix(),
		pointIndex: make(map[vertexKey]int),
	}
}

// AddVertex returns the index of the vertex, reusing an existing one with the same
// position and texture coordinate.
func (m *Mesh) AddVertex(pos, normal mgl64.Vec3, u, v float64) int {
	key := vertexKey{pos[0], pos[1], pos[2], u, v}
	if index, found := m.pointIndex[key]; found {
		return index
	}

	m.Points.AddRow([]float64{pos[0], pos[1], pos[2], 1})
	m.Normals.AddRow([]float64{normal[0], normal[1], normal[2], 0})
	m.UVs = append(m.UVs, [2]float64{u, v})
	index := len(m.Points.ThisMatrix) - 1
	m.pointIndex[key] = index
	return index
}

func (m *Mesh) AddFace(a, b, c int) *Face {
	f := NewFace(a, b, c)
	f.createNormal(m.Points)
	m.Faces = append(m.Faces, f)
	return f
}

func (m *Mesh) VertexCount() int {
	return len(m.Points.ThisMatrix)
}

func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// NewUVSphere builds a latitude/longitude sphere. Vertices sit at geo.Placement of
// each grid line crossing so a texture in equirectangular projection lines up with
// markers placed by the same function.
func NewUVSphere(radius float64, sectors, stacks int) *Mesh {
	if sectors < 3 {
		sectors = 3
	}
	if stacks < 2 {
		stacks = 2
	}
	m := NewMesh()

	grid := make([][]int, stacks+1)
	for i := 0; i <= stacks; i++ {
		lat := 90 - 180*float64(i)/float64(stacks)
		grid[i] = make([]int, sectors+1)
		for j := 0; j <= sectors; j++ {
			lon := -180 + 360*float64(j)/float64(sectors)
			n := geo.Placement(lat, lon)
			u, v := geo.TextureUV(lat, lon)
			grid[i][j] = m.AddVertex(n.Mul(radius), n, u, v)
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			a, b := grid[i][j], grid[i][j+1]
			c, d := grid[i+1][j], grid[i+1][j+1]
			if i != 0 {
				m.addOutwardFace(a, c, b)
			}
			if i != stacks-1 {
				m.addOutwardFace(b, c, d)
			}
		}
	}
	return m
}

// NewIcoSphere subdivides an icosahedron. Each subdivision quadruples the faces.
func NewIcoSphere(radius float64, subdivisions int) *Mesh {
	if subdivisions < 0 {
		subdivisions = 0
	}
	t := (1 + math.Sqrt(5)) / 2
	corners := []mgl64.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	tris := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	m := NewMesh()
	add := func(p mgl64.Vec3) int {
		n := p.Normalize()
		u, v := sphereUV(n)
		return m.AddVertex(n.Mul(radius), n, u, v)
	}
	idx := make([]int, len(corners))
	for i, c := range corners {
		idx[i] = add(c)
	}
	for i := range tris {
		for k := range tris[i] {
			tris[i][k] = idx[tris[i][k]]
		}
	}

	// midpoints shared by neighbouring triangles collapse through AddVertex
	for s := 0; s < subdivisions; s++ {
		next := make([][3]int, 0, len(tris)*4)
		for _, tri := range tris {
			a, b, c := rowVec(m.Points, tri[0]), rowVec(m.Points, tri[1]), rowVec(m.Points, tri[2])
			ab := add(a.Add(b))
			bc := add(b.Add(c))
			ca := add(c.Add(a))
			next = append(next,
				[3]int{tri[0], ab, ca},
				[3]int{tri[1], bc, ab},
				[3]int{tri[2], ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		tris = next
	}

	for _, tri := range tris {
		m.addOutwardFace(tri[0], tri[1], tri[2])
	}
	return m
}

func (m *Mesh) addOutwardFace(a, b, c int) {
	f := NewFace(a, b, c)
	f.orientOutward(m.Points)
	m.Faces = append(m.Faces, f)
}

// sphereUV inverts geo.Placement for the texture coordinate of a unit direction.
func sphereUV(n mgl64.Vec3) (float64, float64) {
	lat := math.Asin(math.Max(-1, math.Min(1, n[1]))) * 180 / math.Pi
	lon := math.Atan2(n[0], n[2]) * 180 / math.Pi
	return geo.TextureUV(lat, lon)
}
