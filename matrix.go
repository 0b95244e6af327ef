package quakeglobe

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 transform stored column first: ThisMatrix[col][row]. A point list
// is stored the same way, one row per point, so MultiplyBy and TransformObj share
// the layout.
type Matrix struct {
	ThisMatrix [][]float64
}

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

func NewMatrix() *Matrix {
	return &Matrix{
		ThisMatrix: make([][]float64, 0, 100),
	}
}

func NewMatrixFromData(aMatrix [][]float64) *Matrix {
	m := &Matrix{
		ThisMatrix: make([][]float64, len(aMatrix)),
	}
	for i := range aMatrix {
		m.ThisMatrix[i] = make([]float64, len(aMatrix[i]))
		copy(m.ThisMatrix[i], aMatrix[i])
	}
	return m
}

func newSquare() [][]float64 {
	m := make([][]float64, 4)
	for i := range m {
		m[i] = make([]float64, 4)
	}
	return m
}

func NewRotationMatrix(aRotation int, theta float64) *Matrix {
	m := newSquare()
	c, s := math.Cos(theta), math.Sin(theta)
	switch aRotation {
	case ROTX:
		m[0][0] = 1.0
		m[1][1] = c
		m[2][1] = -s
		m[1][2] = s
		m[2][2] = c
	case ROTY:
		m[0][0] = c
		m[2][0] = s
		m[0][2] = -s
		m[2][2] = c
		m[1][1] = 1.0
	case ROTZ:
		m[2][2] = 1.0
		m[0][0] = c
		m[1][0] = -s
		m[0][1] = s
		m[1][1] = c
	}
	m[3][3] = 1.0
	return &Matrix{ThisMatrix: m}
}

func IdentMatrix() *Matrix {
	m := newSquare()
	m[0][0], m[1][1], m[2][2], m[3][3] = 1.0, 1.0, 1.0, 1.0
	return &Matrix{ThisMatrix: m}
}

func TransMatrix(x, y, z float64) *Matrix {
	m := IdentMatrix()
	m.ThisMatrix[3][0] = x
	m.ThisMatrix[3][1] = y
	m.ThisMatrix[3][2] = z
	return m
}

func ScaleMatrix(s float64) *Matrix {
	m := newSquare()
	m[0][0], m[1][1], m[2][2], m[3][3] = s, s, s, 1.0
	return &Matrix{ThisMatrix: m}
}

// FromMat4 converts a column-major mgl64 matrix.
func FromMat4(m mgl64.Mat4) *Matrix {
	return NewMatrixFromData(
		[][]float64{
			{m[0], m[1], m[2], m[3]},
			{m[4], m[5], m[6], m[7]},
			{m[8], m[9], m[10], m[11]},
			{m[12], m[13], m[14], m[15]},
		},
	)
}

func FromQuat(q mgl64.Quat) *Matrix {
	return FromMat4(q.Mat4())
}

func (m *Matrix) AddRow(row []float64) {
	m.ThisMatrix = append(m.ThisMatrix, row)
}

// MultiplyBy returns m × aMatrix. aMatrix may also be a point list.
func (m *Matrix) MultiplyBy(aMatrix *Matrix) *Matrix {
	newMatrixData := make([][]float64, len(aMatrix.ThisMatrix))
	for i := range newMatrixData {
		newMatrixData[i] = make([]float64, 4)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < len(aMatrix.ThisMatrix); x++ {
			newMatrixData[x][y] = m.ThisMatrix[0][y]*aMatrix.ThisMatrix[x][0] +
				m.ThisMatrix[1][y]*aMatrix.ThisMatrix[x][1] +
				m.ThisMatrix[2][y]*aMatrix.ThisMatrix[x][2] +
				m.ThisMatrix[3][y]*aMatrix.ThisMatrix[x][3]
		}
	}
	return &Matrix{ThisMatrix: newMatrixData}
}

// TransformObj writes the transformed points of src into dest, which must have at
// least as many rows.
func (m *Matrix) TransformObj(src, dest *Matrix) {
	for x := 0; x < len(src.ThisMatrix); x++ {
		sx, sy, sz := src.ThisMatrix[x][0], src.ThisMatrix[x][1], src.ThisMatrix[x][2]
		dest.ThisMatrix[x][0] = m.ThisMatrix[0][0]*sx + m.ThisMatrix[1][0]*sy + m.ThisMatrix[2][0]*sz + m.ThisMatrix[3][0]
		dest.ThisMatrix[x][1] = m.ThisMatrix[0][1]*sx + m.ThisMatrix[1][1]*sy + m.ThisMatrix[2][1]*sz + m.ThisMatrix[3][1]
		dest.ThisMatrix[x][2] = m.ThisMatrix[0][2]*sx + m.ThisMatrix[1][2]*sy + m.ThisMatrix[2][2]*sz + m.ThisMatrix[3][2]
	}
}

// TransformNormals rotates direction vectors and renormalises them. Translation is
// ignored and the uniform scale of node transforms drops out.
func (m *Matrix) TransformNormals(src, dest *Matrix) {
	for x := 0; x < len(src.ThisMatrix); x++ {
		sx, sy, sz := src.ThisMatrix[x][0], src.ThisMatrix[x][1], src.ThisMatrix[x][2]

		nx := m.ThisMatrix[0][0]*sx + m.ThisMatrix[1][0]*sy + m.ThisMatrix[2][0]*sz
		ny := m.ThisMatrix[0][1]*sx + m.ThisMatrix[1][1]*sy + m.ThisMatrix[2][1]*sz
		nz := m.ThisMatrix[0][2]*sx + m.ThisMatrix[1][2]*sy + m.ThisMatrix[2][2]*sz
		if l := math.Sqrt(nx*nx + ny*ny + nz*nz); l > 0 {
			nx, ny, nz = nx/l, ny/l, nz/l
		}
		dest.ThisMatrix[x][0], dest.ThisMatrix[x][1], dest.ThisMatrix[x][2] = nx, ny, nz
	}
}

// TransformPoint applies the full transform to a single point.
func (m *Matrix) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		m.ThisMatrix[0][0]*p[0] + m.ThisMatrix[1][0]*p[1] + m.ThisMatrix[2][0]*p[2] + m.ThisMatrix[3][0],
		m.ThisMatrix[0][1]*p[0] + m.ThisMatrix[1][1]*p[1] + m.ThisMatrix[2][1]*p[2] + m.ThisMatrix[3][1],
		m.ThisMatrix[0][2]*p[0] + m.ThisMatrix[1][2]*p[1] + m.ThisMatrix[2][2]*p[2] + m.ThisMatrix[3][2],
	}
}

func (m *Matrix) Copy() *Matrix {
	return NewMatrixFromData(m.ThisMatrix)
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for i, row := range m.ThisMatrix {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, val := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}
