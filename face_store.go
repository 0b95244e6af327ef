package quakeglobe

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// projectedFace is a clipped, projected polygon waiting to be drawn.
type projectedFace struct {
	vertices []ebiten.Vertex
	depth    float64
	source   *ebiten.Image
	emissive bool
}

// FaceStore collects projected faces for painter ordering.
type FaceStore struct {
	faces []*projectedFace
}

func NewFaceStore() *FaceStore {
	return &FaceStore{faces: make([]*projectedFace, 0, 1024)}
}

func (fs *FaceStore) AddFace(f *projectedFace) {
	fs.faces = append(fs.faces, f)
}

func (fs *FaceStore) GetFace(i int) *projectedFace {
	return fs.faces[i]
}

func (fs *FaceStore) FaceCount() int {
	return len(fs.faces)
}

func (fs *FaceStore) Reset() {
	fs.faces = fs.faces[:0]
}

// SortFacesByDistance puts the faces farthest from the camera first.
func (fs *FaceStore) SortFacesByDistance() {
	sort.SliceStable(fs.faces, func(i, j int) bool {
		return fs.faces[i].depth > fs.faces[j].depth
	})
}
