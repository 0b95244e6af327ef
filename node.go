package quakeglobe

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Tag marks nodes for per-frame systems.
type Tag string

const (
	TagGlobe  Tag = "globe"
	TagMarker Tag = "marker"
)

// Node is an element of the scene graph. Its transform is relative to the parent:
// scale, then orientation, then position.
type Node struct {
	Name     string
	Mesh     *Mesh
	Material *Material

	position    mgl64.Vec3
	orientation mgl64.Quat
	scale       float64

	parent   *Node
	children []*Node
	tags     map[Tag]struct{}

	// camera and world space copies of the mesh, refreshed every frame
	worldPoints  *Matrix
	worldNormals *Matrix
	camPoints    *Matrix
	camNormals   *Matrix
}

func NewNode(name string, mesh *Mesh, material *Material) *Node {
	return &Node{
		Name:        name,
		Mesh:        mesh,
		Material:    material,
		orientation: mgl64.QuatIdent(),
		scale:       1,
		tags:        make(map[Tag]struct{}),
	}
}

func (n *Node) AddTag(t Tag) *Node {
	n.tags[t] = struct{}{}
	return n
}

func (n *Node) HasTag(t Tag) bool {
	_, ok := n.tags[t]
	return ok
}

func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) SetPosition(x, y, z float64) {
	n.position = mgl64.Vec3{x, y, z}
}

func (n *Node) GetPosition() mgl64.Vec3 {
	return n.position
}

func (n *Node) SetScale(s float64) {
	n.scale = s
}

func (n *Node) Scale() float64 {
	return n.scale
}

func (n *Node) Orientation() mgl64.Quat {
	return n.orientation
}

func (n *Node) SetOrientation(q mgl64.Quat) {
	n.orientation = q.Normalize()
}

// RotateY turns the node about its parent's vertical axis, compounding onto the
// current orientation.
func (n *Node) RotateY(amountOfMovementInRads float64) {
	n.Rotate(amountOfMovementInRads, mgl64.Vec3{0, 1, 0})
}

func (n *Node) Rotate(angle float64, axis mgl64.Vec3) {
	n.orientation = mgl64.QuatRotate(angle, axis).Mul(n.orientation).Normalize()
}

func (n *Node) LocalMatrix() *Matrix {
	return TransMatrix(n.position[0], n.position[1], n.position[2]).
		MultiplyBy(FromQuat(n.orientation)).
		MultiplyBy(ScaleMatrix(n.scale))
}

func (n *Node) WorldMatrix() *Matrix {
	if n.parent == nil {
		return n.LocalMatrix()
	}
	return n.parent.WorldMatrix().MultiplyBy(n.LocalMatrix())
}

// WorldPosition is the node origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().TransformPoint(mgl64.Vec3{})
}

// Walk visits the node and its descendants depth first with their world matrices.
func (n *Node) Walk(fn func(node *Node, world *Matrix)) {
	n.walk(IdentMatrix(), fn)
}

func (n *Node) walk(parentWorld *Matrix, fn func(*Node, *Matrix)) {
	world := parentWorld.MultiplyBy(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// ApplyMatrixTemp fills the node's world and camera space buffers.
func (n *Node) ApplyMatrixTemp(world, view *Matrix) {
	if n.Mesh == nil {
		return
	}
	if n.worldPoints == nil || len(n.worldPoints.ThisMatrix) != n.Mesh.VertexCount() {
		n.worldPoints = n.Mesh.Points.Copy()
		n.worldNormals = n.Mesh.Normals.Copy()
		n.camPoints = n.Mesh.Points.Copy()
		n.camNormals = n.Mesh.Normals.Copy()
	}
	world.TransformObj(n.Mesh.Points, n.worldPoints)
	world.TransformNormals(n.Mesh.Normals, n.worldNormals)
	view.TransformObj(n.worldPoints, n.camPoints)
	view.TransformNormals(n.worldNormals, n.camNormals)
}

// Clone shares the mesh and material but not the transform, tags or children.
func (n *Node) Clone() *Node {
	c := NewNode(n.Name, n.Mesh, n.Material)
	c.position = n.position
	c.orientation = n.orientation
	c.scale = n.scale
	for t := range n.tags {
		c.tags[t] = struct{}{}
	}
	return c
}
