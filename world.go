package quakeglobe

import (
	"image/color"
)

// System runs once per frame with the elapsed time in seconds.
type System func(w *World, dt float64)

const DefaultAmbient = 0.2

type World struct {
	objects []*Node
	camera  *Camera
	lights  []*PointLight
	systems []System

	Ambient    float32
	Background color.RGBA
	Wireframe  bool

	store *FaceStore
}

func NewWorld3d() *World {
	return &World{
		Ambient:    DefaultAmbient,
		Background: greyBackground,
		store:      NewFaceStore(),
	}
}

func (w *World) AddObject(n *Node) {
	w.objects = append(w.objects, n)
}

func (w *World) Objects() []*Node {
	return w.objects
}

func (w *World) AddCamera(c *Camera) {
	w.camera = c
}

func (w *World) Camera() *Camera {
	return w.camera
}

func (w *World) AddLight(l *PointLight) {
	w.lights = append(w.lights, l)
}

func (w *World) Lights() []*PointLight {
	return w.lights
}

func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// Update runs every system in registration order.
func (w *World) Update(dt float64) {
	for _, s := range w.systems {
		s(w, dt)
	}
}

// Query returns every node in the scene graph carrying the tag.
func (w *World) Query(t Tag) []*Node {
	var found []*Node
	var visit func(n *Node)
	visit = func(n *Node) {
		if n.HasTag(t) {
			found = append(found, n)
		}
		for _, c := range n.children {
			visit(c)
		}
	}
	for _, n := range w.objects {
		visit(n)
	}
	return found
}

// SpinSystem turns every globe about its vertical axis at rate radians per second.
func SpinSystem(rate float64) System {
	return func(w *World, dt float64) {
		for _, n := range w.Query(TagGlobe) {
			n.RotateY(dt * rate)
		}
	}
}
