package quakeglobe

import "github.com/go-gl/mathgl/mgl64"

// Plane is Ax + By + Cz + D = 0. Points with a non-negative distance are in front.
type Plane struct {
	A, B, C, D float64
}

// NewNearPlane keeps camera space points at least nearZ in front of the camera.
func NewNearPlane(nearZ float64) *Plane {
	return &Plane{C: -1, D: -nearZ}
}

func NewPlaneFromPoint(p, normal mgl64.Vec3) *Plane {
	n := normal.Normalize()
	return &Plane{A: n[0], B: n[1], C: n[2], D: -n.Dot(p)}
}

func (p *Plane) PointOnPlane(point mgl64.Vec3) float64 {
	return p.A*point[0] + p.B*point[1] + p.C*point[2] + p.D
}

// renderVertex is a camera space vertex with the attributes carried through clipping.
type renderVertex struct {
	pos   mgl64.Vec3
	u, v  float64
	shade float32
}

// lineIntersect interpolates the vertex where the edge p1-p2 crosses the plane. If the
// edge is parallel to the plane p1 is returned.
func (p *Plane) lineIntersect(p1, p2 renderVertex) renderVertex {
	d1 := p.PointOnPlane(p1.pos)
	d2 := p.PointOnPlane(p2.pos)
	if d1 == d2 {
		return p1
	}
	t := d1 / (d1 - d2)
	return renderVertex{
		pos:   p1.pos.Add(p2.pos.Sub(p1.pos).Mul(t)),
		u:     p1.u + (p2.u-p1.u)*t,
		v:     p1.v + (p2.v-p1.v)*t,
		shade: p1.shade + (p2.shade-p1.shade)*float32(t),
	}
}

// clipPolygon returns the part of a convex polygon in front of the plane.
func (p *Plane) clipPolygon(poly []renderVertex) []renderVertex {
	if len(poly) == 0 {
		return nil
	}
	out := make([]renderVertex, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevIn := p.PointOnPlane(prev.pos) >= 0
	for _, cur := range poly {
		curIn := p.PointOnPlane(cur.pos) >= 0
		if curIn {
			if !prevIn {
				out = append(out, p.lineIntersect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, p.lineIntersect(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}
