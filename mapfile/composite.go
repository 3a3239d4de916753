// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"github.com/chewxy/math32"

	"maputils/geom"
	"maputils/math/vec"
)

// EdgeCrossing classifies how the edges of a face cross a composite face.
type EdgeCrossing int

const (
	// EdgeNone means no edge of the face crosses a member edge.
	EdgeNone EdgeCrossing = iota
	// EdgeInternal means all crossings are on seams between members.
	EdgeInternal
	// EdgeExternal means an edge leaves the composite.
	EdgeExternal
)

func (e EdgeCrossing) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeInternal:
		return "internal"
	default:
		return "external"
	}
}

const probePoints = 8

// CompositeFace is a set of coplanar faces of different brushes which
// touch each other and together form one larger surface.
type CompositeFace struct {
	Members []FaceRef

	m *Map
}

func (c *CompositeFace) face(i int) *Face {
	return c.m.Face(c.Members[i])
}

func (c *CompositeFace) brush(i int) *Brush {
	return c.m.Brushes[c.Members[i].Brush]
}

// Plane returns the plane shared by all members.
func (c *CompositeFace) Plane() geom.Plane {
	return c.face(0).plane
}

func (c *CompositeFace) contains(r FaceRef) bool {
	for _, o := range c.Members {
		if o == r {
			return true
		}
	}
	return false
}

func (c *CompositeFace) hasBrush(b int) bool {
	for _, o := range c.Members {
		if o.Brush == b {
			return true
		}
	}
	return false
}

func (c *CompositeFace) IsFacingAndCoincidentTo(f *Face) bool {
	return c.Plane().IsFacingAndCoincidentTo(f.plane)
}

// AreInsideParentBrushes reports whether every point is inside at least one
// of the member's brushes.
func (c *CompositeFace) AreInsideParentBrushes(ps []vec.Vec3) bool {
	for _, p := range ps {
		if !c.insideAny(p) {
			return false
		}
	}
	return true
}

func (c *CompositeFace) insideAny(p vec.Vec3) bool {
	for i := range c.Members {
		if c.brush(i).InsideInclusive(p) {
			return true
		}
	}
	return false
}

type crossing struct {
	member int
	at     vec.Vec3
}

// CrossesEdge intersects the edges of f with those of every member. A
// crossing shared by two members is on the seam between them. Any other
// crossing means f reaches outside of the composite.
func (c *CompositeFace) CrossesEdge(f *Face) EdgeCrossing {
	var cs []crossing
	for _, e := range f.winding.Edges() {
		for i := range c.Members {
			for _, me := range c.face(i).winding.Edges() {
				if p, ok := e.IntersectEdge(me); ok {
					cs = append(cs, crossing{i, p})
				}
			}
		}
	}
	if len(cs) == 0 {
		return EdgeNone
	}
	for i, a := range cs {
		paired := false
		for j, b := range cs {
			if i != j && a.member != b.member && vec.Near(a.at, b.at, c.m.eps) {
				paired = true
				break
			}
		}
		if !paired {
			return EdgeExternal
		}
	}
	return EdgeInternal
}

// CompositeFaceVerticesAreOutside reports whether the member vertices
// strictly within f are surrounded by members. A vertex next to an area
// no member covers means f is not hidden completely.
func (c *CompositeFace) CompositeFaceVerticesAreOutside(f *Face) bool {
	u, v := f.plane.Basis()
	for i := range c.Members {
		for _, p := range c.face(i).winding {
			if !f.winding.ContainsInterior(f.plane.N, p) {
				continue
			}
			for k := 0; k < probePoints; k++ {
				a := 2 * math32.Pi * float32(k) / probePoints
				d := vec.Add(u.Scale(math32.Cos(a)), v.Scale(math32.Sin(a)))
				if !c.insideAny(vec.Add(p, d.Scale(c.m.probeDistance))) {
					return false
				}
			}
		}
	}
	return true
}

// Covers reports whether f is hidden by the composite.
func (c *CompositeFace) Covers(f *Face) bool {
	if c.hasBrush(f.ref.Brush) {
		return false
	}
	mask := c.m.Brushes[f.ref.Brush].Content()
	for i := range c.Members {
		if !c.brush(i).Content().Equal(mask) {
			return false
		}
	}
	return c.IsFacingAndCoincidentTo(f) &&
		len(f.winding) >= 3 &&
		c.AreInsideParentBrushes(f.winding) &&
		c.CrossesEdge(f) != EdgeExternal &&
		c.CompositeFaceVerticesAreOutside(f)
}

// facesTouch reports whether a vertex of one face is within the brush of
// the other.
func (m *Map) facesTouch(a, b *Face) bool {
	ba, bb := m.Brushes[a.ref.Brush], m.Brushes[b.ref.Brush]
	for _, p := range a.winding {
		if bb.InsideInclusive(p) {
			return true
		}
	}
	for _, p := range b.winding {
		if ba.InsideInclusive(p) {
			return true
		}
	}
	return false
}

// CompositeFaces groups the faces of the candidate brushes into composites
// of at least two members. A face belongs to at most one composite.
func (m *Map) CompositeFaces() []*CompositeFace {
	l := m.BrushList()
	used := make(map[FaceRef]bool)
	var r []*CompositeFace
	for _, bi := range l.Candidates {
		for _, seed := range m.Brushes[bi].Faces {
			if used[seed.ref] || len(seed.winding) < 3 {
				continue
			}
			c := &CompositeFace{Members: []FaceRef{seed.ref}, m: m}
			for n := 0; n < len(c.Members); n++ {
				member := m.Face(c.Members[n])
				for _, oi := range m.Brushes[member.ref.Brush].interactions {
					if c.hasBrush(oi) {
						continue
					}
					for _, f := range m.Brushes[oi].Faces {
						if used[f.ref] || len(f.winding) < 3 || c.contains(f.ref) {
							continue
						}
						if seed.plane.IsParallelAndCoincidentTo(f.plane) && m.facesTouch(member, f) {
							c.Members = append(c.Members, f.ref)
							break
						}
					}
				}
			}
			if len(c.Members) < 2 {
				continue
			}
			for _, ref := range c.Members {
				used[ref] = true
			}
			r = append(r, c)
		}
	}
	return r
}
