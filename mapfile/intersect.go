// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"

	"maputils/geom"
)

// windingIntersects reports whether an edge of w passes through a face of
// b. Crossings on an edge of b do not count.
func windingIntersects(w geom.Winding, b *Brush) bool {
	for _, bf := range b.Faces {
		for _, e := range w.Edges() {
			if x, ok := e.IntersectPlane(bf.plane); ok && b.InsideInclusiveExcludingEdges(x) {
				return true
			}
		}
	}
	return false
}

// intersects reports whether a reaches into b: a vertex of a lies within
// b, or an edge of one of its faces passes through b.
func intersects(a, b *Brush) bool {
	for _, v := range a.vertices {
		if b.InsideExclusive(v) {
			return true
		}
	}
	for _, f := range a.Faces {
		if windingIntersects(f.winding, b) {
			return true
		}
	}
	return false
}

func (m *Map) brushName(b *Brush) string {
	return fmt.Sprintf("brush %d (entity %d)", b.number, m.EntityOf(b).Number())
}

// IntersectingBrushes comments every candidate brush which reaches into
// another candidate brush and returns them.
func (m *Map) IntersectingBrushes() []*Brush {
	l := m.BrushList()
	candidate := make([]bool, len(m.Brushes))
	for _, i := range l.Candidates {
		candidate[i] = true
	}
	var r []*Brush
	for _, i := range l.Candidates {
		b := m.Brushes[i]
		found := false
		for _, j := range m.near(l, b) {
			o := m.Brushes[j]
			if !candidate[j] || !intersects(b, o) {
				continue
			}
			b.AddComment("intersects with " + m.brushName(o))
			b.log.Warn("brush intersects", "with", o.number, "withEntity", m.EntityOf(o).Number(), "bounds", b.BoundsString())
			found = true
		}
		if found {
			r = append(r, b)
		}
	}
	m.log.Info("intersection check", "brushes", len(r))
	return r
}

// ContainedBrushes comments every brush lying completely within a
// candidate brush and returns them. Duplicated brushes contain each other.
// Origin brushes may be anywhere.
func (m *Map) ContainedBrushes() []*Brush {
	l := m.BrushList()
	inside := make([]bool, len(m.Brushes))
	for _, i := range l.Candidates {
		b := m.Brushes[i]
		for _, j := range m.near(l, b) {
			o := m.Brushes[j]
			if o.Content().IsOrigin() || !b.AreInside(o.vertices) {
				continue
			}
			o.AddComment("inside " + m.brushName(b))
			o.log.Warn("brush inside other brush", "brush", b.number, "brushEntity", m.EntityOf(b).Number(), "bounds", o.BoundsString())
			inside[j] = true
		}
	}
	var r []*Brush
	for i, b := range m.Brushes {
		if inside[i] {
			r = append(r, b)
		}
	}
	m.log.Info("contained brush check", "brushes", len(r))
	return r
}
