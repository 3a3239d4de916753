// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"maputils/math/vec"
)

// downwardCos is the cosine of the largest angle between a face normal and
// straight down for a face to count as a downward face.
const downwardCos = 0.985

// Nodraws marks faces which are hidden by other brushes as nodraw. A face
// is hidden if it is flush against a face of a single neighbour covering
// all of its vertices, or against a composite of coplanar neighbour faces.
// It returns the number of faces changed.
func (m *Map) Nodraws() int {
	n := m.nodrawsSingle()
	n += m.nodrawsComposite()
	m.log.Info("nodraw pass", "faces", n)
	return n
}

// hideable reports whether f may still be set to nodraw. Surface lights
// stay, they may point anywhere.
func hideable(f *Face) bool {
	return !f.IsNodraw() && !f.Surface.IsLight()
}

func (m *Map) setNodraw(b *Brush, f *Face, reason string) {
	f.SetNodraw(m.nodrawTexture)
	b.log.Debug("face set to nodraw", "face", f.ref.Face, "reason", reason)
}

func (m *Map) nodrawsSingle() int {
	n := 0
	for _, bi := range m.BrushList().Candidates {
		b := m.Brushes[bi]
		for _, bf := range b.Faces {
			if !hideable(bf) {
				continue
			}
			verts := b.VerticesOn(bf)
			if len(verts) < 3 {
				continue
			}
		Neighbours:
			for _, pi := range b.interactions {
				pib := m.Brushes[pi]
				for _, pif := range pib.Faces {
					if bf.IsFacingAndCoincidentTo(pif) && pib.AreInside(verts) {
						m.setNodraw(b, bf, "neighbour")
						n++
						break Neighbours
					}
				}
			}
		}
	}
	return n
}

func (m *Map) nodrawsComposite() int {
	cs := m.CompositeFaces()
	if len(cs) == 0 {
		return 0
	}
	n := 0
	for _, bi := range m.BrushList().Candidates {
		b := m.Brushes[bi]
		for _, f := range b.Faces {
			if !hideable(f) {
				continue
			}
			for _, c := range cs {
				if c.Covers(f) {
					m.setNodraw(b, f, "composite")
					n++
					break
				}
			}
		}
	}
	return n
}

// NodrawsDownward marks faces pointing down as nodraw. The camera never
// looks up, so these faces are never seen. Surface lights are kept.
func (m *Map) NodrawsDownward() int {
	down := vec.Vec3{X: 0, Y: 0, Z: -1}
	n := 0
	for _, bi := range m.BrushList().Candidates {
		b := m.Brushes[bi]
		for _, f := range b.Faces {
			if hideable(f) && vec.Dot(f.plane.N, down) >= downwardCos {
				m.setNodraw(b, f, "downward")
				n++
			}
		}
	}
	m.log.Info("downward nodraw pass", "faces", n)
	return n
}
