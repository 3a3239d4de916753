// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"

	"maputils/math/vec"
)

// BrushList holds the brushes which can hide faces of each other. Every
// candidate's interaction list names the other candidates on the same
// levels whose bounding boxes touch its own.
type BrushList struct {
	Candidates []int

	// every brush with vertices, candidate or not
	tree *rtreego.Rtree
}

type indexed struct {
	brush int
	rect  rtreego.Rect
}

func (i *indexed) Bounds() rtreego.Rect {
	return i.rect
}

// BrushList returns the candidate brushes with filled interaction lists.
// It is computed once per map, or again after level flags changed.
func (m *Map) BrushList() *BrushList {
	m.listOnce.Do(func() {
		m.list = m.buildBrushList()
	})
	return m.list
}

// isCandidate reports whether b is static, opaque, no clip or origin brush
// and not yet fully hidden.
func (m *Map) isCandidate(b *Brush) bool {
	if !m.Entities[b.entity].Class.ImmutableBrushes() {
		return false
	}
	if len(b.Faces) == 0 || len(b.vertices) == 0 {
		return false
	}
	allNodraw := true
	for _, f := range b.Faces {
		// content should be the same on all faces, but is not always
		if f.Content.IsSpecial() || f.Surface.IsTransparent() {
			return false
		}
		allNodraw = allNodraw && f.IsNodraw()
	}
	return !allNodraw
}

func (m *Map) candidates() []int {
	var r []int
	for i, b := range m.Brushes {
		if m.isCandidate(b) {
			r = append(r, i)
		}
	}
	return r
}

// boxesTouch reports whether the boxes overlap or are at most eps apart on
// every axis.
func boxesTouch(amin, amax, bmin, bmax vec.Vec3, eps float32) bool {
	for i := 0; i < 3; i++ {
		if amin.Idx(i) > bmax.Idx(i)+eps || bmin.Idx(i) > amax.Idx(i)+eps {
			return false
		}
	}
	return true
}

func (m *Map) interacts(a, b *Brush) bool {
	return a != b &&
		boxesTouch(a.min, a.max, b.min, b.max, m.eps) &&
		a.Content().Equal(b.Content())
}

func (m *Map) grownRect(b *Brush) rtreego.Rect {
	p := make(rtreego.Point, 3)
	l := make([]float64, 3)
	for i := 0; i < 3; i++ {
		p[i] = float64(b.min.Idx(i) - m.eps)
		l[i] = float64(b.max.Idx(i)-b.min.Idx(i)) + 2*float64(m.eps)
	}
	r, err := rtreego.NewRect(p, l)
	if err != nil {
		// only for non positive lengths, which eps prevents
		panic(err)
	}
	return r
}

func (m *Map) buildBrushList() *BrushList {
	l := &BrushList{
		Candidates: m.candidates(),
		tree:       rtreego.NewTree(3, 25, 50),
	}
	for i, b := range m.Brushes {
		if len(b.vertices) != 0 {
			l.tree.Insert(&indexed{i, m.grownRect(b)})
		}
	}
	candidate := make([]bool, len(m.Brushes))
	for _, i := range l.Candidates {
		candidate[i] = true
	}
	maxLen := 0
	for _, i := range l.Candidates {
		b := m.Brushes[i]
		b.interactions = b.interactions[:0]
		for _, o := range m.near(l, b) {
			if candidate[o] && m.interacts(b, m.Brushes[o]) {
				b.interactions = append(b.interactions, o)
			}
		}
		if len(b.interactions) > maxLen {
			maxLen = len(b.interactions)
		}
	}
	m.log.Debug("brush list", "candidates", len(l.Candidates), "maxInteractions", maxLen)
	return l
}

// near returns the sorted indices of the other brushes whose bounding
// boxes touch that of b, whatever their class or content.
func (m *Map) near(l *BrushList, b *Brush) []int {
	if len(b.vertices) == 0 {
		return nil
	}
	var r []int
	for _, s := range l.tree.SearchIntersect(m.grownRect(b)) {
		o := m.Brushes[s.(*indexed).brush]
		if o != b && boxesTouch(b.min, b.max, o.min, o.max, m.eps) {
			r = append(r, o.index)
		}
	}
	sort.Ints(r)
	return r
}

// resetBrushList drops the interaction lists, so the next BrushList call
// builds them from the current content flags.
func (m *Map) resetBrushList() {
	m.listOnce = sync.Once{}
	m.list = nil
}
