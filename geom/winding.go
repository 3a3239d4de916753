// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import (
	"sort"

	"github.com/chewxy/math32"

	qmath "maputils/math"
	"maputils/math/vec"
)

// Winding is a convex polygon, counterclockwise when seen from the side
// its plane normal points to.
type Winding []vec.Vec3

// NewWinding orders the distinct points of ps around their centroid.
// Points closer than DistanceEpsilon are merged.
func NewWinding(p Plane, ps []vec.Vec3) Winding {
	var w Winding
	for _, x := range ps {
		dup := false
		for _, y := range w {
			if vec.Near(x, y, qmath.DistanceEpsilon) {
				dup = true
				break
			}
		}
		if !dup {
			w = append(w, x)
		}
	}
	if len(w) < 3 {
		return w
	}
	c := vec.Centroid(w)
	u, v := p.Basis()
	angle := func(x vec.Vec3) float32 {
		d := vec.Sub(x, c)
		return math32.Atan2(vec.Dot(d, v), vec.Dot(d, u))
	}
	sort.SliceStable(w, func(i, j int) bool {
		return angle(w[i]) < angle(w[j])
	})
	return w
}

// Edges returns the closed loop of edges of the winding.
func (w Winding) Edges() []Edge {
	if len(w) < 2 {
		return nil
	}
	es := make([]Edge, len(w))
	for i := range w {
		es[i] = Edge{w[i], w[(i+1)%len(w)]}
	}
	return es
}

// ContainsInterior reports whether x, assumed to lie on the plane with
// normal n, is strictly inside the winding. Points on an edge are outside.
func (w Winding) ContainsInterior(n vec.Vec3, x vec.Vec3) bool {
	if len(w) < 3 {
		return false
	}
	for _, e := range w.Edges() {
		l := e.Length()
		if l < qmath.DistanceEpsilon {
			continue
		}
		// distance of x to the left of the edge, in the plane
		side := vec.Dot(vec.Cross(e.Vector(), vec.Sub(x, e.A)), n) / l
		if side <= qmath.DistanceEpsilon {
			return false
		}
	}
	return true
}
