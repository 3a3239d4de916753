// SPDX-License-Identifier: GPL-2.0-or-later

package geom

import (
	"github.com/chewxy/math32"

	qmath "maputils/math"
	"maputils/math/vec"
)

// Edge is the segment between two vertices.
type Edge struct {
	A, B vec.Vec3
}

func (e Edge) Vector() vec.Vec3 {
	return vec.Sub(e.B, e.A)
}

func (e Edge) Length() float32 {
	return e.Vector().Length()
}

// IntersectPlane returns where the edge crosses p. Crossings within
// DistanceEpsilon of either end do not count, nor do edges that are
// (nearly) parallel to the plane or have no length.
func (e Edge) IntersectPlane(p Plane) (vec.Vec3, bool) {
	dir := e.Vector()
	length := dir.Length()
	if length < qmath.DistanceEpsilon {
		return vec.Vec3{}, false
	}
	sin := vec.Dot(dir, p.N) / length
	if math32.Abs(sin) < qmath.AngleEpsilon {
		return vec.Vec3{}, false
	}
	toPlane := vec.Sub(p.ClosestToOrigin(), e.A)
	param := vec.Dot(p.N, toPlane) / vec.Dot(p.N, dir)
	x := vec.Add(e.A, dir.Scale(param))
	along := param * length
	return x, along > qmath.DistanceEpsilon && along < length-qmath.DistanceEpsilon
}

// IntersectEdge returns the point where e and o cross. Touching at either
// end, parallel edges and skew edges do not count.
func (e Edge) IntersectEdge(o Edge) (vec.Vec3, bool) {
	dir1 := e.Vector()
	dir2 := o.Vector()
	length1 := dir1.Length()
	length2 := dir2.Length()
	if length1 < qmath.DistanceEpsilon || length2 < qmath.DistanceEpsilon {
		return vec.Vec3{}, false
	}
	unit1 := dir1.Scale(1 / length1)
	unit2 := dir2.Scale(1 / length2)

	if math32.Abs(vec.Dot(unit1, unit2)) >= qmath.CosEpsilon {
		return vec.Vec3{}, false
	}

	closest := vec.Cross(unit1, unit2).Normalize()
	from1To2 := vec.Sub(o.A, e.A)
	if math32.Abs(vec.Dot(closest, from1To2)) > qmath.DistanceEpsilon {
		return vec.Vec3{}, false
	}

	cross1 := vec.Cross(from1To2, dir2)
	cross2 := vec.Cross(dir1, dir2)
	param1 := vec.Dot(cross1, cross2) / cross2.LengthSqr()
	toX := dir1.Scale(param1)
	x := vec.Add(e.A, toX)

	d1 := vec.Dot(toX, unit1)
	if d1 < qmath.DistanceEpsilon || d1 > length1-qmath.DistanceEpsilon {
		return vec.Vec3{}, false
	}
	d2 := vec.Dot(vec.Sub(x, o.A), unit2)
	if d2 < qmath.DistanceEpsilon || d2 > length2-qmath.DistanceEpsilon {
		return vec.Vec3{}, false
	}
	return x, true
}
