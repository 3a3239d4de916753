// SPDX-License-Identifier: GPL-2.0-or-later

// Package geom holds the exact, tolerance-bounded plane and edge geometry
// used to rebuild brushes from their half-spaces.
package geom

import (
	"github.com/chewxy/math32"

	qmath "maputils/math"
	"maputils/math/vec"
)

// Plane is a plane in Hessian normal form. Points x with N·x + P <= 0 are
// on the inside.
type Plane struct {
	N vec.Vec3
	P float32
}

// FromPoints builds the plane through p1, p2 and p3. The winding of the points
// decides which side is inside. Collinear points give a degenerate plane.
func FromPoints(p1, p2, p3 vec.Vec3) Plane {
	n := vec.Cross(vec.Sub(p1, p2), vec.Sub(p3, p2)).Normalize()
	return Plane{
		N: n,
		P: -vec.Dot(n, p1),
	}
}

// Degenerate reports whether the plane has no usable normal.
func (p Plane) Degenerate() bool {
	return p.N.LengthSqr() < 0.5
}

// Distance returns the signed distance of x. Values above DistanceEpsilon
// are outside.
func (p Plane) Distance(x vec.Vec3) float32 {
	return vec.Dot(p.N, x) + p.P
}

// AbsDistance returns |Distance(x)|.
func (p Plane) AbsDistance(x vec.Vec3) float32 {
	return math32.Abs(p.Distance(x))
}

// ClosestToOrigin is the point of the plane nearest to the origin.
func (p Plane) ClosestToOrigin() vec.Vec3 {
	return p.N.Scale(-p.P)
}

// IsFacingAndCoincidentTo reports whether the planes have antiparallel
// normals and occupy the same space.
func (p Plane) IsFacingAndCoincidentTo(o Plane) bool {
	if vec.Dot(p.N, o.N) > -qmath.CosEpsilon {
		return false
	}
	return o.AbsDistance(p.ClosestToOrigin()) < qmath.DistanceEpsilon
}

// IsParallelAndCoincidentTo reports whether the planes are the same plane
// with the same orientation.
func (p Plane) IsParallelAndCoincidentTo(o Plane) bool {
	if vec.Dot(p.N, o.N) < qmath.CosEpsilon {
		return false
	}
	return o.AbsDistance(p.ClosestToOrigin()) < qmath.DistanceEpsilon
}

// Intersection returns the single point shared by a, b and c. It fails when
// any two of the planes are parallel.
func Intersection(a, b, c Plane) (vec.Vec3, bool) {
	bc := vec.Cross(b.N, c.N)
	l := bc.Length()
	if l < qmath.AngleEpsilon {
		return vec.Vec3{}, false
	}
	if math32.Abs(vec.Dot(a.N, bc.Scale(1/l))) < qmath.AngleEpsilon {
		return vec.Vec3{}, false
	}
	denom := vec.Dot(a.N, bc)
	ca := vec.Cross(c.N, a.N)
	ab := vec.Cross(a.N, b.N)
	x := vec.Add(vec.Add(bc.Scale(-a.P), ca.Scale(-b.P)), ab.Scale(-c.P))
	return x.Scale(1 / denom), true
}

// Basis returns two unit vectors spanning the plane, u x v = N.
func (p Plane) Basis() (u, v vec.Vec3) {
	// pick the axis least aligned with the normal
	axis := vec.Vec3{X: 1}
	ax, ay, az := math32.Abs(p.N.X), math32.Abs(p.N.Y), math32.Abs(p.N.Z)
	if ay <= ax && ay <= az {
		axis = vec.Vec3{Y: 1}
	} else if az <= ax && az <= ay {
		axis = vec.Vec3{Z: 1}
	}
	u = vec.Cross(axis, p.N).Normalize()
	v = vec.Cross(p.N, u)
	return u, v
}
