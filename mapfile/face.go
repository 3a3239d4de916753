// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"maputils/flags"
	"maputils/geom"
	"maputils/math/vec"
)

// FaceRef addresses a face by the arena index of its brush and its ordinal
// within that brush.
type FaceRef struct {
	Brush int
	Face  int
}

// Face is one half space of a brush as written in the map:
//
//	( x y z ) ( x y z ) ( x y z ) texture xoff yoff rot xscale yscale content surface value
type Face struct {
	Points   [3]vec.Vec3
	Texture  string
	OffsetX  float32
	OffsetY  float32
	Rotation float32
	ScaleX   float32
	ScaleY   float32
	Content  flags.ContentFlags
	Surface  flags.SurfaceFlags
	Value    int

	plane   geom.Plane
	ref     FaceRef
	winding geom.Winding
}

const (
	faceFields     = 21
	faceFieldsFull = 24
)

// parseFace parses a single face line. off is the offset of line within src
// and only used for errors.
func parseFace(src, line string, off int) (*Face, error) {
	ts, e := lex(line).tokens()
	if e != nil {
		return nil, parseError(src, off+e.pos, "%s", e.val)
	}
	if len(ts) != faceFields && len(ts) != faceFieldsFull {
		return nil, parseError(src, off, "face has %d fields, want %d or %d", len(ts), faceFields, faceFieldsFull)
	}
	f := &Face{}
	fail := func(t item, what string) error {
		return parseError(src, off+t.pos, "expected %s, got %v", what, t)
	}
	float := func(t item) (float32, error) {
		if t.typ != itemWord {
			return 0, fail(t, "number")
		}
		v, err := strconv.ParseFloat(t.val, 32)
		if err != nil {
			return 0, fail(t, "number")
		}
		return float32(v), nil
	}
	for p := 0; p < 3; p++ {
		t := ts[p*5 : p*5+5]
		if t[0].val != "(" || t[0].typ != itemChar {
			return nil, fail(t[0], "'('")
		}
		if t[4].val != ")" || t[4].typ != itemChar {
			return nil, fail(t[4], "')'")
		}
		var c [3]float32
		for i := range c {
			v, err := float(t[i+1])
			if err != nil {
				return nil, err
			}
			c[i] = v
		}
		f.Points[p] = vec.VFromA(c)
	}
	switch t := ts[15]; t.typ {
	case itemWord:
		f.Texture = t.val
	case itemString:
		f.Texture = unquote(t.val)
	default:
		return nil, fail(t, "texture")
	}
	tex := []*float32{&f.OffsetX, &f.OffsetY, &f.Rotation, &f.ScaleX, &f.ScaleY}
	for i, dst := range tex {
		v, err := float(ts[16+i])
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	if len(ts) == faceFieldsFull {
		var ints [3]int
		for i := range ints {
			t := ts[faceFields+i]
			v, err := strconv.Atoi(t.val)
			if err != nil || t.typ != itemWord {
				return nil, fail(t, "integer")
			}
			ints[i] = v
		}
		f.Content = flags.NewContentFlags(ints[0])
		f.Surface = flags.NewSurfaceFlags(ints[1])
		f.Value = ints[2]
	}
	f.plane = geom.FromPoints(f.Points[0], f.Points[1], f.Points[2])
	return f, nil
}

// Plane returns the plane through the three defining points. The normal
// points out of the brush.
func (f *Face) Plane() geom.Plane {
	return f.plane
}

// Ref returns the brush and ordinal of the face.
func (f *Face) Ref() FaceRef {
	return f.ref
}

// Winding returns the vertices of the brush on the face plane in order.
func (f *Face) Winding() geom.Winding {
	return f.winding
}

func (f *Face) IsFacingAndCoincidentTo(o *Face) bool {
	return f.plane.IsFacingAndCoincidentTo(o.plane)
}

func (f *Face) IsNodraw() bool {
	return f.Surface.IsNodraw()
}

// SetNodraw marks the face as never visible and gives it texture.
func (f *Face) SetNodraw(texture string) {
	f.Surface.SetNodraw()
	f.Texture = texture
}

// SetLevelFlags replaces the level bits with those of level. It returns a
// note describing the change, or "" if the flags stayed the same.
func (f *Face) SetLevelFlags(level flags.ContentFlags) string {
	old := f.Content
	f.Content = old.MergeLevels(level)
	if old.Int() == f.Content.Int() {
		return ""
	}
	return fmt.Sprintf("levelflags %v -> %v", old, f.Content)
}

func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func (f *Face) WriteTo(w io.Writer) (int64, error) {
	var s string
	for _, p := range f.Points {
		s += fmt.Sprintf("( %s %s %s ) ", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	tex := f.Texture
	if tex == "" || strings.ContainsAny(tex, " \t") {
		tex = `"` + tex + `"`
	}
	s += fmt.Sprintf("%s %s %s %s %s %s %d %d %d\n",
		tex, ftoa(f.OffsetX), ftoa(f.OffsetY), ftoa(f.Rotation), ftoa(f.ScaleX), ftoa(f.ScaleY),
		f.Content.Int(), f.Surface.Int(), f.Value)
	n, err := io.WriteString(w, s)
	return int64(n), err
}
