// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"maputils/flags"
	"maputils/geom"
	qmath "maputils/math"
	"maputils/math/vec"
)

// sentinelCoord is used for the bounding box of a brush without vertices.
const sentinelCoord = -4096

// Brush is a convex solid bounded by the planes of its faces.
type Brush struct {
	Faces []*Face

	index  int
	entity int
	number int
	eps    float32
	log    *slog.Logger

	vertices     []vec.Vec3
	min, max     vec.Vec3
	interactions []int
	comments     []string

	levelNote string
}

func newBrush(index, entity, number int, faces []*Face, eps float32, log *slog.Logger) *Brush {
	b := &Brush{
		Faces:  faces,
		index:  index,
		entity: entity,
		number: number,
		eps:    eps,
		log:    log.With("entity", entity, "brush", number),
	}
	for i, f := range faces {
		f.ref = FaceRef{Brush: index, Face: i}
		if f.plane.Degenerate() {
			b.log.Warn("face points are collinear", "face", i)
			b.AddComment(fmt.Sprintf("degenerate face %d", i))
		}
	}
	b.calculateVertices()
	b.findBoundingBox()
	for _, f := range faces {
		f.winding = geom.NewWinding(f.plane, b.VerticesOn(f))
	}
	return b
}

// calculateVertices intersects every triple of face planes and keeps the
// points within the brush. Points found by several triples are kept once
// per triple.
func (b *Brush) calculateVertices() {
	b.vertices = b.vertices[:0]
	n := len(b.Faces)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				p, ok := geom.Intersection(b.Faces[i].plane, b.Faces[j].plane, b.Faces[k].plane)
				if ok && b.InsideInclusive(p) {
					b.vertices = append(b.vertices, p)
				}
			}
		}
	}
}

func (b *Brush) findBoundingBox() {
	if len(b.vertices) == 0 {
		b.log.Warn("brush has no vertices")
		s := vec.Vec3{X: sentinelCoord, Y: sentinelCoord, Z: sentinelCoord}
		b.min, b.max = s, s
		return
	}
	b.min, b.max = b.vertices[0], b.vertices[0]
	for _, v := range b.vertices[1:] {
		b.min = vec.Min(b.min, v)
		b.max = vec.Max(b.max, v)
	}
}

// Index returns the position of the brush in Map.Brushes.
func (b *Brush) Index() int {
	return b.index
}

// Entity returns the index of the owning entity in Map.Entities.
func (b *Brush) Entity() int {
	return b.entity
}

// Number returns the number of the brush within its entity.
func (b *Brush) Number() int {
	return b.number
}

func (b *Brush) Vertices() []vec.Vec3 {
	return b.vertices
}

// Bounds returns the bounding box of the vertices.
func (b *Brush) Bounds() (vec.Vec3, vec.Vec3) {
	return b.min, b.max
}

// Interactions returns the arena indices of the brushes whose bounding box
// touches this one. It is filled by Map.BrushList.
func (b *Brush) Interactions() []int {
	return b.interactions
}

// Content returns the content flags of the first face which stand for the
// whole brush.
func (b *Brush) Content() flags.ContentFlags {
	if len(b.Faces) == 0 {
		return flags.ContentFlags{}
	}
	return b.Faces[0].Content
}

// IsBroken reports whether the faces do not enclose a proper solid.
func (b *Brush) IsBroken() bool {
	return len(b.vertices) < 4 || len(b.vertices) < len(b.Faces)
}

// VerticesOn returns the vertices lying on the plane of f.
func (b *Brush) VerticesOn(f *Face) []vec.Vec3 {
	var r []vec.Vec3
	for _, v := range b.vertices {
		if f.plane.AbsDistance(v) < b.eps {
			r = append(r, v)
		}
	}
	return r
}

// InsideInclusive reports whether p is inside the brush or on its surface.
func (b *Brush) InsideInclusive(p vec.Vec3) bool {
	for _, f := range b.Faces {
		if f.plane.Distance(p) > b.eps {
			return false
		}
	}
	return true
}

// InsideExclusive reports whether p is inside the brush and not on its
// surface.
func (b *Brush) InsideExclusive(p vec.Vec3) bool {
	for _, f := range b.Faces {
		if f.plane.Distance(p) > -b.eps {
			return false
		}
	}
	return true
}

// InsideInclusiveExcludingEdges is InsideInclusive but rejects points on
// more than one face plane, which are on an edge or a corner.
func (b *Brush) InsideInclusiveExcludingEdges(p vec.Vec3) bool {
	on := 0
	for _, f := range b.Faces {
		d := f.plane.Distance(p)
		if d > b.eps {
			return false
		}
		if d > -b.eps {
			on++
		}
	}
	return on <= 1
}

// AreInside reports whether all points are inside inclusive.
func (b *Brush) AreInside(ps []vec.Vec3) bool {
	for _, p := range ps {
		if !b.InsideInclusive(p) {
			return false
		}
	}
	return true
}

// AddComment adds a line to be written before the faces. Repeated
// comments are dropped.
func (b *Brush) AddComment(c string) {
	for _, o := range b.comments {
		if o == c {
			return
		}
	}
	b.comments = append(b.comments, c)
}

func (b *Brush) Comments() []string {
	return b.comments
}

// SetError gives every face the error texture.
func (b *Brush) SetError(texture string) {
	for _, f := range b.Faces {
		f.Texture = texture
	}
}

// Level returns the level of the lowest vertex.
func (b *Brush) Level(height float32) int {
	level := qmath.Level(b.min.Z, height)
	top := qmath.Level(b.max.Z, height)
	if top-level > 1 {
		b.log.Warn("brush seems to span more than 2 levels", "level", level, "top", top)
	}
	return level
}

// SetLevelFlags sets the level bits of all faces from the vertex heights.
// It reports whether any face changed.
func (b *Brush) SetLevelFlags(height float32) bool {
	lf := flags.LevelContentFlags(b.Level(height))
	changed := false
	for _, f := range b.Faces {
		if note := f.SetLevelFlags(lf); note != "" {
			b.notifyLevelFlagChange(note)
			changed = true
		}
	}
	return changed
}

func (b *Brush) notifyLevelFlagChange(note string) {
	if b.levelNote != "" && note != b.levelNote {
		b.log.Warn("brush had faces with different levelflags set", "was", b.levelNote, "now", note)
	}
	b.levelNote = note
}

// BoundsString formats the bounding box as (xmin xmax,ymin ymax,zmin zmax).
func (b *Brush) BoundsString() string {
	return fmt.Sprintf("(%5.1f %5.1f,%5.1f %5.1f,%5.1f %5.1f)", b.min.X, b.max.X, b.min.Y, b.max.Y, b.min.Z, b.max.Z)
}

func (b *Brush) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// brush %d\n{\n", b.number)
	for _, c := range b.comments {
		fmt.Fprintf(&sb, "// %s\n", c)
	}
	for _, f := range b.Faces {
		if _, err := f.WriteTo(&sb); err != nil {
			return 0, err
		}
	}
	sb.WriteString("}\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
