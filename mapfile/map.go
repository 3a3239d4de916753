// SPDX-License-Identifier: GPL-2.0-or-later

// Package mapfile reads, analyses and writes .map level sources.
package mapfile

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	qmath "maputils/math"
)

const (
	DefaultNodrawTexture = "tex_common/nodraw"
	DefaultErrorTexture  = "tex_common/error"
	DefaultProbeDistance = 0.125
)

// Map is a parsed map. Entities and Brushes are in file order; brushes
// refer to their entity and faces to their brush by index.
type Map struct {
	Entities []*Entity
	Brushes  []*Brush

	src      string
	text     string // src with comments blanked
	comments []span

	log           *slog.Logger
	eps           float32
	levelHeight   float32
	nodrawTexture string
	errorTexture  string
	probeDistance float32

	entityCount int
	brushCount  int

	listOnce sync.Once
	list     *BrushList
}

type Option func(*Map)

func WithLogger(l *slog.Logger) Option {
	return func(m *Map) {
		m.log = l
	}
}

// WithTolerance sets the distance within which points count as on a
// plane for brush containment and overlap tests.
func WithTolerance(eps float32) Option {
	return func(m *Map) {
		m.eps = eps
	}
}

func WithLevelHeight(h float32) Option {
	return func(m *Map) {
		m.levelHeight = h
	}
}

func WithTextures(nodraw, errorTex string) Option {
	return func(m *Map) {
		m.nodrawTexture = nodraw
		m.errorTexture = errorTex
	}
}

// WithProbeDistance sets how far from a vertex the coverage of composite
// faces is tested.
func WithProbeDistance(d float32) Option {
	return func(m *Map) {
		m.probeDistance = d
	}
}

// Parse reads the entities and brushes of src.
func Parse(src string, opts ...Option) (*Map, error) {
	m := &Map{
		src:           src,
		log:           slog.Default(),
		eps:           qmath.DistanceEpsilon,
		levelHeight:   qmath.LevelHeight,
		nodrawTexture: DefaultNodrawTexture,
		errorTexture:  DefaultErrorTexture,
		probeDistance: DefaultProbeDistance,
	}
	for _, o := range opts {
		o(m)
	}
	m.comments = commentSpans(src)
	m.text = blank(src, m.comments)
	es, err := braces(m.src, m.text, 0, len(m.text))
	if err != nil {
		return nil, err
	}
	for _, g := range gaps(es, 0, len(m.text)) {
		if t := strings.TrimSpace(m.text[g.Start:g.End]); t != "" {
			return nil, parseError(m.src, g.Start+strings.Index(m.text[g.Start:g.End], t), "text outside of entity")
		}
	}
	for _, e := range es {
		if err := m.parseEntity(e); err != nil {
			return nil, err
		}
	}
	m.log.Debug("parsed map", "entities", len(m.Entities), "brushes", len(m.Brushes))
	return m, nil
}

// InComment reports whether the byte at offset of the source is part of a
// comment.
func (m *Map) InComment(offset int) bool {
	return inSpans(m.comments, offset)
}

// Source returns the text the map was parsed from.
func (m *Map) Source() string {
	return m.src
}

func (m *Map) Face(r FaceRef) *Face {
	return m.Brushes[r.Brush].Faces[r.Face]
}

// EntityOf returns the entity owning b.
func (m *Map) EntityOf(b *Brush) *Entity {
	return m.Entities[b.entity]
}

// WriteTo writes the map with all changes applied.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, e := range m.Entities {
		c, err := m.writeEntity(w, e)
		n += c
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// String returns the text WriteTo would write.
func (m *Map) String() string {
	var sb strings.Builder
	m.WriteTo(&sb)
	return sb.String()
}
