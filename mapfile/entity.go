// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type KeyValue struct {
	Key   string
	Value string
}

type Entity struct {
	Class   Class
	Pairs   []KeyValue
	Brushes []int

	number int
}

// Number returns the position of the entity in the file.
func (e *Entity) Number() int {
	return e.number
}

func (e *Entity) Property(name string) (string, bool) {
	for _, kv := range e.Pairs {
		if kv.Key == name {
			return kv.Value, true
		}
	}
	return "", false
}

// parseEntity reads the key/value pairs and brushes of the block
// text[s.Start:s.End], which includes the outer braces.
func (m *Map) parseEntity(s span) error {
	e := &Entity{number: m.entityCount}
	m.entityCount++
	m.brushCount = 0
	inner := span{s.Start + 1, s.End - 1}
	bs, err := braces(m.src, m.text, inner.Start, inner.End)
	if err != nil {
		return err
	}
	for _, g := range gaps(bs, inner.Start, inner.End) {
		if err := m.parsePairs(e, g); err != nil {
			return err
		}
	}
	name, ok := e.Property("classname")
	if !ok {
		return parseError(m.src, s.Start, "entity %d has no classname", e.number)
	}
	if e.Class, err = ParseClass(name); err != nil {
		return errors.Wrapf(err, "entity %d", e.number)
	}
	if len(bs) > 0 && !e.Class.OwnsBrushes() {
		return parseError(m.src, bs[0].Start, "entity of class %v cannot have brushes", e.Class)
	}
	idx := len(m.Entities)
	for _, b := range bs {
		if err := m.parseBrush(e, idx, b); err != nil {
			return err
		}
	}
	m.Entities = append(m.Entities, e)
	return nil
}

func (m *Map) parsePairs(e *Entity, g span) error {
	ts, ei := lex(m.text[g.Start:g.End]).tokens()
	if ei != nil {
		return parseError(m.src, g.Start+ei.pos, "%s", ei.val)
	}
	for _, t := range ts {
		if t.typ != itemString {
			return parseError(m.src, g.Start+t.pos, "expected quoted key or value, got %v", t)
		}
	}
	if len(ts)%2 != 0 {
		t := ts[len(ts)-1]
		return parseError(m.src, g.Start+t.pos, "key %s has no value", t.val)
	}
	for i := 0; i < len(ts); i += 2 {
		e.Pairs = append(e.Pairs, KeyValue{unquote(ts[i].val), unquote(ts[i+1].val)})
	}
	return nil
}

// parseBrush reads one face per non blank line of the block.
func (m *Map) parseBrush(e *Entity, entity int, s span) error {
	var faces []*Face
	off := s.Start + 1
	for _, line := range strings.SplitAfter(m.text[s.Start+1:s.End-1], "\n") {
		if strings.TrimSpace(line) != "" {
			f, err := parseFace(m.src, line, off)
			if err != nil {
				return err
			}
			faces = append(faces, f)
		}
		off += len(line)
	}
	idx := len(m.Brushes)
	b := newBrush(idx, entity, m.brushCount, faces, m.eps, m.log)
	m.brushCount++
	m.Brushes = append(m.Brushes, b)
	e.Brushes = append(e.Brushes, idx)
	return nil
}

func (m *Map) writeEntity(w io.Writer, e *Entity) (int64, error) {
	var n int64
	var sb strings.Builder
	fmt.Fprintf(&sb, "// entity %d\n{\n", e.number)
	for _, kv := range e.Pairs {
		fmt.Fprintf(&sb, "\"%s\" \"%s\"\n", kv.Key, kv.Value)
	}
	c, err := io.WriteString(w, sb.String())
	n += int64(c)
	if err != nil {
		return n, err
	}
	for _, i := range e.Brushes {
		c, err := m.Brushes[i].WriteTo(w)
		n += c
		if err != nil {
			return n, err
		}
	}
	c, err = io.WriteString(w, "}\n")
	n += int64(c)
	return n, err
}
