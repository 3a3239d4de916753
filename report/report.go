// SPDX-License-Identifier: GPL-2.0-or-later

// Package report collects what a run changed.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// BrushID names a brush the way it is numbered in the written map.
type BrushID struct {
	Entity int
	Brush  int
}

type Summary struct {
	RunID        uuid.UUID
	Map          string
	Entities     int
	Brushes      int
	Nodraw       int
	Downward     int
	LevelFlags   []BrushID
	Broken       []BrushID
	Intersecting []BrushID
	Contained    []BrushID
	SafetyCopy   string
	Skipped      []string
}

func New(mapName string) *Summary {
	return &Summary{
		RunID: uuid.Must(uuid.NewV7()),
		Map:   mapName,
	}
}

func brushList(ids []BrushID) []interface{} {
	r := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		r = append(r, map[string]interface{}{
			"entity": id.Entity,
			"brush":  id.Brush,
		})
	}
	return r
}

// Struct returns the summary as a protobuf Struct.
func (s *Summary) Struct() (*structpb.Struct, error) {
	skipped := make([]interface{}, 0, len(s.Skipped))
	for _, k := range s.Skipped {
		skipped = append(skipped, k)
	}
	st, err := structpb.NewStruct(map[string]interface{}{
		"runId":        s.RunID.String(),
		"map":          s.Map,
		"entities":     s.Entities,
		"brushes":      s.Brushes,
		"nodraw":       s.Nodraw,
		"downward":     s.Downward,
		"levelflags":   brushList(s.LevelFlags),
		"broken":       brushList(s.Broken),
		"intersecting": brushList(s.Intersecting),
		"contained":    brushList(s.Contained),
		"safetyCopy":   s.SafetyCopy,
		"skipped":      skipped,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building summary")
	}
	return st, nil
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	st, err := s.Struct()
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
}

// WriteTo writes the summary as JSON.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(b, '\n'))
	return int64(n), err
}

func ids(l []BrushID) string {
	var s []string
	for _, id := range l {
		s = append(s, fmt.Sprintf("%d/%d", id.Entity, id.Brush))
	}
	return strings.Join(s, " ")
}

// String returns a short human readable summary.
func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d entities, %d brushes\n", s.Map, s.Entities, s.Brushes)
	if s.Nodraw > 0 {
		fmt.Fprintf(&sb, "nodraw set on %d faces\n", s.Nodraw)
	}
	if s.Downward > 0 {
		fmt.Fprintf(&sb, "nodraw set on %d downward faces\n", s.Downward)
	}
	if len(s.LevelFlags) > 0 {
		fmt.Fprintf(&sb, "levelflags changed on %d brushes: %s\n", len(s.LevelFlags), ids(s.LevelFlags))
	}
	if len(s.Broken) > 0 {
		fmt.Fprintf(&sb, "%d broken brushes: %s\n", len(s.Broken), ids(s.Broken))
	}
	if len(s.Intersecting) > 0 {
		fmt.Fprintf(&sb, "%d intersecting brushes: %s\n", len(s.Intersecting), ids(s.Intersecting))
	}
	if len(s.Contained) > 0 {
		fmt.Fprintf(&sb, "%d brushes inside others: %s\n", len(s.Contained), ids(s.Contained))
	}
	for _, k := range s.Skipped {
		fmt.Fprintf(&sb, "skipped: %s\n", k)
	}
	if s.SafetyCopy != "" {
		fmt.Fprintf(&sb, "original kept as %s\n", s.SafetyCopy)
	}
	return sb.String()
}
