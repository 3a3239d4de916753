// SPDX-License-Identifier: GPL-2.0-or-later

package report

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func sample() *Summary {
	s := New("maps/a.map")
	s.Entities = 3
	s.Brushes = 12
	s.Nodraw = 7
	s.LevelFlags = []BrushID{{0, 1}, {2, 0}}
	s.Broken = []BrushID{{0, 4}}
	s.Intersecting = []BrushID{{0, 2}, {0, 3}}
	s.Contained = []BrushID{{1, 0}}
	s.Skipped = []string{"snap: not implemented"}
	return s
}

func TestRunID(t *testing.T) {
	a, b := New("x"), New("x")
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, uuid.Version(7), a.RunID.Version())
}

func TestJSON(t *testing.T) {
	s := sample()
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	st := &structpb.Struct{}
	require.NoError(t, protojson.Unmarshal(buf.Bytes(), st))
	m := st.AsMap()
	assert.Equal(t, s.RunID.String(), m["runId"])
	assert.Equal(t, "maps/a.map", m["map"])
	assert.Equal(t, float64(12), m["brushes"])
	assert.Equal(t, float64(7), m["nodraw"])
	lf, ok := m["levelflags"].([]interface{})
	require.True(t, ok)
	require.Len(t, lf, 2)
	assert.Equal(t, map[string]interface{}{"entity": float64(2), "brush": float64(0)}, lf[1])
	assert.Equal(t, []interface{}{"snap: not implemented"}, m["skipped"])
	assert.Len(t, m["intersecting"], 2)
	assert.Equal(t, []interface{}{map[string]interface{}{"entity": float64(1), "brush": float64(0)}}, m["contained"])
	assert.Equal(t, "", m["safetyCopy"])
}

func TestString(t *testing.T) {
	s := sample().String()
	assert.Contains(t, s, "maps/a.map: 3 entities, 12 brushes\n")
	assert.Contains(t, s, "nodraw set on 7 faces\n")
	assert.Contains(t, s, "levelflags changed on 2 brushes: 0/1 2/0\n")
	assert.Contains(t, s, "1 broken brushes: 0/4\n")
	assert.Contains(t, s, "2 intersecting brushes: 0/2 0/3\n")
	assert.Contains(t, s, "1 brushes inside others: 1/0\n")
	assert.Contains(t, s, "skipped: snap: not implemented\n")
	assert.NotContains(t, s, "downward")
	assert.NotContains(t, s, "original kept")
}
