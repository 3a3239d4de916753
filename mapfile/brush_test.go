// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maputils/flags"
	"maputils/math/vec"
)

func TestContainment(t *testing.T) {
	m := mustParse(t, worldspawn(box(v3(0, 0, 0), v3(64, 64, 64))))
	b := m.Brushes[0]
	for _, tc := range []struct {
		name                         string
		p                            vec.Vec3
		inclusive, exclusive, noEdge bool
	}{
		{"center", v3(32, 32, 32), true, true, true},
		{"face", v3(64, 32, 32), true, false, true},
		{"edge", v3(64, 64, 32), true, false, false},
		{"corner", v3(0, 0, 0), true, false, false},
		{"within tolerance", v3(64.005, 32, 32), true, false, true},
		{"outside", v3(65, 32, 32), false, false, false},
		{"far", v3(-100, 0, 0), false, false, false},
	} {
		assert.Equal(t, tc.inclusive, b.InsideInclusive(tc.p), "%s inclusive", tc.name)
		assert.Equal(t, tc.exclusive, b.InsideExclusive(tc.p), "%s exclusive", tc.name)
		assert.Equal(t, tc.noEdge, b.InsideInclusiveExcludingEdges(tc.p), "%s excluding edges", tc.name)
		// exclusive implies inclusive
		if b.InsideExclusive(tc.p) {
			assert.True(t, b.InsideInclusive(tc.p), tc.name)
		}
	}
	assert.True(t, b.AreInside(b.Vertices()))
	assert.False(t, b.AreInside([]vec.Vec3{v3(0, 0, 0), v3(0, 0, 100)}))
	assert.Len(t, b.VerticesOn(b.Faces[posX]), 4)
	for _, v := range b.VerticesOn(b.Faces[posX]) {
		assert.Equal(t, float32(64), v.X)
	}
}

func TestContainmentTetrahedron(t *testing.T) {
	src := worldspawn("{\n" +
		faceLine([3]vec.Vec3{v3(0, 0, 64), v3(0, 0, 0), v3(0, 64, 0)}, "tex_a", 0, 0) +
		faceLine([3]vec.Vec3{v3(64, 0, 0), v3(0, 0, 0), v3(0, 0, 64)}, "tex_a", 0, 0) +
		faceLine([3]vec.Vec3{v3(0, 64, 0), v3(0, 0, 0), v3(64, 0, 0)}, "tex_a", 0, 0) +
		faceLine([3]vec.Vec3{v3(0, 0, 64), v3(0, 64, 0), v3(64, 0, 0)}, "tex_a", 0, 0) +
		"}\n")
	m := mustParse(t, src)
	b := m.Brushes[0]
	require.Len(t, b.Vertices(), 4)
	assert.False(t, b.IsBroken())
	assert.Len(t, b.VerticesOn(b.Faces[3]), 3)
	for _, tc := range []struct {
		name                         string
		p                            vec.Vec3
		inclusive, exclusive, noEdge bool
	}{
		{"center", v3(16, 16, 16), true, true, true},
		{"slanted face", v3(20, 20, 24), true, false, true},
		{"axis face", v3(0, 10, 10), true, false, true},
		{"slanted edge", v3(0, 32, 32), true, false, false},
		{"corner", v3(64, 0, 0), true, false, false},
		{"beyond slanted face", v3(30, 30, 30), false, false, false},
		{"in bounds but outside", v3(60, 60, 0), false, false, false},
		{"behind axis face", v3(-1, 10, 10), false, false, false},
	} {
		assert.Equal(t, tc.inclusive, b.InsideInclusive(tc.p), "%s inclusive", tc.name)
		assert.Equal(t, tc.exclusive, b.InsideExclusive(tc.p), "%s exclusive", tc.name)
		assert.Equal(t, tc.noEdge, b.InsideInclusiveExcludingEdges(tc.p), "%s excluding edges", tc.name)
		if b.InsideExclusive(tc.p) {
			assert.True(t, b.InsideInclusiveExcludingEdges(tc.p), tc.name)
		}
		if b.InsideInclusiveExcludingEdges(tc.p) {
			assert.True(t, b.InsideInclusive(tc.p), tc.name)
		}
	}
	assert.True(t, b.AreInside(b.Vertices()))
}

func TestBrokenBrush(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("{\n")
	ps := boxPoints(v3(0, 0, 0), v3(64, 64, 64))
	for _, f := range []int{posX, posY, posZ} {
		sb.WriteString(faceLine(ps[f], "tex_a", 0, 0))
	}
	sb.WriteString("}\n")
	m := mustParse(t, worldspawn(sb.String(), box(v3(128, 0, 0), v3(192, 64, 64))))

	b := m.Brushes[0]
	require.Len(t, b.Vertices(), 1)
	assert.Equal(t, v3(64, 64, 64), b.Vertices()[0])
	assert.True(t, b.IsBroken())
	assert.False(t, m.Brushes[1].IsBroken())

	broken := m.BrokenBrushes(false)
	require.Len(t, broken, 1)
	assert.Same(t, b, broken[0])
	assert.Equal(t, []string{"broken: 1 vertices, 3 faces"}, b.Comments())
	assert.Contains(t, m.String(), "// brush 0\n{\n// broken: 1 vertices, 3 faces\n")
	for _, f := range b.Faces {
		assert.Equal(t, "tex_a", f.Texture)
	}

	// comments are not repeated
	m.BrokenBrushes(true)
	assert.Len(t, b.Comments(), 1)
	for _, f := range b.Faces {
		assert.Equal(t, DefaultErrorTexture, f.Texture)
	}
	for _, f := range m.Brushes[1].Faces {
		assert.Equal(t, "tex_a", f.Texture)
	}
}

func TestNoVertices(t *testing.T) {
	ps := boxPoints(v3(0, 0, 0), v3(64, 64, 64))
	src := worldspawn("{\n" + faceLine(ps[posX], "tex_a", 0, 0) + faceLine(ps[negX], "tex_a", 0, 0) + "}\n")
	m := mustParse(t, src)
	b := m.Brushes[0]
	assert.Empty(t, b.Vertices())
	min, max := b.Bounds()
	assert.Equal(t, v3(-4096, -4096, -4096), min)
	assert.Equal(t, v3(-4096, -4096, -4096), max)
	assert.True(t, b.IsBroken())
	assert.Empty(t, m.BrushList().Candidates)
}

func TestDegenerateFace(t *testing.T) {
	src := worldspawn("{\n" +
		faceLine([3]vec.Vec3{v3(0, 0, 0), v3(1, 1, 1), v3(2, 2, 2)}, "tex_a", 0, 0) +
		strings.TrimPrefix(box(v3(0, 0, 0), v3(64, 64, 64)), "{\n"))
	m := mustParse(t, src)
	b := m.Brushes[0]
	assert.Len(t, b.Faces, 7)
	assert.Len(t, b.Vertices(), 8)
	assert.Contains(t, b.Comments(), "degenerate face 0")
}

func TestLevelFlags(t *testing.T) {
	src := worldspawn(
		box(v3(0, 0, 0), v3(64, 64, 64)),
		box(v3(0, 0, 130), v3(64, 64, 190)),
		boxFlags(v3(0, 0, 64), v3(64, 64, 128), flags.LEVEL2|flags.LEVEL3|flags.LEVEL4|flags.LEVEL5|flags.LEVEL6|flags.LEVEL7|flags.LEVEL8|flags.STEPON, 0),
		box(v3(0, 0, -64), v3(64, 64, 0)),
		box(v3(0, 0, 0), v3(64, 64, 1000)),
	)
	m := mustParse(t, src)
	changed := m.LevelFlags()
	// the third brush already has the flags of level 1
	require.Len(t, changed, 4)
	want := []int{0xFF, 0xFC, 0xFE, 0xFF, 0xFF}
	for i, b := range m.Brushes {
		for _, f := range b.Faces {
			assert.Equal(t, want[i], f.Content.LevelMask(), "brush %d", i)
		}
	}
	assert.Equal(t, flags.STEPON, m.Brushes[2].Faces[0].Content.Int()&flags.STEPON)
	assert.NotContains(t, changed, m.Brushes[2])
	assert.Contains(t, changed, m.Brushes[0])

	assert.Empty(t, m.LevelFlags())
}

func TestLevelMonotonicWithHeight(t *testing.T) {
	var bs []string
	for z := float32(0); z < 8*64; z += 64 {
		bs = append(bs, box(v3(0, 0, z), v3(64, 64, z+64)))
	}
	m := mustParse(t, worldspawn(bs...))
	m.LevelFlags()
	for i := 1; i < len(m.Brushes); i++ {
		lo := m.Brushes[i-1].Content()
		hi := m.Brushes[i].Content()
		assert.NotZero(t, hi.LevelMask())
		assert.True(t, lo.Contains(hi), "brush %d %v should contain brush %d %v", i-1, lo, i, hi)
	}
}
