// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Get(New())
	require.NoError(t, err)
	assert.Equal(t, float32(0.01), c.DistanceEpsilon)
	assert.Equal(t, float32(64), c.LevelHeight)
	assert.Equal(t, "tex_common/nodraw", c.NodrawTexture)
	assert.Equal(t, "tex_common/error", c.ErrorTexture)
	assert.Equal(t, ".original", c.SafetySuffix)
	assert.Equal(t, float32(0.125), c.ProbeDistance)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.Commit)
	assert.Equal(t, Passes{}, c.Passes)
}

func TestLoadYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "maputils.yaml")
	require.NoError(t, os.WriteFile(p, []byte(
		"levelHeight: 32\n"+
			"nodrawTexture: tex/hidden\n"+
			"passes:\n"+
			"  nodraw: true\n"+
			"  markErrors: true\n"), 0o644))
	v := New()
	require.NoError(t, Load(v, p))
	c, err := Get(v)
	require.NoError(t, err)
	assert.Equal(t, float32(32), c.LevelHeight)
	assert.Equal(t, "tex/hidden", c.NodrawTexture)
	assert.True(t, c.Passes.Nodraw)
	assert.True(t, c.Passes.MarkErrors)
	assert.False(t, c.Passes.LevelFlags)
	assert.Equal(t, float32(0.01), c.DistanceEpsilon)
}

func TestLoadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "maputils.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"distanceEpsilon": 0.05, "passes": {"broken": true}}`), 0o644))
	v := New()
	require.NoError(t, Load(v, p))
	c, err := Get(v)
	require.NoError(t, err)
	assert.Equal(t, float32(0.05), c.DistanceEpsilon)
	assert.True(t, c.Passes.Broken)
}

func TestLoadMissing(t *testing.T) {
	err := Load(New(), filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
	assert.NoError(t, Load(New(), ""))
}

func TestEnv(t *testing.T) {
	t.Setenv("MAPUTILS_PASSES_LEVELFLAGS", "true")
	t.Setenv("MAPUTILS_LEVELHEIGHT", "128")
	c, err := Get(New())
	require.NoError(t, err)
	assert.True(t, c.Passes.LevelFlags)
	assert.Equal(t, float32(128), c.LevelHeight)
}

func TestInvalid(t *testing.T) {
	for _, tc := range []struct {
		key   string
		value interface{}
	}{
		{"distanceEpsilon", 0},
		{"levelHeight", -1},
		{"probeDistance", 0},
		{"safetySuffix", ""},
	} {
		v := New()
		v.Set(tc.key, tc.value)
		_, err := Get(v)
		assert.Error(t, err, tc.key)
	}
}
