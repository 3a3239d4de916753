// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExt(t *testing.T) {
	for _, tc := range []struct {
		path, ext, stripped string
	}{
		{"maps/a.map", ".map", "maps/a"},
		{"a.b/c", "", "a.b/c"},
		{`maps\x.y.map`, ".map", `maps\x.y`},
		{"noext", "", "noext"},
	} {
		assert.Equal(t, tc.ext, Ext(tc.path), tc.path)
		assert.Equal(t, tc.stripped, StripExt(tc.path), tc.path)
	}
	assert.Equal(t, "maps/a.original.map", SafetyCopyName("maps/a.map", DefaultSafetySuffix))
	assert.Equal(t, "maps/a.original", SafetyCopyName("maps/a", DefaultSafetySuffix))
}

func TestCommit(t *testing.T) {
	defer UseFs(afero.NewOsFs())
	UseFs(afero.NewMemMapFs())
	require.NoError(t, afero.WriteFile(current(), "maps/a.map", []byte("one"), 0o644))

	safe, err := Commit("maps/a.map", []byte("two"), DefaultSafetySuffix)
	require.NoError(t, err)
	assert.Equal(t, "maps/a.original.map", safe)
	got, err := ReadMap("maps/a.map")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
	got, err = ReadMap(safe)
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	// the safety copy keeps the first version
	_, err = Commit("maps/a.map", []byte("three"), DefaultSafetySuffix)
	require.NoError(t, err)
	got, _ = ReadMap(safe)
	assert.Equal(t, "one", got)
	got, _ = ReadMap("maps/a.map")
	assert.Equal(t, "three", got)
}

func TestCommitOs(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "b.map")
	require.NoError(t, os.WriteFile(p, []byte("old"), 0o600))
	safe, err := Commit(p, []byte("new"), ".bak")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.bak.map"), safe)
	b, err := os.ReadFile(safe)
	require.NoError(t, err)
	assert.Equal(t, "old", string(b))
	fi, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestReadMapMissing(t *testing.T) {
	_, err := ReadMap(filepath.Join(t.TempDir(), "missing.map"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.map")
}

func TestCommitMissing(t *testing.T) {
	_, err := Commit(filepath.Join(t.TempDir(), "missing.map"), []byte("x"), DefaultSafetySuffix)
	assert.Error(t, err)
}
