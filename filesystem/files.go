// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem reads map sources and writes the results back.
package filesystem

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// DefaultSafetySuffix is inserted before the extension of the copy kept of
// an overwritten map.
const DefaultSafetySuffix = ".original"

var (
	fsys  afero.Fs = afero.NewOsFs()
	mutex sync.RWMutex
)

// UseFs replaces the file system all functions work on.
func UseFs(fs afero.Fs) {
	mutex.Lock()
	defer mutex.Unlock()
	fsys = fs
}

func current() afero.Fs {
	mutex.RLock()
	defer mutex.RUnlock()
	return fsys
}

func ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(current(), name)
}

// ReadMap returns the text of the map file name.
func ReadMap(name string) (string, error) {
	b, err := ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "reading map %s", name)
	}
	return string(b), nil
}

// WriteFile creates or replaces name.
func WriteFile(name string, data []byte) error {
	if err := afero.WriteFile(current(), name, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	return nil
}

// SafetyCopyName returns the name of the copy kept of path, the suffix
// inserted before the extension: maps/a.map becomes maps/a.original.map.
func SafetyCopyName(path, suffix string) string {
	return StripExt(path) + suffix + Ext(path)
}

// Commit overwrites path with data. The content of path before the first
// commit is kept in the safety copy, which is never overwritten. It returns
// the name of the safety copy.
func Commit(path string, data []byte, suffix string) (string, error) {
	fs := current()
	safe := SafetyCopyName(path, suffix)
	exists, err := afero.Exists(fs, safe)
	if err != nil {
		return "", errors.Wrapf(err, "checking %s", safe)
	}
	if !exists {
		original, err := afero.ReadFile(fs, path)
		if err != nil {
			return "", errors.Wrapf(err, "reading %s", path)
		}
		if err := afero.WriteFile(fs, safe, original, 0o644); err != nil {
			return "", errors.Wrapf(err, "writing safety copy %s", safe)
		}
	}
	mode := os.FileMode(0o644)
	if fi, err := fs.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := afero.WriteFile(fs, path, data, mode); err != nil {
		return safe, errors.Wrapf(err, "writing %s", path)
	}
	return safe, nil
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
