// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"maputils/math/vec"
)

// Face order of box brushes.
const (
	posX = iota
	negX
	posY
	negY
	posZ
	negZ
)

func v3(x, y, z float32) vec.Vec3 {
	return vec.Vec3{X: x, Y: y, Z: z}
}

// boxPoints returns the defining points of the six faces of an axis
// aligned box with outward normals.
func boxPoints(min, max vec.Vec3) [6][3]vec.Vec3 {
	return [6][3]vec.Vec3{
		posX: {v3(max.X, max.Y, min.Z), v3(max.X, min.Y, min.Z), v3(max.X, min.Y, max.Z)},
		negX: {v3(min.X, min.Y, max.Z), v3(min.X, min.Y, min.Z), v3(min.X, max.Y, min.Z)},
		posY: {v3(min.X, max.Y, max.Z), v3(min.X, max.Y, min.Z), v3(max.X, max.Y, min.Z)},
		negY: {v3(max.X, min.Y, min.Z), v3(min.X, min.Y, min.Z), v3(min.X, min.Y, max.Z)},
		posZ: {v3(max.X, min.Y, max.Z), v3(min.X, min.Y, max.Z), v3(min.X, max.Y, max.Z)},
		negZ: {v3(min.X, max.Y, min.Z), v3(min.X, min.Y, min.Z), v3(max.X, min.Y, min.Z)},
	}
}

func faceLine(ps [3]vec.Vec3, tex string, content, surface int) string {
	var sb strings.Builder
	for _, p := range ps {
		fmt.Fprintf(&sb, "( %g %g %g ) ", p.X, p.Y, p.Z)
	}
	fmt.Fprintf(&sb, "%s 0 0 0 1 1 %d %d 0\n", tex, content, surface)
	return sb.String()
}

func boxFlags(min, max vec.Vec3, content, surface int) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, ps := range boxPoints(min, max) {
		sb.WriteString(faceLine(ps, "tex_a", content, surface))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// boxFace is a box whose face number face has its own flags and value.
func boxFace(min, max vec.Vec3, face, content, surface, value int) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, ps := range boxPoints(min, max) {
		l := faceLine(ps, "tex_a", 0, 0)
		if i == face {
			l = strings.TrimSuffix(l, "0 0 0\n") + fmt.Sprintf("%d %d %d\n", content, surface, value)
		}
		sb.WriteString(l)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func box(min, max vec.Vec3) string {
	return boxFlags(min, max, 0, 0)
}

func entity(class string, brushes ...string) string {
	return fmt.Sprintf("{\n\"classname\" \"%s\"\n%s}\n", class, strings.Join(brushes, ""))
}

func worldspawn(brushes ...string) string {
	return entity("worldspawn", brushes...)
}

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustParse(t *testing.T, src string) *Map {
	t.Helper()
	m, err := Parse(src, quiet())
	require.NoError(t, err)
	return m
}
