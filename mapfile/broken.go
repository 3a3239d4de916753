// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"
)

// BrokenBrushes comments every brush whose faces do not form a proper
// solid and returns them. With markError their faces get the error
// texture.
func (m *Map) BrokenBrushes(markError bool) []*Brush {
	var r []*Brush
	for _, e := range m.Entities {
		if !e.Class.OwnsBrushes() {
			continue
		}
		for _, bi := range e.Brushes {
			b := m.Brushes[bi]
			if !b.IsBroken() {
				continue
			}
			b.AddComment(fmt.Sprintf("broken: %d vertices, %d faces", len(b.vertices), len(b.Faces)))
			b.log.Warn("broken brush", "vertices", len(b.vertices), "faces", len(b.Faces), "bounds", b.BoundsString())
			if markError {
				b.SetError(m.errorTexture)
			}
			r = append(r, b)
		}
	}
	return r
}
