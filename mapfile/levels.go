// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

// LevelFlags sets the level bits of every brush from the height of its
// lowest vertex and returns the brushes that changed. Changes rebuild
// the interaction lists on the next BrushList call.
func (m *Map) LevelFlags() []*Brush {
	var r []*Brush
	for _, e := range m.Entities {
		for _, bi := range e.Brushes {
			b := m.Brushes[bi]
			if len(b.vertices) == 0 {
				continue
			}
			if b.SetLevelFlags(m.levelHeight) {
				r = append(r, b)
			}
		}
	}
	if len(r) != 0 {
		m.resetBrushList()
	}
	m.log.Info("levelflags pass", "brushes", len(r))
	return r
}
