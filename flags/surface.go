// SPDX-License-Identifier: GPL-2.0-or-later

package flags

const (
	LIGHT   = 0x1
	TRANS33 = 0x10
	TRANS66 = 0x20
	FLOW    = 0x40
	NODRAW  = 0x80
)

type SurfaceFlags struct {
	v int
}

func NewSurfaceFlags(v int) SurfaceFlags {
	return SurfaceFlags{v}
}

func (s SurfaceFlags) Int() int {
	return s.v
}

// IsLight reports a surface light, whose value holds the light strength.
func (s SurfaceFlags) IsLight() bool {
	return s.v&LIGHT != 0
}

func (s SurfaceFlags) IsTransparent() bool {
	return s.v&(TRANS33|TRANS66) != 0
}

func (s SurfaceFlags) IsNodraw() bool {
	return s.v&NODRAW != 0
}

func (s *SurfaceFlags) SetNodraw() {
	s.v |= NODRAW
}
