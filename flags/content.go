// SPDX-License-Identifier: GPL-2.0-or-later

// Package flags holds the content and surface bitmasks of brush faces.
package flags

import (
	"fmt"
	"strings"

	qmath "maputils/math"
)

const (
	LEVEL1      = 1 << (iota + 8) // 0x0100
	LEVEL2                        // 0x0200
	LEVEL3                        // 0x0400
	LEVEL4                        // 0x0800
	LEVEL5                        // 0x1000
	LEVEL6                        // 0x2000
	LEVEL7                        // 0x4000
	LEVEL8                        // 0x8000
	LEVELALL    = 0xFF00
	ACTORCLIP   = 0x10000
	ORIGIN      = 0x1000000
	WEAPONCLIP  = 0x2000000
	TRANSLUCENT = 0x10000000
	STEPON      = 0x40000000

	levelShift = 8
)

// ContentFlags are the content flags of a face. The level bits say on which
// of the 8 vertical levels the face is shown: a set bit means the face is
// present when that level (or one above it) is displayed.
type ContentFlags struct {
	v int
}

func NewContentFlags(v int) ContentFlags {
	return ContentFlags{v}
}

// LevelContentFlags returns the flags of a brush on level l (0 based): the
// bits of level l and every level above it.
func LevelContentFlags(l int) ContentFlags {
	l = qmath.Clamp(0, l, qmath.Levels-1)
	mask := (0xFF << l) & 0xFF
	return ContentFlags{mask << levelShift}
}

func (c ContentFlags) Int() int {
	return c.v
}

// LevelMask returns the level bits moved down to bits 0-7.
func (c ContentFlags) LevelMask() int {
	return (c.v & LEVELALL) >> levelShift
}

// Equal compares the level bits only.
func (c ContentFlags) Equal(o ContentFlags) bool {
	return c.Contains(o) && o.Contains(c)
}

// Contains reports whether every level of o is also a level of c.
func (c ContentFlags) Contains(o ContentFlags) bool {
	return o.LevelMask()&^c.LevelMask() == 0
}

// MergeLevels returns c with its level bits replaced by those of l.
func (c ContentFlags) MergeLevels(l ContentFlags) ContentFlags {
	return ContentFlags{(c.v &^ LEVELALL) | (l.v & LEVELALL)}
}

func (c ContentFlags) IsActorclipWeaponclipOrStepon() bool {
	return c.v&(ACTORCLIP|WEAPONCLIP|STEPON) != 0
}

// IsSpecial reports content which never takes part in hiding faces:
// clips, stepon, origin and translucent brushes.
func (c ContentFlags) IsSpecial() bool {
	return c.IsActorclipWeaponclipOrStepon() || c.IsOrigin() || c.IsTranslucent()
}

func (c ContentFlags) IsOrigin() bool {
	return c.v&ORIGIN != 0
}

func (c ContentFlags) IsTranslucent() bool {
	return c.v&TRANSLUCENT != 0
}

func (c ContentFlags) String() string {
	var b strings.Builder
	for l := 0; l < qmath.Levels; l++ {
		if c.LevelMask()&(1<<l) != 0 {
			fmt.Fprintf(&b, "%d", l+1)
		} else {
			b.WriteByte('-')
		}
	}
	return fmt.Sprintf("%d[%s]", c.v, b.String())
}
