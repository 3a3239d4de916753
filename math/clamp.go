// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

type Number interface {
	int64 | float64 | float32 | int
}

func Clamp[K Number](min, val, max K) K {
	if min > val {
		return min
	} else if max < val {
		return max
	}
	return val
}

// FloorDiv returns floor(v/d) as an int. d must not be 0.
func FloorDiv(v, d float32) int {
	return int(math32.Floor(v / d))
}
