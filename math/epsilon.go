// SPDX-License-Identifier: GPL-2.0-or-later

package math

// All geometric comparisons go through these tolerances, never exact equality.
const (
	// DistanceEpsilon is the linear tolerance in map units.
	DistanceEpsilon = 0.01
	// DistanceEpsilonSqr is DistanceEpsilon squared.
	DistanceEpsilonSqr = DistanceEpsilon * DistanceEpsilon
	// CosEpsilon is the cosine above which two unit vectors count as parallel.
	CosEpsilon = 0.9999
	// AngleEpsilon is the sine below which two directions count as parallel.
	AngleEpsilon = 0.0001
)

// Levels is the number of vertical levels a map is divided into.
const Levels = 8

// LevelHeight is the height of one level in map units.
const LevelHeight = 64

// Level returns the level a height belongs to, clipped to [0, Levels-1].
// Heights within DistanceEpsilon below a level boundary count as on it.
func Level(z float32, height float32) int {
	return Clamp(0, FloorDiv(z+DistanceEpsilon, height), Levels-1)
}
