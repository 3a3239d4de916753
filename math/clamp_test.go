// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestClampMin(t *testing.T) {
	v := Clamp(1, 0, 10)
	if v != 1 {
		t.Errorf("Clamp(1,0,10) = %v", v)
	}
}

func TestClampMax(t *testing.T) {
	v := Clamp(1, 100, 10)
	if v != 10 {
		t.Errorf("Clamp(1,100,10) = %v", v)
	}
}

func TestClampVal(t *testing.T) {
	v := Clamp(1, 5, 10)
	if v != 5 {
		t.Errorf("Clamp(1,5,10) = %v", v)
	}
}

func TestFloorDiv(t *testing.T) {
	for _, tc := range []struct {
		v, d float32
		want int
	}{
		{0, 64, 0},
		{63.9, 64, 0},
		{64, 64, 1},
		{-1, 64, -1},
		{-64, 64, -1},
		{-65, 64, -2},
		{300, 64, 4},
	} {
		if got := FloorDiv(tc.v, tc.d); got != tc.want {
			t.Errorf("FloorDiv(%v,%v) = %v, want %v", tc.v, tc.d, got, tc.want)
		}
	}
}

func TestLevel(t *testing.T) {
	for _, tc := range []struct {
		z    float32
		want int
	}{
		{-200, 0},
		{-1, 0},
		{0, 0},
		{64, 1},
		{63.999996, 1},
		{63.995, 1},
		{63.98, 0},
		{127, 1},
		{128, 2},
		{448, 7},
		{4096, 7},
	} {
		if got := Level(tc.z, LevelHeight); got != tc.want {
			t.Errorf("Level(%v) = %v, want %v", tc.z, got, tc.want)
		}
	}
}
