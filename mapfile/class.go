// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"github.com/pkg/errors"
)

// Class is the classname of an entity.
type Class int

const (
	ClassWorldspawn Class = iota
	ClassFuncGroup
	ClassFuncBreakable
	ClassFuncDoor
	ClassFuncDoorSliding
	ClassFuncRotating
	ClassInfo2x2Start
	ClassInfoAlienStart
	ClassInfoCivilianStart
	ClassInfoCivilianTarget
	ClassInfoHumanStart
	ClassInfoNull
	ClassInfoPlayerStart
	ClassInfoUGVStart
	ClassLight
	ClassMiscCamera
	ClassMiscFire
	ClassMiscItem
	ClassMiscMessage
	ClassMiscMission
	ClassMiscMissionAliens
	ClassMiscModel
	ClassMiscParticle
	ClassMiscSmoke
	ClassMiscSmokeStun
	ClassMiscSound
	ClassTriggerHurt
	ClassTriggerNextmap
	ClassTriggerRescue
	ClassTriggerTouch
	numClasses
)

type classInfo struct {
	name string
	// brushes may be part of the entity
	ownsBrushes bool
	// brushes never move or break
	immutable bool
}

var classes = [numClasses]classInfo{
	ClassWorldspawn:         {"worldspawn", true, true},
	ClassFuncGroup:          {"func_group", true, true},
	ClassFuncBreakable:      {"func_breakable", true, false},
	ClassFuncDoor:           {"func_door", true, false},
	ClassFuncDoorSliding:    {"func_door_sliding", true, false},
	ClassFuncRotating:       {"func_rotating", true, false},
	ClassInfo2x2Start:       {"info_2x2_start", false, false},
	ClassInfoAlienStart:     {"info_alien_start", false, false},
	ClassInfoCivilianStart:  {"info_civilian_start", false, false},
	ClassInfoCivilianTarget: {"info_civilian_target", false, false},
	ClassInfoHumanStart:     {"info_human_start", false, false},
	ClassInfoNull:           {"info_null", false, false},
	ClassInfoPlayerStart:    {"info_player_start", false, false},
	ClassInfoUGVStart:       {"info_ugv_start", false, false},
	ClassLight:              {"light", false, false},
	ClassMiscCamera:         {"misc_camera", false, false},
	ClassMiscFire:           {"misc_fire", false, false},
	ClassMiscItem:           {"misc_item", false, false},
	ClassMiscMessage:        {"misc_message", false, false},
	ClassMiscMission:        {"misc_mission", false, false},
	ClassMiscMissionAliens:  {"misc_mission_aliens", false, false},
	ClassMiscModel:          {"misc_model", false, false},
	ClassMiscParticle:       {"misc_particle", false, false},
	ClassMiscSmoke:          {"misc_smoke", false, false},
	ClassMiscSmokeStun:      {"misc_smokestun", false, false},
	ClassMiscSound:          {"misc_sound", false, false},
	ClassTriggerHurt:        {"trigger_hurt", true, false},
	ClassTriggerNextmap:     {"trigger_nextmap", true, false},
	ClassTriggerRescue:      {"trigger_rescue", true, false},
	ClassTriggerTouch:       {"trigger_touch", true, false},
}

var classByName = func() map[string]Class {
	m := make(map[string]Class, numClasses)
	for c, i := range classes {
		m[i.name] = Class(c)
	}
	return m
}()

// ParseClass returns the class with the given classname.
func ParseClass(name string) (Class, error) {
	c, ok := classByName[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownClass, "classname %q", name)
	}
	return c, nil
}

func (c Class) String() string {
	if c < 0 || c >= numClasses {
		return "unknown"
	}
	return classes[c].name
}

// OwnsBrushes reports whether entities of class c may contain brushes.
func (c Class) OwnsBrushes() bool {
	return c >= 0 && c < numClasses && classes[c].ownsBrushes
}

// ImmutableBrushes reports whether the brushes of class c are static
// world geometry which can hide faces of other brushes.
func (c Class) ImmutableBrushes() bool {
	return c >= 0 && c < numClasses && classes[c].immutable
}
