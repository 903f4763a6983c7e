package config

import "github.com/bitloam/tinywalker/anim"

// Type aliases so call sites can use config.Action etc. while the canonical
// enums live next to the selector logic.
type Action = anim.Action
type Direction = anim.Direction
type ClipKey = anim.ClipKey

// Re-export action constants.
const (
	ActionIdle = anim.ActionIdle
	ActionWalk = anim.ActionWalk
	ActionRun  = anim.ActionRun

	ActionAttack = anim.ActionAttack
	ActionHurt   = anim.ActionHurt
	ActionDeath  = anim.ActionDeath
	ActionJump   = anim.ActionJump
	ActionCast   = anim.ActionCast

	ActionTotal = anim.ActionCount
)

// Re-export direction constants.
const (
	DirDown  = anim.DirDown
	DirLeft  = anim.DirLeft
	DirRight = anim.DirRight
	DirUp    = anim.DirUp

	DirectionCount = anim.DirectionCount
)
