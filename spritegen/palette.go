package spritegen

import (
	"image/color"

	"github.com/bitloam/tinywalker/anim"
)

// Type aliases: the generator shares the animation package's enums so the
// two sides agree on the (action, direction) grid by construction.
type Action = anim.Action
type Direction = anim.Direction

const (
	ActionIdle = anim.ActionIdle
	ActionWalk = anim.ActionWalk
	ActionRun  = anim.ActionRun

	DirDown  = anim.DirDown
	DirLeft  = anim.DirLeft
	DirRight = anim.DirRight
	DirUp    = anim.DirUp

	DirectionCount      = anim.DirectionCount
	PlayableActionCount = anim.PlayableActionCount
)

// Palette holds the flat colors the character is composed from.
type Palette struct {
	Skin   color.RGBA
	Hair   color.RGBA
	Shirt  color.RGBA
	Sleeve color.RGBA
	Pants  color.RGBA
	Shoes  color.RGBA
	Eyes   color.RGBA
}

// DefaultPalette is the stock villager look.
func DefaultPalette() Palette {
	return Palette{
		Skin:   color.RGBA{R: 0xE8, G: 0xB8, B: 0x90, A: 0xFF},
		Hair:   color.RGBA{R: 0x5A, G: 0x38, B: 0x25, A: 0xFF},
		Shirt:  color.RGBA{R: 0x3A, G: 0x6E, B: 0xA5, A: 0xFF},
		Sleeve: color.RGBA{R: 0x2F, G: 0x5A, B: 0x88, A: 0xFF},
		Pants:  color.RGBA{R: 0x44, G: 0x44, B: 0x55, A: 0xFF},
		Shoes:  color.RGBA{R: 0x2B, G: 0x21, B: 0x1A, A: 0xFF},
		Eyes:   color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xFF},
	}
}
