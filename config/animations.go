package config

import (
	"image/color"

	"github.com/bitloam/tinywalker/anim"
	"github.com/bitloam/tinywalker/spritegen"
)

// DefaultClipTable builds the clip table matching the generated sheet layout.
// The editor can remap rows, counts and rates; this is the shipped mapping.
func DefaultClipTable() *anim.ClipTable {
	return anim.DefaultTable(C.Player.FrameWidth, C.Player.FrameHeight)
}

// CharacterPalette resolves the configured character colors, falling back to
// the stock palette for any color missing from the yaml.
func CharacterPalette() spritegen.Palette {
	p := spritegen.DefaultPalette()
	assign := func(dst *color.RGBA, hex string) {
		if c, ok := ParseHexColor(hex); ok {
			*dst = c
		}
	}
	assign(&p.Skin, C.Palette.Skin)
	assign(&p.Hair, C.Palette.Hair)
	assign(&p.Shirt, C.Palette.Shirt)
	assign(&p.Sleeve, C.Palette.Sleeve)
	assign(&p.Pants, C.Palette.Pants)
	assign(&p.Shoes, C.Palette.Shoes)
	assign(&p.Eyes, C.Palette.Eyes)
	return p
}

// EditorActions lists every action the mapping editor can assign a clip to,
// including placeholders the generator has no rows for yet.
var EditorActions = []Action{
	ActionIdle, ActionWalk, ActionRun,
	ActionAttack, ActionHurt, ActionDeath, ActionJump, ActionCast,
}
