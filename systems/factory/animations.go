package factory

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bitloam/tinywalker/anim"
	"github.com/bitloam/tinywalker/components"
	cfg "github.com/bitloam/tinywalker/config"
	"github.com/bitloam/tinywalker/spritegen"
)

// GenerateAnimations builds an AnimationData component: it renders the
// procedural spritesheet once and pairs it with the clip table that maps
// (action, direction) keys onto sheet rows. The playback starts on the
// idle-down clip.
func GenerateAnimations(table *anim.ClipTable) *components.AnimationData {
	if err := table.Validate(); err != nil {
		// Configuration error; fail loudly at spawn rather than mid-game.
		panic("invalid clip table: " + err.Error())
	}

	animData := &components.AnimationData{
		Sheet:        spritegen.BuildSheetImage(cfg.CharacterPalette()),
		Table:        table,
		CachedFrames: make(map[int]map[int]*ebiten.Image),
		FrameWidth:   table.FrameWidth,
		FrameHeight:  table.FrameHeight,
	}
	animData.SetClip(anim.InitialState().Key())

	return animData
}
