package components

import (
	"github.com/yohamta/donburi"

	"github.com/bitloam/tinywalker/anim"
	cfg "github.com/bitloam/tinywalker/config"
)

// InputData stores the current and previous frame's pressed state for all
// actions. Just-pressed checks compare the two frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

// JustPressed reports whether the action went down this frame.
func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// MoveFlags maps the pressed state onto the selector's input flags.
func (i *InputData) MoveFlags() anim.Flags {
	return anim.Flags{
		Left:    i.Current[cfg.ActionMoveLeft],
		Right:   i.Current[cfg.ActionMoveRight],
		Up:      i.Current[cfg.ActionMoveUp],
		Down:    i.Current[cfg.ActionMoveDown],
		Running: i.Current[cfg.ActionModRun],
	}
}

var Input = donburi.NewComponentType[InputData]()
