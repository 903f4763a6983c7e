package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LevelData holds the loaded map: its pixel bounds and the pre-rendered
// ground image the world renderer blits before the characters.
type LevelData struct {
	Name   string
	Width  int
	Height int
	Ground *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
