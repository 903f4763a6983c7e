package components

import (
	"github.com/yohamta/donburi"

	"github.com/bitloam/tinywalker/anim"
)

// CharStateData carries the selector's value state for one entity.
type CharStateData struct {
	State anim.State
}

var CharState = donburi.NewComponentType[CharStateData]()
