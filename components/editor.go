package components

import (
	"github.com/yohamta/donburi"

	"github.com/bitloam/tinywalker/anim"
)

// EditorData is the mapping editor's model: the clip table being edited,
// the selected clip, and the live preview playback.
type EditorData struct {
	Table    *anim.ClipTable
	Selected anim.ClipKey
	Preview  *anim.Playback
	ShowGrid bool
	Dirty    bool
	Status   string
}

var Editor = donburi.NewComponentType[EditorData]()
