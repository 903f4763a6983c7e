package systems

import (
	"github.com/bitloam/tinywalker/anim"
	"github.com/bitloam/tinywalker/components"
	cfg "github.com/bitloam/tinywalker/config"
)

// InitEditor prepares the editor model over a live clip table and restores
// the persisted editor preferences.
func InitEditor(ed *components.EditorData, table *anim.ClipTable) {
	ed.Table = table
	ed.Selected = anim.InitialState().Key()
	ed.ShowGrid = true

	if saved, err := LoadSettings(); err == nil && saved != nil {
		ed.ShowGrid = saved.ShowGrid
		if key, ok := parseClipName(saved.SelectedClip); ok {
			ed.Selected = key
		}
	}

	refreshPreview(ed)
}

// SelectClip switches the edited clip and restarts the preview.
func SelectClip(ed *components.EditorData, key anim.ClipKey) {
	ed.Selected = key
	refreshPreview(ed)
}

// CycleAction steps the selected clip's action through the editor's action
// list, including the placeholder actions with no generated rows.
func CycleAction(ed *components.EditorData, delta int) {
	actions := cfg.EditorActions
	idx := 0
	for i, a := range actions {
		if a == ed.Selected.Action {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(actions)) % len(actions)
	SelectClip(ed, anim.ClipKey{Action: actions[idx], Direction: ed.Selected.Direction})
}

// CycleDirection steps the selected clip's direction.
func CycleDirection(ed *components.EditorData, delta int) {
	d := (int(ed.Selected.Direction) + delta + int(anim.DirectionCount)) % int(anim.DirectionCount)
	SelectClip(ed, anim.ClipKey{Action: ed.Selected.Action, Direction: anim.Direction(d)})
}

// Clamp limits for hand-edited clip fields. Rows beyond the generated sheet
// are allowed (placeholder actions may map future rows) but stay bounded.
const (
	editorMaxRow        = 31
	editorMaxStartFrame = 31
	editorMaxFrameCount = 32
	editorMaxFrameRate  = 60
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// selectedClip returns the current entry, materializing a default-shaped one
// for keys not yet in the table (placeholder actions start unmapped).
func selectedClip(ed *components.EditorData) anim.Clip {
	if c, err := ed.Table.Lookup(ed.Selected); err == nil {
		return c
	}
	return anim.Clip{Row: 0, StartFrame: 0, FrameCount: 4, FrameRate: 8}
}

// AdjustRow shifts the selected clip's sheet row.
func AdjustRow(ed *components.EditorData, delta int) {
	c := selectedClip(ed)
	c.Row = clamp(c.Row+delta, 0, editorMaxRow)
	storeClip(ed, c)
}

// AdjustStartFrame shifts the selected clip's first frame column.
func AdjustStartFrame(ed *components.EditorData, delta int) {
	c := selectedClip(ed)
	c.StartFrame = clamp(c.StartFrame+delta, 0, editorMaxStartFrame)
	storeClip(ed, c)
}

// AdjustFrameCount changes how many frames the clip plays.
func AdjustFrameCount(ed *components.EditorData, delta int) {
	c := selectedClip(ed)
	c.FrameCount = clamp(c.FrameCount+delta, 1, editorMaxFrameCount)
	storeClip(ed, c)
}

// AdjustFrameRate changes the clip's playback rate.
func AdjustFrameRate(ed *components.EditorData, delta int) {
	c := selectedClip(ed)
	c.FrameRate = clamp(c.FrameRate+delta, 1, editorMaxFrameRate)
	storeClip(ed, c)
}

func storeClip(ed *components.EditorData, c anim.Clip) {
	ed.Table.Set(ed.Selected, c)
	ed.Dirty = true
	ed.Status = ""
	refreshPreview(ed)
}

// SaveEditor persists the clip table and the editor preferences.
func SaveEditor(ed *components.EditorData) {
	if err := SaveClipTable(ed.Table); err != nil {
		ed.Status = "save failed: " + err.Error()
		return
	}
	_ = SaveSettings(&SavedSettings{
		ShowGrid:     ed.ShowGrid,
		SelectedClip: ed.Selected.Name(),
	})
	ed.Dirty = false
	ed.Status = "saved"
}

// ReloadEditor discards in-memory edits in favor of the persisted table, or
// the default mapping when nothing was saved.
func ReloadEditor(ed *components.EditorData) {
	loaded, err := LoadClipTable()
	if err != nil {
		ed.Status = "load failed: " + err.Error()
		return
	}
	if loaded == nil {
		*ed.Table = *cfg.DefaultClipTable()
		ed.Status = "no saved table, defaults restored"
	} else {
		*ed.Table = *loaded
		ed.Status = "loaded"
	}
	ed.Dirty = false
	refreshPreview(ed)
}

// ResetEditor restores the shipped default mapping without touching disk.
func ResetEditor(ed *components.EditorData) {
	*ed.Table = *cfg.DefaultClipTable()
	ed.Dirty = true
	ed.Status = "defaults"
	refreshPreview(ed)
}

// UpdateEditorPreview advances the preview playback by one tick.
func UpdateEditorPreview(ed *components.EditorData) {
	if ed.Preview != nil {
		ed.Preview.Update()
	}
}

func refreshPreview(ed *components.EditorData) {
	clip, _ := ed.Table.LookupOrDefault(ed.Selected)
	ed.Preview = anim.NewPlayback(clip)
}

func parseClipName(name string) (anim.ClipKey, bool) {
	for i := len(name) - 1; i > 0; i-- {
		if name[i] != '-' {
			continue
		}
		a, okA := anim.ParseAction(name[:i])
		d, okD := anim.ParseDirection(name[i+1:])
		if okA && okD {
			return anim.ClipKey{Action: a, Direction: d}, true
		}
	}
	return anim.ClipKey{}, false
}
