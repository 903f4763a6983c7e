package systems

import (
	"testing"

	"github.com/bitloam/tinywalker/anim"
	"github.com/bitloam/tinywalker/components"
	cfg "github.com/bitloam/tinywalker/config"
)

func newTestEditor() *components.EditorData {
	ed := &components.EditorData{}
	InitEditor(ed, cfg.DefaultClipTable())
	return ed
}

func TestInitEditorDefaults(t *testing.T) {
	ed := newTestEditor()
	if ed.Selected != (anim.ClipKey{Action: anim.ActionIdle, Direction: anim.DirDown}) {
		t.Fatalf("selected = %s, want idle-down", ed.Selected.Name())
	}
	if !ed.ShowGrid {
		t.Fatal("grid overlay not enabled by default")
	}
	if ed.Preview == nil {
		t.Fatal("no preview playback after init")
	}
	if ed.Dirty {
		t.Fatal("fresh editor marked dirty")
	}
}

func TestCycleActionWrapsAroundEditorList(t *testing.T) {
	ed := newTestEditor()

	CycleAction(ed, -1)
	if ed.Selected.Action != cfg.EditorActions[len(cfg.EditorActions)-1] {
		t.Fatalf("action after cycling back = %v, want last editor action", ed.Selected.Action)
	}
	CycleAction(ed, 1)
	if ed.Selected.Action != anim.ActionIdle {
		t.Fatalf("action after cycling forward = %v, want idle", ed.Selected.Action)
	}

	for range cfg.EditorActions {
		CycleAction(ed, 1)
	}
	if ed.Selected.Action != anim.ActionIdle {
		t.Fatalf("full cycle ended on %v, want idle", ed.Selected.Action)
	}
	if ed.Selected.Direction != anim.DirDown {
		t.Fatalf("cycling actions moved direction to %v", ed.Selected.Direction)
	}
}

func TestCycleDirectionWraps(t *testing.T) {
	ed := newTestEditor()

	CycleDirection(ed, -1)
	if ed.Selected.Direction != anim.DirUp {
		t.Fatalf("direction after cycling back = %v, want up", ed.Selected.Direction)
	}
	CycleDirection(ed, 1)
	if ed.Selected.Direction != anim.DirDown {
		t.Fatalf("direction after cycling forward = %v, want down", ed.Selected.Direction)
	}
}

func TestAdjustClampsFields(t *testing.T) {
	ed := newTestEditor()

	for i := 0; i < 100; i++ {
		AdjustRow(ed, 1)
		AdjustStartFrame(ed, 1)
		AdjustFrameCount(ed, 1)
		AdjustFrameRate(ed, 1)
	}
	c, err := ed.Table.Lookup(ed.Selected)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if c.Row != editorMaxRow || c.StartFrame != editorMaxStartFrame ||
		c.FrameCount != editorMaxFrameCount || c.FrameRate != editorMaxFrameRate {
		t.Fatalf("clip after raising = %+v, want fields at their limits", c)
	}

	for i := 0; i < 100; i++ {
		AdjustRow(ed, -1)
		AdjustStartFrame(ed, -1)
		AdjustFrameCount(ed, -1)
		AdjustFrameRate(ed, -1)
	}
	c, _ = ed.Table.Lookup(ed.Selected)
	if c.Row != 0 || c.StartFrame != 0 || c.FrameCount != 1 || c.FrameRate != 1 {
		t.Fatalf("clip after lowering = %+v, want row 0, start 0, count 1, rate 1", c)
	}

	if !ed.Dirty {
		t.Fatal("edits did not mark the editor dirty")
	}
}

// Placeholder actions start unmapped; adjusting one materializes an entry
// instead of failing the lookup.
func TestAdjustUnmappedClipMaterializesEntry(t *testing.T) {
	ed := newTestEditor()
	SelectClip(ed, anim.ClipKey{Action: anim.ActionAttack, Direction: anim.DirLeft})

	if _, err := ed.Table.Lookup(ed.Selected); err == nil {
		t.Fatal("placeholder action unexpectedly mapped already")
	}
	AdjustRow(ed, 12)
	c, err := ed.Table.Lookup(ed.Selected)
	if err != nil {
		t.Fatalf("Lookup after adjust returned error: %v", err)
	}
	if c.Row != 12 || c.FrameCount != 4 || c.FrameRate != 8 {
		t.Fatalf("materialized clip = %+v, want row 12 with default shape", c)
	}
}

func TestSelectClipRestartsPreview(t *testing.T) {
	ed := newTestEditor()
	for i := 0; i < 30; i++ {
		UpdateEditorPreview(ed)
	}

	SelectClip(ed, anim.ClipKey{Action: anim.ActionRun, Direction: anim.DirLeft})
	want, _ := ed.Table.Lookup(ed.Selected)
	if ed.Preview.Clip() != want {
		t.Fatalf("preview clip = %+v, want %+v", ed.Preview.Clip(), want)
	}
	if ed.Preview.Frame() != want.StartFrame {
		t.Fatalf("preview frame = %d, want %d", ed.Preview.Frame(), want.StartFrame)
	}
}

func TestResetEditorRestoresDefaults(t *testing.T) {
	ed := newTestEditor()
	AdjustRow(ed, 5)

	ResetEditor(ed)
	c, err := ed.Table.Lookup(anim.ClipKey{Action: anim.ActionIdle, Direction: anim.DirDown})
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if c.Row != 0 {
		t.Fatalf("idle-down row after reset = %d, want 0", c.Row)
	}
	if !ed.Dirty {
		t.Fatal("reset should leave unsaved changes marked dirty")
	}
}

func TestParseClipName(t *testing.T) {
	tcs := []struct {
		in     string
		want   anim.ClipKey
		wantOK bool
	}{
		{"idle-down", anim.ClipKey{Action: anim.ActionIdle, Direction: anim.DirDown}, true},
		{"walk-left", anim.ClipKey{Action: anim.ActionWalk, Direction: anim.DirLeft}, true},
		{"run-up", anim.ClipKey{Action: anim.ActionRun, Direction: anim.DirUp}, true},
		{"attack-right", anim.ClipKey{Action: anim.ActionAttack, Direction: anim.DirRight}, true},
		{"", anim.ClipKey{}, false},
		{"idle", anim.ClipKey{}, false},
		{"idle-", anim.ClipKey{}, false},
		{"-down", anim.ClipKey{}, false},
		{"fly-down", anim.ClipKey{}, false},
		{"idle-northwest", anim.ClipKey{}, false},
	}

	for _, tc := range tcs {
		got, ok := parseClipName(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("parseClipName(%q) = (%s, %t), want (%s, %t)",
				tc.in, got.Name(), ok, tc.want.Name(), tc.wantOK)
		}
	}
}
