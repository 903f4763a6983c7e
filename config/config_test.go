package config

import (
	"image/color"
	"testing"
)

func TestEmbeddedConfigLoads(t *testing.T) {
	if C.Width <= 0 || C.Height <= 0 {
		t.Fatalf("window size = %dx%d, want positive", C.Width, C.Height)
	}
	if C.TileSize != 32 {
		t.Fatalf("tile size = %d, want 32", C.TileSize)
	}
	if C.Player.FrameWidth != 32 || C.Player.FrameHeight != 32 {
		t.Fatalf("frame size = %dx%d, want 32x32", C.Player.FrameWidth, C.Player.FrameHeight)
	}
	if C.Player.RunSpeed <= C.Player.WalkSpeed {
		t.Fatalf("run speed %v not above walk speed %v", C.Player.RunSpeed, C.Player.WalkSpeed)
	}
	if C.Player.CollisionWidth <= 0 || C.Player.CollisionHeight <= 0 {
		t.Fatal("collision box not positive")
	}
}

func TestParseHexColor(t *testing.T) {
	tcs := []struct {
		in     string
		want   color.RGBA
		wantOK bool
	}{
		{"#ff0000", color.RGBA{R: 0xFF, A: 0xFF}, true},
		{"#00ff7f", color.RGBA{G: 0xFF, B: 0x7F, A: 0xFF}, true},
		{"#000000", color.RGBA{A: 0xFF}, true},
		{"", color.RGBA{}, false},
		{"ff0000", color.RGBA{}, false},
		{"#zzxxyy", color.RGBA{}, false},
	}

	for _, tc := range tcs {
		got, ok := ParseHexColor(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("ParseHexColor(%q) = (%v, %t), want (%v, %t)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestDefaultClipTableIsValid(t *testing.T) {
	table := DefaultClipTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if table.FrameWidth != C.Player.FrameWidth || table.FrameHeight != C.Player.FrameHeight {
		t.Fatalf("table frame size = %dx%d, want %dx%d",
			table.FrameWidth, table.FrameHeight, C.Player.FrameWidth, C.Player.FrameHeight)
	}
}

func TestEditorActionsCoverPlayableActions(t *testing.T) {
	seen := make(map[Action]bool, len(EditorActions))
	for _, a := range EditorActions {
		if seen[a] {
			t.Fatalf("EditorActions lists %v twice", a)
		}
		seen[a] = true
	}
	for _, a := range []Action{ActionIdle, ActionWalk, ActionRun} {
		if !seen[a] {
			t.Fatalf("EditorActions is missing %v", a)
		}
	}
}
