package anim

import "testing"

func TestPlaybackStartsAtFirstFrame(t *testing.T) {
	clip := Clip{Row: 3, StartFrame: 2, FrameCount: 4, FrameRate: 10}
	p := NewPlayback(clip)
	if p.Frame() != 2 {
		t.Fatalf("Frame() = %d, want 2", p.Frame())
	}
	if p.Clip() != clip {
		t.Fatalf("Clip() = %+v, want %+v", p.Clip(), clip)
	}
	if p.Looped {
		t.Fatal("new playback reports Looped")
	}
}

// TestPlaybackAdvance pins down the frame timer: with the counter starting at
// ticksPerFrame and the frame advancing only once the counter drops below
// zero, each frame lasts ticksPerFrame+1 ticks.
func TestPlaybackAdvance(t *testing.T) {
	p := NewPlayback(Clip{Row: 0, StartFrame: 0, FrameCount: 4, FrameRate: 30})

	ticksPerFrame := 3 // TickRate/FrameRate + 1
	wantFrames := []int{0, 1, 2, 3, 0, 1}
	for i, want := range wantFrames {
		if p.Frame() != want {
			t.Fatalf("after %d frames: Frame() = %d, want %d", i, p.Frame(), want)
		}
		for tick := 0; tick < ticksPerFrame; tick++ {
			p.Update()
		}
	}
}

func TestPlaybackLoopsToStartFrame(t *testing.T) {
	p := NewPlayback(Clip{Row: 0, StartFrame: 4, FrameCount: 2, FrameRate: 30})

	seen := make(map[int]bool)
	for tick := 0; tick < 20; tick++ {
		seen[p.Frame()] = true
		p.Update()
	}
	if !p.Looped {
		t.Fatal("playback never looped")
	}
	if len(seen) != 2 || !seen[4] || !seen[5] {
		t.Fatalf("visited frames = %v, want exactly {4, 5}", seen)
	}
}

func TestPlaybackRestart(t *testing.T) {
	p := NewPlayback(Clip{Row: 0, StartFrame: 1, FrameCount: 3, FrameRate: 30})
	for tick := 0; tick < 12; tick++ {
		p.Update()
	}
	if !p.Looped {
		t.Fatal("playback never looped")
	}

	p.Restart()
	if p.Frame() != 1 {
		t.Fatalf("Frame() after Restart = %d, want 1", p.Frame())
	}
	if p.Looped {
		t.Fatal("Restart left Looped set")
	}
	// The frame timer resets too: the second frame arrives no sooner than
	// it does from a fresh playback.
	for tick := 0; tick < 2; tick++ {
		p.Update()
	}
	if p.Frame() != 1 {
		t.Fatalf("Frame() two ticks after Restart = %d, want 1", p.Frame())
	}
}
