package anim

import "testing"

func TestParseActionRoundTrip(t *testing.T) {
	for a := Action(0); a < ActionCount; a++ {
		parsed, ok := ParseAction(a.String())
		if !ok || parsed != a {
			t.Fatalf("ParseAction(%q) = (%v, %t), want (%v, true)", a.String(), parsed, ok, a)
		}
	}
	if _, ok := ParseAction("sprint"); ok {
		t.Fatal("ParseAction accepted an unknown name")
	}
}

func TestParseDirectionRoundTrip(t *testing.T) {
	for d := Direction(0); d < DirectionCount; d++ {
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Fatalf("ParseDirection(%q) = (%v, %t), want (%v, true)", d.String(), parsed, ok, d)
		}
	}
	if _, ok := ParseDirection("Left"); ok {
		t.Fatal("ParseDirection accepted a non-lowercase name")
	}
}

func TestFrameCount(t *testing.T) {
	if got := FrameCount(ActionIdle); got != 4 {
		t.Fatalf("FrameCount(idle) = %d, want 4", got)
	}
	if got := FrameCount(ActionWalk); got != 6 {
		t.Fatalf("FrameCount(walk) = %d, want 6", got)
	}
	if got := FrameCount(ActionRun); got != 6 {
		t.Fatalf("FrameCount(run) = %d, want 6", got)
	}
}

func TestFrameCountPanicsForUngeneratedAction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("FrameCount(attack) did not panic")
		}
	}()
	FrameCount(ActionAttack)
}

func TestClipKeyName(t *testing.T) {
	key := ClipKey{Action: ActionRun, Direction: DirUp}
	if got := key.Name(); got != "run-up" {
		t.Fatalf("Name() = %q, want %q", got, "run-up")
	}
}
