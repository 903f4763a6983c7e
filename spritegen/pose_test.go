package spritegen

import "testing"

func TestVerticalOffset(t *testing.T) {
	tcs := []struct {
		name   string
		action Action
		want   []int
	}{
		{"idle breathes on alternate frames", ActionIdle, []int{0, -1, 0, -1}},
		{"walk bobs between ground passes", ActionWalk, []int{0, -1, -1, 0, -1, -1}},
		{"run doubles the bob", ActionRun, []int{0, -2, -2, 0, -2, -2}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for f, want := range tc.want {
				if got := VerticalOffset(tc.action, f); got != want {
					t.Errorf("VerticalOffset(%v, %d) = %d, want %d", tc.action, f, got, want)
				}
			}
		})
	}
}

// TestPoseOffsetsArePeriodic checks that pose helpers reduce any frame index
// into the action's cycle, so a playback counter can run past the clip length
// without changing the rendered pose.
func TestPoseOffsetsArePeriodic(t *testing.T) {
	for _, a := range []Action{ActionIdle, ActionWalk, ActionRun} {
		n := len(walkLegCycle)
		if a == ActionIdle {
			n = 4
		}
		for f := 0; f < 100; f++ {
			if got, want := VerticalOffset(a, f), VerticalOffset(a, f%n); got != want {
				t.Fatalf("VerticalOffset(%v, %d) = %d, want %d", a, f, got, want)
			}
			if got, want := LegOffsets(a, f), LegOffsets(a, f%n); got != want {
				t.Fatalf("LegOffsets(%v, %d) = %+v, want %+v", a, f, got, want)
			}
			if got, want := ArmSwing(a, f), ArmSwing(a, f%n); got != want {
				t.Fatalf("ArmSwing(%v, %d) = %d, want %d", a, f, got, want)
			}
		}
	}
}

func TestLegOffsetsNeutralFrames(t *testing.T) {
	for _, a := range []Action{ActionWalk, ActionRun} {
		for _, f := range []int{0, 3} {
			if got := LegOffsets(a, f); got != (legPose{}) {
				t.Errorf("LegOffsets(%v, %d) = %+v, want neutral", a, f, got)
			}
		}
	}
}

func TestLegOffsetsIdleIsConstant(t *testing.T) {
	for f := 0; f < 4; f++ {
		if got := LegOffsets(ActionIdle, f); got != (legPose{}) {
			t.Errorf("LegOffsets(idle, %d) = %+v, want neutral", f, got)
		}
	}
}

func TestLegOffsetsRunScalesStride(t *testing.T) {
	for f := 0; f < len(walkLegCycle); f++ {
		walk := LegOffsets(ActionWalk, f)
		run := LegOffsets(ActionRun, f)
		want := legPose{
			LeftX:  walk.LeftX * runStrideScaleX,
			RightX: walk.RightX * runStrideScaleX,
			LeftY:  walk.LeftY * runStrideScaleY,
			RightY: walk.RightY * runStrideScaleY,
		}
		if run != want {
			t.Errorf("LegOffsets(run, %d) = %+v, want %+v", f, run, want)
		}
	}
}

func TestLegOffsetsWalkScissors(t *testing.T) {
	// Away from the neutral passes the legs move in opposite horizontal
	// directions, and the swings in the back half mirror the front half.
	for _, f := range []int{1, 2, 4, 5} {
		p := LegOffsets(ActionWalk, f)
		if p.LeftX != -p.RightX || p.LeftX == 0 {
			t.Errorf("LegOffsets(walk, %d) = %+v, want opposed leg travel", f, p)
		}
	}
	for _, pair := range [][2]int{{1, 4}, {2, 5}} {
		fore := LegOffsets(ActionWalk, pair[0])
		back := LegOffsets(ActionWalk, pair[1])
		if fore.LeftX != -back.LeftX || fore.LeftY != back.RightY || fore.RightY != back.LeftY {
			t.Errorf("frames %d and %d are not mirrored: %+v vs %+v", pair[0], pair[1], fore, back)
		}
	}
}

func TestArmSwing(t *testing.T) {
	tcs := []struct {
		name   string
		action Action
		want   []int
	}{
		{"idle arms hang still", ActionIdle, []int{0, 0, 0, 0}},
		{"walk swing", ActionWalk, []int{0, 2, 2, 0, -2, -2}},
		{"run swing is wider", ActionRun, []int{0, 3, 3, 0, -3, -3}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for f, want := range tc.want {
				if got := ArmSwing(tc.action, f); got != want {
					t.Errorf("ArmSwing(%v, %d) = %d, want %d", tc.action, f, got, want)
				}
			}
		})
	}
}

func TestPoseHelpersPanicOnNegativeFrame(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("VerticalOffset(-1) did not panic")
		}
	}()
	VerticalOffset(ActionWalk, -1)
}
