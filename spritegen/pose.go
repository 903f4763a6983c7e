package spritegen

import (
	"fmt"
	"math"

	"github.com/bitloam/tinywalker/anim"
)

// legPose is one entry of the gait cycle: horizontal and vertical offsets
// for each leg, in pixels relative to the neutral stance.
type legPose struct {
	LeftX, RightX float64
	LeftY, RightY float64
}

// walkLegCycle is the 6-frame gait. Frames 0 and 3 are the neutral passes;
// in between the legs scissor apart and lift alternately.
var walkLegCycle = [6]legPose{
	{0, 0, 0, 0},
	{2, -2, -1, 0},
	{3, -3, -2, 0},
	{0, 0, 0, 0},
	{-2, 2, 0, -1},
	{-3, 3, 0, -2},
}

// Run reuses the walk gait with a longer, higher stride.
const (
	runStrideScaleX = 1.3
	runStrideScaleY = 1.5
)

func checkFrame(a Action, frame int) {
	if frame < 0 || frame >= anim.FrameCount(a) {
		panic(fmt.Sprintf("spritegen: frame %d out of range for action %q", frame, a))
	}
}

// normalizeFrame reduces a frame index into the action's cycle. Pose offsets
// are periodic with the action's frame count, so any non-negative index is
// valid here; the strict range check lives in FrameCommands.
func normalizeFrame(a Action, frame int) int {
	if frame < 0 {
		panic(fmt.Sprintf("spritegen: negative frame %d", frame))
	}
	return frame % anim.FrameCount(a)
}

// VerticalOffset is the whole-body bob for a frame, in pixels (negative is
// up). Idle breathes on a 4-frame cycle; walk and run bob on the 6-frame
// gait, with run at double amplitude. Frames 0 and 3 are always grounded.
func VerticalOffset(a Action, frame int) int {
	frame = normalizeFrame(a, frame)
	switch a {
	case ActionIdle:
		if frame == 1 || frame == 3 {
			return -1
		}
		return 0
	case ActionWalk:
		if frame == 0 || frame == 3 {
			return 0
		}
		return -1
	case ActionRun:
		if frame == 0 || frame == 3 {
			return 0
		}
		return -2
	}
	panic(fmt.Sprintf("spritegen: no bob defined for action %q", a))
}

// LegOffsets returns the per-leg displacement for a frame. Idle keeps a
// constant neutral stance; walk follows the gait cycle; run scales it.
func LegOffsets(a Action, frame int) legPose {
	frame = normalizeFrame(a, frame)
	switch a {
	case ActionIdle:
		return legPose{}
	case ActionWalk:
		return walkLegCycle[frame%6]
	case ActionRun:
		p := walkLegCycle[frame%6]
		return legPose{
			LeftX:  p.LeftX * runStrideScaleX,
			RightX: p.RightX * runStrideScaleX,
			LeftY:  p.LeftY * runStrideScaleY,
			RightY: p.RightY * runStrideScaleY,
		}
	}
	panic(fmt.Sprintf("spritegen: no gait defined for action %q", a))
}

// ArmSwing returns the horizontal displacement of the visible arm in a side
// view. Zero for idle; walk and run swing sinusoidally over the clip.
func ArmSwing(a Action, frame int) int {
	frame = normalizeFrame(a, frame)
	var amplitude float64
	switch a {
	case ActionIdle:
		return 0
	case ActionWalk:
		amplitude = 2
	case ActionRun:
		amplitude = 3
	default:
		panic(fmt.Sprintf("spritegen: no arm swing defined for action %q", a))
	}
	phase := 2 * math.Pi * float64(frame) / float64(anim.FrameCount(a))
	return int(math.Round(amplitude * math.Sin(phase)))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
