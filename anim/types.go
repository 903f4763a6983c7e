package anim

import "fmt"

// Action identifies a character activity that owns a set of animation rows.
type Action int

const (
	ActionIdle Action = iota
	ActionWalk
	ActionRun

	// Placeholder actions: mappable in the clip editor, never generated
	// by the sprite generator.
	ActionAttack
	ActionHurt
	ActionDeath
	ActionJump
	ActionCast

	ActionCount
)

// PlayableActionCount is the number of actions the generator produces rows for.
const PlayableActionCount = 3

// Direction is a cardinal facing. Diagonal input collapses to one of these.
type Direction int

const (
	DirDown Direction = iota
	DirLeft
	DirRight
	DirUp

	DirectionCount
)

var actionNames = [ActionCount]string{
	"idle", "walk", "run", "attack", "hurt", "death", "jump", "cast",
}

var directionNames = [DirectionCount]string{
	"down", "left", "right", "up",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		panic(fmt.Sprintf("anim: invalid action %d", int(a)))
	}
	return actionNames[a]
}

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		panic(fmt.Sprintf("anim: invalid direction %d", int(d)))
	}
	return directionNames[d]
}

// ParseAction resolves a lowercase action name. Used when decoding clip tables.
func ParseAction(s string) (Action, bool) {
	for i, n := range actionNames {
		if n == s {
			return Action(i), true
		}
	}
	return 0, false
}

// ParseDirection resolves a lowercase direction name.
func ParseDirection(s string) (Direction, bool) {
	for i, n := range directionNames {
		if n == s {
			return Direction(i), true
		}
	}
	return 0, false
}

// FrameCount returns how many frames the generator produces for an action.
// Idle breathes on a 4-frame cycle; walk and run share a 6-frame gait.
func FrameCount(a Action) int {
	switch a {
	case ActionIdle:
		return 4
	case ActionWalk, ActionRun:
		return 6
	default:
		panic(fmt.Sprintf("anim: no generated frames for action %q", a))
	}
}

// ClipKey is the typed composite key for clip lookup. Using a struct key
// instead of concatenated strings keeps typos out of the lookup path.
type ClipKey struct {
	Action    Action
	Direction Direction
}

// Name returns the clip identifier in "action-direction" form, e.g. "walk-left".
func (k ClipKey) Name() string {
	return k.Action.String() + "-" + k.Direction.String()
}
