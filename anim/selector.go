package anim

// Flags is one tick's worth of movement input. Multiple direction flags may
// be set at once (diagonal input); Resolve collapses them.
type Flags struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Running bool
}

// State is the selector's value state: what the character is doing and which
// way it faces. It is passed in and returned by value so the transition stays
// a pure function and multiple entities can share the logic.
type State struct {
	Action    Action
	Direction Direction
}

// InitialState is the state every character spawns in.
func InitialState() State {
	return State{Action: ActionIdle, Direction: DirDown}
}

// Key returns the clip key for the state.
func (s State) Key() ClipKey {
	return ClipKey{Action: s.Action, Direction: s.Direction}
}

// Resolve computes the next state from the previous state and this tick's
// input, reporting whether the active clip changed. Callers must restart
// playback only when changed is true; on false the current clip keeps playing.
//
// Direction tie-break when several flags are set: left beats right beats up
// beats down. With no flags set the character keeps its previous facing and
// goes idle regardless of the run modifier.
func Resolve(prev State, in Flags) (next State, changed bool) {
	next = prev

	moving := in.Left || in.Right || in.Up || in.Down
	switch {
	case in.Left:
		next.Direction = DirLeft
	case in.Right:
		next.Direction = DirRight
	case in.Up:
		next.Direction = DirUp
	case in.Down:
		next.Direction = DirDown
	}

	switch {
	case !moving:
		next.Action = ActionIdle
	case in.Running:
		next.Action = ActionRun
	default:
		next.Action = ActionWalk
	}

	return next, next != prev
}
