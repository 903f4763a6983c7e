package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/bitloam/tinywalker/anim"
	"github.com/bitloam/tinywalker/components"
	cfg "github.com/bitloam/tinywalker/config"
	"github.com/bitloam/tinywalker/tags"
)

// UpdateLocomotion runs the animation selector and moves the player. The
// selector decides the facing and action from this tick's flags; the clip is
// swapped only when the selector reports a change, so held input never
// restarts the running clip.
func UpdateLocomotion(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	flags := input.MoveFlags()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		state := components.CharState.Get(e)
		animData := components.Animation.Get(e)
		obj := components.Object.Get(e)

		next, changed := anim.Resolve(state.State, flags)
		if changed {
			state.State = next
			animData.SetClip(next.Key())
		}

		dx, dy := moveDelta(flags)
		moveObject(obj.Object, dx, dy)
	})
}

// moveDelta converts the raw flags into a velocity. Opposing flags cancel;
// diagonal movement is normalized so it is no faster than cardinal movement.
func moveDelta(f anim.Flags) (dx, dy float64) {
	if f.Left {
		dx -= 1
	}
	if f.Right {
		dx += 1
	}
	if f.Up {
		dy -= 1
	}
	if f.Down {
		dy += 1
	}
	if dx == 0 && dy == 0 {
		return 0, 0
	}

	speed := cfg.C.Player.WalkSpeed
	if f.Running {
		speed = cfg.C.Player.RunSpeed
	}
	if dx != 0 && dy != 0 {
		speed /= math.Sqrt2
	}
	return dx * speed, dy * speed
}

// moveObject moves one axis at a time so sliding along walls works.
func moveObject(obj *resolv.Object, dx, dy float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		obj.Y += dy
	}
	obj.Update()
}
