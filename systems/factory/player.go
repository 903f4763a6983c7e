package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/bitloam/tinywalker/anim"
	"github.com/bitloam/tinywalker/archetypes"
	"github.com/bitloam/tinywalker/components"
	cfg "github.com/bitloam/tinywalker/config"
	"github.com/bitloam/tinywalker/tags"
)

// CreatePlayer spawns the playable character at x, y (feet position). The
// collision box covers the feet so the sprite can overlap walls behind it.
func CreatePlayer(ecs *ecs.ECS, x, y float64, table *anim.ClipTable) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.C.Player.CollisionWidth)
	h := float64(cfg.C.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.CharState.SetValue(player, components.CharStateData{
		State: anim.InitialState(),
	})

	animData := GenerateAnimations(table)
	components.Animation.Set(player, animData)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
