package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/bitloam/tinywalker/components"
)

// UpdateAnimations advances every active playback by one tick.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		if animData.Current != nil {
			animData.Current.Update()
		}
	})
}
