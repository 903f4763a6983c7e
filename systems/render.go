package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/bitloam/tinywalker/components"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawLevel blits the pre-rendered ground before any characters.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Ground == nil {
		return
	}
	drawOp.GeoM.Reset()
	screen.DrawImage(level.Ground, drawOp)
}

// DrawAnimated renders entities with an Animation component based on their
// current frame. Sprites anchor at bottom-center so the feet line up with
// the collision box.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		img := animData.Frame()
		if img == nil {
			return
		}

		o := components.Object.Get(e)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))
		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)
		screen.DrawImage(img, drawOp)
	})
}
