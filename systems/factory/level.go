package factory

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/bitloam/tinywalker/archetypes"
	"github.com/bitloam/tinywalker/assets"
	"github.com/bitloam/tinywalker/components"
	cfg "github.com/bitloam/tinywalker/config"
	"github.com/bitloam/tinywalker/spritegen"
)

// CreateLevel spawns the level entity with its pre-rendered ground and one
// wall entity per collision rectangle from the map.
func CreateLevel(ecs *ecs.ECS, level assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Name:   level.Name,
		Width:  level.Width,
		Height: level.Height,
		Ground: renderGround(level.Width, level.Height),
	})

	for _, wall := range level.Walls {
		CreateWall(ecs, wall.X, wall.Y, wall.Width, wall.Height)
	}

	return entry
}

// renderGround tiles speckled grass across the level bounds. The speckling
// is decorative; a fixed seed keeps the ground from shifting between runs.
func renderGround(width, height int) *ebiten.Image {
	size := cfg.C.TileSize
	rng := rand.New(rand.NewSource(1))

	ground := ebiten.NewImage(width, height)
	op := &ebiten.DrawImageOptions{}
	for y := 0; y < height; y += size {
		for x := 0; x < width; x += size {
			tile := spritegen.GroundTileImage(rng, size)
			op.GeoM.Reset()
			op.GeoM.Translate(float64(x), float64(y))
			ground.DrawImage(tile, op)
		}
	}
	return ground
}
