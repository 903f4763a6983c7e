package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/bitloam/tinywalker/anim"
	"github.com/bitloam/tinywalker/assets"
	cfg "github.com/bitloam/tinywalker/config"
	"github.com/bitloam/tinywalker/systems"
	"github.com/bitloam/tinywalker/systems/factory"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene is the playable demo: the procedural character walking around
// the meadow map.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	table        *anim.ClipTable
	once         sync.Once
}

// NewWorldScene creates the demo scene. The clip table is shared with the
// editor scene so edits apply to the live character.
func NewWorldScene(sc SceneChanger, table *anim.ClipTable) *WorldScene {
	return &WorldScene{sceneChanger: sc, table: table}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	input := systems.GetOrCreateInput(ws.ecs)
	if input.JustPressed(cfg.ActionToggleEditor) {
		ws.sceneChanger.ChangeScene(NewEditorScene(ws.sceneChanger, ws.table))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdateLocomotion)
	ws.ecs.AddSystem(systems.UpdateAnimations)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawAnimated)

	level := assets.MeadowLevel()
	factory.CreateSpace(ws.ecs, level.Width, level.Height, cfg.C.TileSize, cfg.C.TileSize)
	factory.CreateLevel(ws.ecs, level)
	factory.CreatePlayer(ws.ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y, ws.table)
}
