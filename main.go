package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/bitloam/tinywalker/anim"
	"github.com/bitloam/tinywalker/config"
	"github.com/bitloam/tinywalker/fonts"
	"github.com/bitloam/tinywalker/scenes"
	"github.com/bitloam/tinywalker/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(table *anim.ClipTable) *Game {
	fonts.LoadFont(fonts.Body, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 18)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 8)

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, table)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load the saved clip mapping
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	table := config.DefaultClipTable()
	if saved, err := systems.LoadClipTable(); err == nil && saved != nil {
		table = saved
	}

	if err := ebiten.RunGame(NewGame(table)); err != nil {
		log.Fatal(err)
	}
}
