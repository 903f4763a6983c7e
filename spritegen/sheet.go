package spritegen

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bitloam/tinywalker/anim"
)

// BuildSheet renders the full 12-row spritesheet. Rows are ordered
// idle(down,left,right,up), walk(down,left,right,up), run(down,left,right,up);
// actions with fewer frames than the row width leave the trailing tiles
// transparent. The result is deterministic for a given palette.
func BuildSheet(p Palette) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, SheetWidth, SheetHeight))
	for a := ActionIdle; a <= ActionRun; a++ {
		for d := Direction(0); d < DirectionCount; d++ {
			row := Row(a, d)
			for f := 0; f < anim.FrameCount(a); f++ {
				origin := image.Point{X: f * FrameWidth, Y: row * FrameHeight}
				Rasterize(sheet, origin, FrameCommands(a, d, f, p))
			}
		}
	}
	return sheet
}

// BuildPreview renders a single frame as an ebiten image, used by the
// mapping editor's preview pane.
func BuildPreview(a Action, d Direction, frame int, p Palette) *ebiten.Image {
	return ebiten.NewImageFromImage(RenderFrame(a, d, frame, p))
}

// BuildSheetImage renders the full sheet as an ebiten image ready for
// sub-image slicing by the animation system.
func BuildSheetImage(p Palette) *ebiten.Image {
	return ebiten.NewImageFromImage(BuildSheet(p))
}
