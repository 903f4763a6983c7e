// Package spritegen procedurally generates the character spritesheet: for
// every (action, direction, frame) cell of the fixed grid it computes a pose
// and emits flat-color rectangle draw commands, which are rasterized into
// 32x32 tiles and assembled into a single sheet image.
package spritegen

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Sheet geometry. The row order is idle(down,left,right,up), then walk, then
// run, one row per (action, direction) pair.
const (
	FrameWidth   = 32
	FrameHeight  = 32
	FramesPerRow = 6
	SheetRows    = 12

	SheetWidth  = FrameWidth * FramesPerRow
	SheetHeight = FrameHeight * SheetRows
)

// DrawCommand is one filled rectangle in tile-local coordinates. Frames are
// described as an ordered back-to-front command list so pose computation
// stays independent of any drawing surface and tests can assert on the list.
type DrawCommand struct {
	X, Y  int
	W, H  int
	Color color.RGBA
}

// rect is a shorthand used by the composition code.
func rect(x, y, w, h int, c color.RGBA) DrawCommand {
	return DrawCommand{X: x, Y: y, W: w, H: h, Color: c}
}

// Rasterize draws a command list into dst at the given tile origin. Commands
// are clipped to the tile bounds; coordinates are tile-local.
func Rasterize(dst *image.RGBA, origin image.Point, cmds []DrawCommand) {
	tile := image.Rect(origin.X, origin.Y, origin.X+FrameWidth, origin.Y+FrameHeight)
	for _, c := range cmds {
		r := image.Rect(origin.X+c.X, origin.Y+c.Y, origin.X+c.X+c.W, origin.Y+c.Y+c.H)
		r = r.Intersect(tile)
		if r.Empty() {
			continue
		}
		draw.Draw(dst, r, image.NewUniform(c.Color), image.Point{}, draw.Src)
	}
}

// RenderFrame rasterizes a single frame into a fresh tile.
func RenderFrame(a Action, d Direction, frame int, p Palette) *image.RGBA {
	tile := image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	Rasterize(tile, image.Point{}, FrameCommands(a, d, frame, p))
	return tile
}

// Row returns the sheet row for an (action, direction) pair.
func Row(a Action, d Direction) int {
	if a < 0 || int(a) >= PlayableActionCount || d < 0 || d >= DirectionCount {
		panic(fmt.Sprintf("spritegen: no sheet row for (%d,%d)", int(a), int(d)))
	}
	return int(a)*int(DirectionCount) + int(d)
}
