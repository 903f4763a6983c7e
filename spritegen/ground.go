package spritegen

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// GroundTile renders a grass tile with random decorative speckling. Unlike
// character frames this is allowed to vary between runs; pass a seeded rng
// for reproducible output in tests.
func GroundTile(rng *rand.Rand, size int) *image.RGBA {
	base := color.RGBA{R: 0x4E, G: 0x7C, B: 0x3A, A: 0xFF}
	speckles := []color.RGBA{
		{R: 0x5B, G: 0x8C, B: 0x45, A: 0xFF},
		{R: 0x43, G: 0x6E, B: 0x32, A: 0xFF},
		{R: 0x6B, G: 0x9A, B: 0x52, A: 0xFF},
	}

	tile := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(tile, tile.Bounds(), image.NewUniform(base), image.Point{}, draw.Src)

	n := size * size / 16
	for i := 0; i < n; i++ {
		x := rng.Intn(size)
		y := rng.Intn(size)
		tile.SetRGBA(x, y, speckles[rng.Intn(len(speckles))])
	}
	return tile
}

// GroundTileImage uploads a speckled ground tile for the world renderer.
func GroundTileImage(rng *rand.Rand, size int) *ebiten.Image {
	return ebiten.NewImageFromImage(GroundTile(rng, size))
}
