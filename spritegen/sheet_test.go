package spritegen

import (
	"image/color"
	"testing"

	"github.com/bitloam/tinywalker/anim"
)

func TestBuildSheetDimensions(t *testing.T) {
	sheet := BuildSheet(testPalette())
	b := sheet.Bounds()
	if b.Dx() != SheetWidth || b.Dy() != SheetHeight {
		t.Fatalf("sheet size = %dx%d, want %dx%d", b.Dx(), b.Dy(), SheetWidth, SheetHeight)
	}
	if SheetWidth != 192 || SheetHeight != 384 {
		t.Fatalf("sheet constants = %dx%d, want 192x384", SheetWidth, SheetHeight)
	}
}

// TestBuildSheetTilePlacement verifies each grid cell holds exactly the frame
// the generator renders for its (action, direction, frame) triple.
func TestBuildSheetTilePlacement(t *testing.T) {
	p := testPalette()
	sheet := BuildSheet(p)

	tcs := []struct {
		a Action
		d Direction
		f int
	}{
		{ActionIdle, DirDown, 0},
		{ActionIdle, DirUp, 3},
		{ActionWalk, DirLeft, 2},
		{ActionRun, DirRight, 5},
	}
	for _, tc := range tcs {
		tile := RenderFrame(tc.a, tc.d, tc.f, p)
		ox := tc.f * FrameWidth
		oy := Row(tc.a, tc.d) * FrameHeight
		for y := 0; y < FrameHeight; y++ {
			for x := 0; x < FrameWidth; x++ {
				if got, want := sheet.RGBAAt(ox+x, oy+y), tile.RGBAAt(x, y); got != want {
					t.Fatalf("(%v, %v, %d) pixel (%d,%d) = %v, want %v", tc.a, tc.d, tc.f, x, y, got, want)
				}
			}
		}
	}
}

// Idle rows only fill four of the six columns; the rest stay transparent.
func TestBuildSheetIdleRowsLeaveTrailingTilesEmpty(t *testing.T) {
	sheet := BuildSheet(testPalette())
	for d := Direction(0); d < DirectionCount; d++ {
		oy := Row(ActionIdle, d) * FrameHeight
		ox := anim.FrameCount(ActionIdle) * FrameWidth
		for y := 0; y < FrameHeight; y++ {
			for x := ox; x < SheetWidth; x++ {
				if got := sheet.RGBAAt(x, oy+y); got != (color.RGBA{}) {
					t.Fatalf("idle row %d pixel (%d,%d) = %v, want transparent", Row(ActionIdle, d), x, oy+y, got)
				}
			}
		}
	}
}

func TestBuildSheetDeterministic(t *testing.T) {
	p := testPalette()
	first := BuildSheet(p)
	second := BuildSheet(p)
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatal("BuildSheet produced different pixels for identical palettes")
		}
	}
}
