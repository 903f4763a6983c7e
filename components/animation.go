package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/bitloam/tinywalker/anim"
)

type AnimationData struct {
	Sheet        *ebiten.Image
	Table        *anim.ClipTable
	Current      *anim.Playback
	CurrentKey   anim.ClipKey
	CachedFrames map[int]map[int]*ebiten.Image // Pre-calculated subimages keyed by row, then column
	FrameWidth   int
	FrameHeight  int
}

// SetClip switches playback to the clip for key. Setting the key that is
// already playing is a no-op so the running clip is never restarted by
// repeated input. Unmapped keys fall back to the idle-down clip.
func (a *AnimationData) SetClip(key anim.ClipKey) {
	if a.Current != nil && a.CurrentKey == key {
		return
	}

	clip, _ := a.Table.LookupOrDefault(key)
	a.CurrentKey = key
	a.Current = anim.NewPlayback(clip)
}

// Frame returns the subimage for the current playback frame, slicing and
// caching it on first use.
func (a *AnimationData) Frame() *ebiten.Image {
	if a.Current == nil || a.Sheet == nil {
		return nil
	}
	row := a.Current.Clip().Row
	col := a.Current.Frame()

	if img := a.CachedFrames[row][col]; img != nil {
		return img
	}

	sx := col * a.FrameWidth
	sy := row * a.FrameHeight
	srcRect := image.Rect(sx, sy, sx+a.FrameWidth, sy+a.FrameHeight)
	if !srcRect.In(a.Sheet.Bounds()) {
		return nil
	}
	img := a.Sheet.SubImage(srcRect).(*ebiten.Image)

	if a.CachedFrames == nil {
		a.CachedFrames = make(map[int]map[int]*ebiten.Image)
	}
	if a.CachedFrames[row] == nil {
		a.CachedFrames[row] = make(map[int]*ebiten.Image)
	}
	a.CachedFrames[row][col] = img
	return img
}

var Animation = donburi.NewComponentType[AnimationData]()
