package scenes

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/bitloam/tinywalker/anim"
	"github.com/bitloam/tinywalker/components"
	cfg "github.com/bitloam/tinywalker/config"
	"github.com/bitloam/tinywalker/fonts"
	"github.com/bitloam/tinywalker/spritegen"
	"github.com/bitloam/tinywalker/systems"
	"github.com/bitloam/tinywalker/ui"
)

// Editor layout constants, tuned for the 640x384 window.
const (
	editorSheetX  = 8
	editorSheetY  = 0
	previewX      = 250
	previewY      = 80
	previewScale  = 4
	toastDuration = 1.5 // seconds
)

// EditorScene is the visual spritesheet-mapping editor: the generated sheet
// on the left, a live clip preview in the middle, and the ebitenui panel on
// the right.
type EditorScene struct {
	sceneChanger SceneChanger
	editorData   *components.EditorData
	editorUI     *ui.EditorUI
	sheet        *ebiten.Image
	once         sync.Once

	// Toast fade for status messages
	toastTween *gween.Tween
	toastText  string
	toastAlpha float32
	lastStatus string

	shouldGoBack bool
}

// NewEditorScene creates the mapping editor over a live clip table.
func NewEditorScene(sc SceneChanger, table *anim.ClipTable) *EditorScene {
	es := &EditorScene{sceneChanger: sc}
	es.editorData = &components.EditorData{Table: table}
	return es
}

func (es *EditorScene) Update() {
	es.once.Do(es.configure)

	es.editorUI.Update()
	systems.UpdateEditorPreview(es.editorData)
	es.updateToast()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		es.shouldGoBack = true
	}
	if es.shouldGoBack {
		es.sceneChanger.ChangeScene(NewWorldScene(es.sceneChanger, es.editorData.Table))
		return
	}
}

func (es *EditorScene) configure() {
	systems.InitEditor(es.editorData, es.editorData.Table)
	es.editorUI = ui.NewEditorUI(es.editorData, func() { es.shouldGoBack = true })
	es.sheet = spritegen.BuildSheetImage(cfg.CharacterPalette())
}

// updateToast fades the latest status message out over toastDuration.
func (es *EditorScene) updateToast() {
	if es.editorData.Status != "" && es.editorData.Status != es.lastStatus {
		es.toastText = es.editorData.Status
		es.toastTween = gween.New(255, 0, toastDuration, ease.Linear)
	}
	es.lastStatus = es.editorData.Status

	if es.toastTween != nil {
		alpha, done := es.toastTween.Update(1.0 / float32(anim.TickRate))
		es.toastAlpha = alpha
		if done {
			es.toastTween = nil
			es.toastAlpha = 0
		}
	}
}

func (es *EditorScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 24, 32, 255})

	if es.sheet == nil {
		return
	}

	es.drawSheet(screen)
	es.drawPreview(screen)
	es.editorUI.UI.Draw(screen)
	es.drawToast(screen)
}

// drawSheet blits the generated sheet with the grid overlay and a highlight
// around the frames the selected clip covers.
func (es *EditorScene) drawSheet(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(editorSheetX, editorSheetY)
	screen.DrawImage(es.sheet, op)

	if es.editorData.ShowGrid {
		gridColor := color.RGBA{255, 255, 255, 40}
		for x := 0; x <= spritegen.SheetWidth; x += spritegen.FrameWidth {
			vector.FillRect(screen, float32(editorSheetX+x), editorSheetY, 1, spritegen.SheetHeight, gridColor, false)
		}
		for y := 0; y <= spritegen.SheetHeight; y += spritegen.FrameHeight {
			vector.FillRect(screen, editorSheetX, float32(editorSheetY+y), spritegen.SheetWidth+1, 1, gridColor, false)
		}
	}

	// Highlight the selected clip's frame run (when it lies on the sheet).
	clip, err := es.editorData.Table.Lookup(es.editorData.Selected)
	if err != nil || clip.Row >= spritegen.SheetRows {
		return
	}
	hx := float32(editorSheetX + clip.StartFrame*spritegen.FrameWidth)
	hy := float32(editorSheetY + clip.Row*spritegen.FrameHeight)
	hw := float32(clip.FrameCount * spritegen.FrameWidth)
	hh := float32(spritegen.FrameHeight)
	hc := color.RGBA{255, 220, 120, 255}
	vector.FillRect(screen, hx, hy, hw, 1, hc, false)
	vector.FillRect(screen, hx, hy+hh-1, hw, 1, hc, false)
	vector.FillRect(screen, hx, hy, 1, hh, hc, false)
	vector.FillRect(screen, hx+hw-1, hy, 1, hh, hc, false)
}

// drawPreview plays the selected clip enlarged next to the sheet.
func (es *EditorScene) drawPreview(screen *ebiten.Image) {
	preview := es.editorData.Preview
	if preview == nil {
		return
	}

	clip := preview.Clip()
	col := preview.Frame()
	if clip.Row < 0 || clip.Row >= spritegen.SheetRows || col < 0 || col >= spritegen.FramesPerRow {
		return
	}

	sx := col * spritegen.FrameWidth
	sy := clip.Row * spritegen.FrameHeight
	frame := es.sheet.SubImage(
		image.Rect(sx, sy, sx+spritegen.FrameWidth, sy+spritegen.FrameHeight),
	).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(previewScale, previewScale)
	op.GeoM.Translate(previewX, previewY)
	screen.DrawImage(frame, op)

	label := es.editorData.Selected.Name()
	text.Draw(screen, label, fonts.Body.Get(), previewX, previewY+spritegen.FrameHeight*previewScale+14, color.White)
}

func (es *EditorScene) drawToast(screen *ebiten.Image) {
	if es.toastAlpha <= 0 || es.toastText == "" {
		return
	}
	c := color.RGBA{255, 255, 255, uint8(es.toastAlpha)}
	text.Draw(screen, es.toastText, fonts.Body.Get(), previewX, previewY-16, c)
}
