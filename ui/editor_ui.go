package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/bitloam/tinywalker/components"
	"github.com/bitloam/tinywalker/systems"
)

// EditorUI holds the ebitenui interface for the spritesheet-mapping editor
type EditorUI struct {
	UI     *ebitenui.UI
	Editor *components.EditorData

	// Callbacks
	OnBack func()

	// Widget references for updates
	clipLabel   *widget.Label
	rowLabel    *widget.Label
	startLabel  *widget.Label
	countLabel  *widget.Label
	rateLabel   *widget.Label
	gridButton  *widget.Button
	statusLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewEditorUI creates the editor panel with ebitenui
func NewEditorUI(editor *components.EditorData, onBack func()) *EditorUI {
	eui := &EditorUI{
		Editor: editor,
		OnBack: onBack,
	}

	eui.loadFonts()
	eui.buildUI()
	eui.UpdateUI()

	return eui
}

func (eui *EditorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	eui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	eui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	eui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (eui *EditorUI) buildUI() {
	// Root container anchors the panel to the right edge; the sheet and
	// preview are drawn by the scene underneath.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(220, 0),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("CLIP MAPPING", &eui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(title)

	// Clip selector: cycle action and direction
	eui.clipLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &eui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 120, 255},
		}),
	)
	panel.AddChild(eui.clipLabel)
	panel.AddChild(eui.buildCycleRow("action", func(delta int) {
		systems.CycleAction(eui.Editor, delta)
	}))
	panel.AddChild(eui.buildCycleRow("direction", func(delta int) {
		systems.CycleDirection(eui.Editor, delta)
	}))

	// Clip fields
	eui.rowLabel = eui.addFieldRow(panel, "row", systems.AdjustRow)
	eui.startLabel = eui.addFieldRow(panel, "start", systems.AdjustStartFrame)
	eui.countLabel = eui.addFieldRow(panel, "frames", systems.AdjustFrameCount)
	eui.rateLabel = eui.addFieldRow(panel, "fps", systems.AdjustFrameRate)

	// Table actions
	actions := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	actions.AddChild(eui.smallButton("Save", func() {
		systems.SaveEditor(eui.Editor)
		eui.UpdateUI()
	}))
	actions.AddChild(eui.smallButton("Load", func() {
		systems.ReloadEditor(eui.Editor)
		eui.UpdateUI()
	}))
	actions.AddChild(eui.smallButton("Reset", func() {
		systems.ResetEditor(eui.Editor)
		eui.UpdateUI()
	}))
	panel.AddChild(actions)

	eui.gridButton = eui.smallButton("Grid", func() {
		eui.Editor.ShowGrid = !eui.Editor.ShowGrid
		eui.UpdateUI()
	})
	panel.AddChild(eui.gridButton)

	panel.AddChild(eui.smallButton("Back (Tab)", func() {
		if eui.OnBack != nil {
			eui.OnBack()
		}
	}))

	eui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &eui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 100, 100, 255},
		}),
	)
	panel.AddChild(eui.statusLabel)

	rootContainer.AddChild(panel)

	eui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildCycleRow makes a "< name >" row whose arrows cycle a clip property.
func (eui *EditorUI) buildCycleRow(name string, cycle func(delta int)) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	row.AddChild(eui.smallButton("<", func() {
		cycle(-1)
		eui.UpdateUI()
	}))
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, &eui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))
	row.AddChild(eui.smallButton(">", func() {
		cycle(1)
		eui.UpdateUI()
	}))
	return row
}

// addFieldRow makes a "name - value +" row bound to one clip field.
func (eui *EditorUI) addFieldRow(panel *widget.Container, name string, adjust func(ed *components.EditorData, delta int)) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(2)),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, &eui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))
	row.AddChild(eui.smallButton("-", func() {
		adjust(eui.Editor, -1)
		eui.UpdateUI()
	}))

	value := widget.NewLabel(
		widget.LabelOpts.Text("0", &eui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(value)

	row.AddChild(eui.smallButton("+", func() {
		adjust(eui.Editor, 1)
		eui.UpdateUI()
	}))

	panel.AddChild(row)
	return value
}

func (eui *EditorUI) smallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(28, 18),
		),
		widget.ButtonOpts.Image(eui.buttonImage()),
		widget.ButtonOpts.Text(label, &eui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (eui *EditorUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the value readouts from the editor model.
func (eui *EditorUI) UpdateUI() {
	ed := eui.Editor

	name := ed.Selected.Name()
	if ed.Dirty {
		name += " *"
	}
	eui.clipLabel.Label = name

	clip, mapped := ed.Table.LookupOrDefault(ed.Selected)
	if !mapped {
		eui.statusLabel.Label = "unmapped clip (previewing idle-down)"
	} else {
		eui.statusLabel.Label = ed.Status
	}

	eui.rowLabel.Label = fmt.Sprintf("%d", clip.Row)
	eui.startLabel.Label = fmt.Sprintf("%d", clip.StartFrame)
	eui.countLabel.Label = fmt.Sprintf("%d", clip.FrameCount)
	eui.rateLabel.Label = fmt.Sprintf("%d", clip.FrameRate)

	gridText := "Grid: off"
	if ed.ShowGrid {
		gridText = "Grid: on"
	}
	eui.gridButton.Text().Label = gridText
}

// Update drives the ebitenui event loop; call once per tick.
func (eui *EditorUI) Update() {
	eui.UI.Update()
}
