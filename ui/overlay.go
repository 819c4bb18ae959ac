package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/automoto/screenmenu/shared/markup"
)

var defaultTextColor = color.RGBA{255, 255, 255, 255}

// Overlay shows the fallback markup the server sends when no text surface
// can be anchored, and the calibration instructions.
type Overlay struct {
	UI *ebitenui.UI

	panel   *widget.Container
	current string

	normalFace text.Face
	boldFace   text.Face
}

func NewOverlay() (*Overlay, error) {
	o := &Overlay{}
	if err := o.loadFonts(); err != nil {
		return nil, err
	}
	o.buildUI()
	return o, nil
}

func (o *Overlay) loadFonts() error {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load overlay font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load overlay font: %w", err)
	}
	o.normalFace = &text.GoTextFace{Source: regular, Size: 16}
	o.boldFace = &text.GoTextFace{Source: bold, Size: 18}
	return nil
}

func (o *Overlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	o.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 170})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	o.panel.GetWidget().Visibility = widget.Visibility_Hide

	rootContainer.AddChild(o.panel)
	o.UI = &ebitenui.UI{Container: rootContainer}
}

// SetMarkup replaces the overlay content. An empty string hides the panel.
func (o *Overlay) SetMarkup(m string) {
	if m == o.current {
		return
	}
	o.current = m
	o.panel.RemoveChildren()

	if m == "" {
		o.panel.GetWidget().Visibility = widget.Visibility_Hide
		return
	}
	o.panel.GetWidget().Visibility = widget.Visibility_Show

	for _, line := range markup.Parse(m) {
		face := &o.normalFace
		if line.Bold {
			face = &o.boldFace
		}
		o.panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line.Text, face, &widget.LabelColor{
				Idle: parseHex(line.Color),
			}),
		))
	}
}

func (o *Overlay) Update() {
	o.UI.Update()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.UI.Draw(screen)
}

// parseHex reads "#RRGGBB". Anything else is drawn white.
func parseHex(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return defaultTextColor
	}
	return color.RGBA{r, g, b, 255}
}
