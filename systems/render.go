package systems

import (
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/screenmenu/components"
	"github.com/automoto/screenmenu/fonts"
	"github.com/automoto/screenmenu/shared/netcomponents"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// pxPerUnit scales menu positions to screen pixels around the anchor.
	pxPerUnit = 60
	anchorX   = ScreenWidth / 2
	anchorY   = ScreenHeight / 3

	titlePad = "ᅠ"
)

// toScreen maps a menu position to the top-left pixel of its text block.
func toScreen(x, y float32) (int, int) {
	return anchorX + int(x*pxPerUnit), anchorY - int(y*pxPerUnit)
}

// DrawMenuText draws the mirrored text layers back to front. The backdrop
// layer only contributes its box.
func DrawMenuText(e *ecs.ECS, screen *ebiten.Image) {
	var layers []netcomponents.NetTextData
	textQuery.Each(e.World, func(entry *donburi.Entry) {
		layers = append(layers, *netcomponents.NetText.Get(entry))
	})
	if len(layers) == 0 {
		return
	}
	sort.Slice(layers, func(i, j int) bool { return layers[i].Depth < layers[j].Depth })

	var slideX, slideY float32
	if entry, ok := components.Slide.First(e.World); ok {
		s := components.Slide.Get(entry)
		slideX, slideY = s.X, s.Y
	}
	x, y := toScreen(slideX, slideY)

	for _, l := range layers {
		face := fonts.ForSurface(l.FontName, l.FontSize)
		body := strings.ReplaceAll(l.Text, titlePad, "  ")
		col := color.RGBA{R: l.Color[0], G: l.Color[1], B: l.Color[2], A: l.Color[3]}

		if l.DrawBackground {
			b := text.BoundString(face, body)
			vector.DrawFilledRect(screen,
				float32(x+b.Min.X-6), float32(y+b.Min.Y-6),
				float32(b.Dx()+12), float32(b.Dy()+12),
				col, false)
			continue
		}
		text.Draw(screen, body, face, x, y, col)
	}
}
