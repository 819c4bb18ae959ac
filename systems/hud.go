package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/screenmenu/components"
	"github.com/automoto/screenmenu/fonts"
	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/shared/netcomponents"
)

var (
	statusColor = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	frozenColor = color.RGBA{R: 255, G: 120, B: 120, A: 255}
)

// DrawStatus draws the connection line and the round in the top-left corner.
func DrawStatus(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		return
	}
	v := components.Viewer.Get(entry)

	info := fmt.Sprintf("%s  %s  view: %s", v.PlayerID, v.Status, menu.ObserverMode(v.View))
	col := statusColor
	if hud, ok := netcomponents.NetHUD.First(e.World); ok {
		h := netcomponents.NetHUD.Get(hud)
		info += fmt.Sprintf("  round %d", h.Round)
		if h.Frozen {
			info += "  [frozen]"
			col = frozenColor
		}
	}
	text.Draw(screen, info, fonts.Small.Get(), 4, 14, col)
	text.Draw(screen, "Enter: menu  F5: submenu  F6: vote  F1-F3: view  F7-F9: input mode",
		fonts.Small.Get(), 4, ScreenHeight-8, statusColor)
}
