package systems

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/screenmenu/config"
	"github.com/automoto/screenmenu/menu"
)

// keysByName covers the keyboard buttons a control can be bound to.
var keysByName = map[string]ebiten.Key{
	"w":     ebiten.KeyW,
	"s":     ebiten.KeyS,
	"e":     ebiten.KeyE,
	"a":     ebiten.KeyA,
	"d":     ebiten.KeyD,
	"r":     ebiten.KeyR,
	"f":     ebiten.KeyF,
	"tab":   ebiten.KeyTab,
	"space": ebiten.KeySpace,
	"ctrl":  ebiten.KeyControl,
	"shift": ebiten.KeyShift,
	"esc":   ebiten.KeyEscape,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
}

// Bindings maps held keys to the button bitmask sent to the server.
type Bindings map[ebiten.Key]menu.Button

// BindingsFromConfig binds every configured control name to its key.
func BindingsFromConfig(c config.ControlsConfig) (Bindings, error) {
	b := Bindings{}
	for _, name := range []string{c.ScrollUp, c.ScrollDown, c.Select, c.Exit, c.Left, c.Right, c.Cancel} {
		btn, ok := menu.ButtonByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown control button %q", name)
		}
		key, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("control %q has no keyboard key", name)
		}
		b[key] = btn
	}
	return b, nil
}

// Poll returns the buttons whose keys are held right now.
func (b Bindings) Poll() menu.Button {
	var held menu.Button
	for key, btn := range b {
		if ebiten.IsKeyPressed(key) {
			held |= btn
		}
	}
	return held
}
