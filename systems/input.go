package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/screenmenu/components"
	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/pkg/logging"
	"github.com/automoto/screenmenu/shared/messages"
)

const resendInterval = 250 * time.Millisecond

var digitKeys = [10][2]ebiten.Key{
	{ebiten.KeyDigit0, ebiten.KeyNumpad0},
	{ebiten.KeyDigit1, ebiten.KeyNumpad1},
	{ebiten.KeyDigit2, ebiten.KeyNumpad2},
	{ebiten.KeyDigit3, ebiten.KeyNumpad3},
	{ebiten.KeyDigit4, ebiten.KeyNumpad4},
	{ebiten.KeyDigit5, ebiten.KeyNumpad5},
	{ebiten.KeyDigit6, ebiten.KeyNumpad6},
	{ebiten.KeyDigit7, ebiten.KeyNumpad7},
	{ebiten.KeyDigit8, ebiten.KeyNumpad8},
	{ebiten.KeyDigit9, ebiten.KeyNumpad9},
}

var viewKeys = map[ebiten.Key]menu.ObserverMode{
	ebiten.KeyF1: menu.FirstPerson,
	ebiten.KeyF2: menu.ThirdPerson,
	ebiten.KeyF3: menu.Roaming,
}

var chatKeys = map[ebiten.Key]string{
	ebiten.KeyEnter: "menu",
	ebiten.KeyF5:    "submenu",
	ebiten.KeyF6:    "vote",
	ebiten.KeyF7:    "mode KeyPress",
	ebiten.KeyF8:    "mode Scrollable",
	ebiten.KeyF9:    "mode Both",
}

type menuInputState struct {
	last         menu.Button
	lastSendTime time.Time
}

// NewMenuInputSystem returns an ECS system that sends the held buttons when
// they change, digit keys as digit commands, F1-F3 as view changes and a few
// keys as demo chat commands.
func NewMenuInputSystem(sendFn func(any) error, bindings Bindings) func(*ecs.ECS) {
	state := &menuInputState{}

	send := func(msg any) {
		if err := sendFn(msg); err != nil {
			logging.Debug("input", "send error: %v", err)
		}
	}

	return func(e *ecs.ECS) {
		held := bindings.Poll()
		now := time.Now()
		if held != state.last || now.Sub(state.lastSendTime) >= resendInterval {
			send(messages.MenuInput{Buttons: uint64(held)})
			state.last = held
			state.lastSendTime = now
		}

		for k, keys := range digitKeys {
			if inpututil.IsKeyJustPressed(keys[0]) || inpututil.IsKeyJustPressed(keys[1]) {
				send(messages.DigitCommand{Key: k})
			}
		}

		for key, mode := range viewKeys {
			if !inpututil.IsKeyJustPressed(key) {
				continue
			}
			send(messages.ViewChange{Mode: int(mode), Target: 1})
			if entry, ok := components.Viewer.First(e.World); ok {
				components.Viewer.Get(entry).View = int(mode)
			}
		}

		for key, text := range chatKeys {
			if inpututil.IsKeyJustPressed(key) {
				send(messages.ChatCommand{Text: text})
			}
		}
	}
}
