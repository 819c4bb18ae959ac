package menu

import "strings"

// Button is a bitmask of host input buttons, polled once per tick.
type Button uint64

const (
	ButtonAttack Button = 1 << iota
	ButtonJump
	ButtonDuck
	ButtonForward
	ButtonBack
	ButtonUse
	ButtonCancel
	ButtonLeft
	ButtonRight
	ButtonMoveLeft
	ButtonMoveRight
	ButtonAttack2
	ButtonRun
	ButtonReload
	ButtonSpeed
	ButtonWalk
	ButtonZoom
	ButtonScoreboard
	ButtonInspect
)

var buttonNames = map[string]Button{
	"mouse1": ButtonAttack,
	"space":  ButtonJump,
	"ctrl":   ButtonDuck,
	"w":      ButtonForward,
	"s":      ButtonBack,
	"e":      ButtonUse,
	"esc":    ButtonCancel,
	"left":   ButtonLeft,
	"right":  ButtonRight,
	"a":      ButtonMoveLeft,
	"d":      ButtonMoveRight,
	"mouse2": ButtonAttack2,
	"run":    ButtonRun,
	"r":      ButtonReload,
	"shift":  ButtonSpeed,
	"walk":   ButtonWalk,
	"zoom":   ButtonZoom,
	"tab":    ButtonScoreboard,
	"f":      ButtonInspect,
}

// ButtonByName resolves a config key name such as "W" or "Tab".
func ButtonByName(name string) (Button, bool) {
	b, ok := buttonNames[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// Has reports whether every bit of x is set in b.
func (b Button) Has(x Button) bool {
	return x != 0 && b&x == x
}

// Released reports a press that ended this tick: held last tick, not held now.
func Released(prev, cur, x Button) bool {
	return x != 0 && prev.Has(x) && !cur.Has(x)
}

// Pressed reports a press that started this tick.
func Pressed(prev, cur, x Button) bool {
	return x != 0 && !prev.Has(x) && cur.Has(x)
}
