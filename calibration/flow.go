// Package calibration implements the per-player panel position adjustment
// and the stores the chosen positions are kept in.
package calibration

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/screenmenu/config"
	"github.com/automoto/screenmenu/menu"
)

// Settings tune the flow. Durations are in ticks.
type Settings struct {
	Step        float64
	HoldDelay   int
	RepeatEvery int
	Presets     []menu.Position

	Left, Right  menu.Button
	Prev, Next   menu.Button
	Save, Cancel menu.Button

	// KeyNames are shown in the hint, in the order Left, Right, Prev, Next, Save, Cancel.
	KeyNames [6]string
}

// SettingsFromConfig converts seconds to ticks at the server tick rate and
// resolves the configured buttons. Presets follow ResolutionNames order.
func SettingsFromConfig(c config.Config) (Settings, error) {
	s := Settings{
		Step:        c.Calibration.Step,
		HoldDelay:   secondsToTicks(c.Calibration.HoldDelay, c.Server.TickRate),
		RepeatEvery: secondsToTicks(c.Calibration.RepeatInterval, c.Server.TickRate),
	}
	for _, name := range c.Settings.ResolutionNames() {
		r := c.Settings.Resolutions[name]
		s.Presets = append(s.Presets, menu.Position{X: r.PositionX, Y: r.PositionY})
	}

	ctl := c.Controls
	names := [6]string{ctl.Left, ctl.Right, ctl.ScrollUp, ctl.ScrollDown, ctl.Select, ctl.Cancel}
	dst := [6]*menu.Button{&s.Left, &s.Right, &s.Prev, &s.Next, &s.Save, &s.Cancel}
	for i, name := range names {
		b, ok := menu.ButtonByName(name)
		if !ok {
			return Settings{}, fmt.Errorf("calibration: unknown button %q", name)
		}
		*dst[i] = b
	}
	s.KeyNames = names
	return s, nil
}

func secondsToTicks(sec float64, rate int) int {
	return max(1, int(math.Round(sec*float64(rate))))
}

// Calibrator starts flows with shared settings.
type Calibrator struct {
	settings Settings
}

var _ menu.Calibrator = (*Calibrator)(nil)

func New(s Settings) *Calibrator {
	if s.RepeatEvery < 1 {
		s.RepeatEvery = 1
	}
	return &Calibrator{settings: s}
}

func (c *Calibrator) Begin(req menu.CalibrationRequest) menu.CalibrationFlow {
	f := &Flow{
		settings: &c.settings,
		req:      req,
		pos:      req.From,
		preset:   -1,
	}
	f.show()
	return f
}

// Flow is one running adjustment. It reads the host buttons itself every
// tick and reports the result through the request's Done callback.
type Flow struct {
	settings *Settings
	req      menu.CalibrationRequest

	pos    menu.Position
	preset int

	prev      menu.Button
	held      menu.Button
	heldTicks int

	done bool
}

// Position is the position currently previewed.
func (f *Flow) Position() menu.Position { return f.pos }

func (f *Flow) Tick() {
	if f.done {
		return
	}
	cur := f.req.Host.PollInput()
	prev := f.prev
	f.prev = cur

	if !f.handleMovement(cur) {
		s := f.settings
		switch {
		case menu.Released(prev, cur, s.Save):
			f.finish(f.pos, true)
			return
		case menu.Released(prev, cur, s.Cancel):
			if f.pos != f.req.From {
				f.move(f.req.From)
			}
			f.finish(f.req.From, false)
			return
		case menu.Released(prev, cur, s.Prev):
			f.cyclePreset(-1)
		case menu.Released(prev, cur, s.Next):
			f.cyclePreset(1)
		}
	}
	f.show()
}

// Cancel stops the flow without calling Done.
func (f *Flow) Cancel() {
	if f.done {
		return
	}
	f.done = true
	f.req.Host.ShowFallbackOverlay("")
}

// handleMovement steps X on the first tick a direction is held, then
// repeats after HoldDelay every RepeatEvery ticks.
func (f *Flow) handleMovement(cur menu.Button) bool {
	s := f.settings
	dirs := cur & (s.Left | s.Right)
	if dirs == 0 {
		f.held = 0
		f.heldTicks = 0
		return false
	}
	if dirs != f.held {
		f.held = dirs
		f.heldTicks = 0
		return f.step(dirs)
	}
	f.heldTicks++
	if f.heldTicks <= s.HoldDelay || (f.heldTicks-s.HoldDelay)%s.RepeatEvery != 0 {
		return false
	}
	return f.step(dirs)
}

func (f *Flow) step(dirs menu.Button) bool {
	s := f.settings
	p := f.pos
	switch {
	case dirs.Has(s.Left):
		p.X -= s.Step
	case dirs.Has(s.Right):
		p.X += s.Step
	default:
		return false
	}
	p.X = math.Round(p.X*1000) / 1000
	f.move(p)
	return true
}

func (f *Flow) cyclePreset(dir int) {
	n := len(f.settings.Presets)
	if n == 0 {
		return
	}
	if f.preset < 0 && dir < 0 {
		f.preset = n - 1
	} else {
		f.preset = ((f.preset+dir)%n + n) % n
	}
	f.move(f.settings.Presets[f.preset])
}

func (f *Flow) move(p menu.Position) {
	f.pos = p
	if f.req.OnMove != nil {
		f.req.OnMove(p)
	}
}

func (f *Flow) finish(p menu.Position, saved bool) {
	f.done = true
	f.req.Host.ShowFallbackOverlay("")
	if f.req.Done != nil {
		f.req.Done(p, saved)
	}
}

func (f *Flow) show() {
	f.req.Host.ShowFallbackOverlay(f.overlay())
}

func (f *Flow) overlay() string {
	k := f.settings.KeyNames
	var b strings.Builder
	fmt.Fprintf(&b, "<font color='#00FF00' class='fontSize-m'><b>%s</b></font><br>", f.localize("SelectRes"))
	fmt.Fprintf(&b, "<font color='#FFFFFF' class='fontSize-sm'>%s</font><br>",
		f.localize("ResHint", k[0], k[1], k[2], k[3], k[4], k[5]))
	fmt.Fprintf(&b, "<font color='#00FFFF' class='fontSize-m'><b>%s</b></font>",
		f.localize("ResValue", fmt.Sprintf("%.3f", f.pos.X), fmt.Sprintf("%.3f", f.pos.Y)))
	return b.String()
}

func (f *Flow) localize(key string, args ...any) string {
	if f.req.Localizer == nil {
		return key
	}
	return f.req.Localizer.Localize(key, args...)
}
