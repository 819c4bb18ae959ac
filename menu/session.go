package menu

import (
	"slices"

	"github.com/automoto/screenmenu/pkg/logging"
)

// Session is one player's menu context. It holds at most one active menu,
// the stack of suspended parents beneath it and the next-tick task queue.
// Every method must be called from the host tick goroutine.
type Session struct {
	id   string
	host Host
	env  *Env
	loc  Localizer
	cues CuePlayer

	active   *Menu
	stack    []*Menu
	tasks    taskQueue
	renderer *renderer

	prevButtons Button
	position    Position
	hasStored   bool
	frozen      bool

	calib     CalibrationFlow
	calibMenu *Menu

	ended bool
}

type SessionOption func(*Session)

func WithLocalizer(l Localizer) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.loc = l
		}
	}
}

func WithCues(c CuePlayer) SessionOption {
	return func(s *Session) {
		if c != nil {
			s.cues = c
		}
	}
}

// NewSession binds a player to its host adapter. The stored panel position is read once here.
func NewSession(id string, host Host, env *Env, opts ...SessionOption) *Session {
	if env == nil {
		env = DefaultEnv()
	}
	s := &Session{
		id:       id,
		host:     host,
		env:      env,
		loc:      keyLocalizer{},
		cues:     noCues{},
		position: env.DefaultPosition,
	}
	for _, opt := range opts {
		opt(s)
	}
	if env.Positions != nil {
		if pos, ok := env.Positions.Position(id); ok {
			s.position = pos
			s.hasStored = true
		}
	}
	s.renderer = newRenderer(s)
	return s
}

func (s *Session) ID() string { return s.id }

// Active is the menu currently shown or about to be shown.
func (s *Session) Active() *Menu { return s.active }

// Depth is the number of suspended parents below the active menu.
func (s *Session) Depth() int { return len(s.stack) }

func (s *Session) Position() Position { return s.position }

func (s *Session) Ended() bool { return s.ended }

func (s *Session) Calibrating() bool { return s.calibrating() }

func (s *Session) calibrating() bool { return s.calib != nil }

// Open makes m the active menu, closing whatever was open before.
func (s *Session) Open(m *Menu) {
	if s.ended || m == nil {
		return
	}
	replaced := false
	if s.active != nil {
		if s.active == m && m.state == StateOpen {
			m.Refresh()
			return
		}
		s.closeActive()
		replaced = true
	}

	m.session = s
	m.cursor.flashing = false
	m.cursor.flashKey = -1
	m.parent = nil
	m.isSub = false

	if s.needsCalibration() {
		m.state = StateAwaitingCalibration
		m.gen++
		s.active = m
		s.beginCalibration(m)
		return
	}

	if replaced {
		s.activateLater(m)
		return
	}
	s.activateNow(m)
}

// Close closes the active menu and every suspended parent.
func (s *Session) Close() {
	if s.active != nil {
		s.closeActive()
	}
}

// End tears the session down for good. Used on disconnect.
func (s *Session) End() {
	if s.ended {
		return
	}
	s.Close()
	s.tasks.reset()
	s.ended = true
}

// Tick runs deferred tasks, then input, then the renderer.
func (s *Session) Tick() {
	if s.ended {
		return
	}
	s.tasks.begin()
	defer s.tasks.end()

	if !s.host.Valid() {
		if s.active != nil {
			logging.Debug("menu", "host for %s is gone, closing menu", s.id)
			s.closeActive()
		}
		return
	}

	s.tasks.drain(s)

	cur := s.host.PollInput()
	prev := s.prevButtons
	s.prevButtons = cur

	if s.active == nil {
		return
	}

	if s.calib != nil {
		s.calib.Tick()
	} else if m := s.active; m.state == StateOpen && m.InputMode != KeyPress {
		s.handleButtons(m, prev, cur)
	}

	if m := s.active; m != nil && m.state == StateOpen {
		s.renderer.tick(m)
	}
}

// HandleEvent applies a host lifecycle event.
func (s *Session) HandleEvent(e Event) {
	if s.ended {
		return
	}
	switch e {
	case EventRoundStart:
		if s.active == nil {
			return
		}
		if s.env.CloseOnRoundRestart {
			s.closeActive()
			return
		}
		s.refreeze()
		s.renderer.invalidate()
	case EventRoundEnd:
		if s.active == nil {
			return
		}
		s.refreeze()
		s.renderer.invalidate()
	case EventDisconnect:
		s.End()
	case EventViewInvalidate:
		s.renderer.invalidate()
	}
}

func (s *Session) handleButtons(m *Menu, prev, cur Button) {
	c := s.env.Controls
	// One release per tick; the first match in this order wins.
	switch {
	case Released(prev, cur, c.ScrollUp):
		m.Scroll(-1)
	case Released(prev, cur, c.ScrollDown):
		m.Scroll(1)
	case Released(prev, cur, c.Select):
		m.Select()
	case Released(prev, cur, c.Exit):
		if m.cursor.flashing {
			return
		}
		s.cue(s.env.Sounds.Close)
		m.Close()
	}
}

func (s *Session) onDigit(key int) {
	if s.active != nil {
		s.active.KeyPress(key)
	}
}

func (s *Session) after(m *Menu, fn func()) {
	s.tasks.push(task{menu: m, gen: m.gen, run: fn})
}

func (s *Session) cue(name string) {
	if name != "" {
		s.cues.PlayCue(name)
	}
}

func (s *Session) localize(key string, args ...any) string {
	return s.loc.Localize(key, args...)
}

func (s *Session) activateNow(m *Menu) {
	m.state = StateOpen
	m.session = s
	s.active = m
	s.host.RegisterDigitCommands(s.onDigit)
	s.applyFreeze()
	s.renderer.forceRefresh()
	m.Refresh()
}

// activateLater opens m on the next tick so the host can finish destroying the previous surfaces.
func (s *Session) activateLater(m *Menu) {
	m.state = StateOpening
	m.session = s
	m.gen++
	s.active = m
	s.after(m, func() { s.activateNow(m) })
}

func (s *Session) enterSubMenu(parent, child *Menu) {
	if child == parent || slices.Contains(s.stack, child) {
		logging.Debug("menu", "ignoring submenu %q already on the stack", child.Title)
		return
	}
	if child.state != StateClosed && child.session != nil && child.session != s {
		child.Close()
	}

	child.parent = parent
	child.isSub = true

	parent.state = StateSuspended
	parent.gen++
	parent.cursor.flashing = false
	parent.cursor.flashKey = -1

	s.renderer.destroy()
	s.host.UnregisterDigitCommands()
	s.stack = append(s.stack, parent)
	s.activateLater(child)
}

func (s *Session) returnToParent(child *Menu) {
	n := len(s.stack)
	if n == 0 || s.stack[n-1] != child.parent {
		child.Close()
		return
	}
	parent := s.stack[n-1]
	s.stack = s.stack[:n-1]

	child.state = StateClosed
	child.gen++
	child.parent = nil
	child.isSub = false

	s.renderer.destroy()
	s.host.UnregisterDigitCommands()
	s.activateLater(parent)
}

func (s *Session) closeMenu(m *Menu) {
	if m.state == StateClosed {
		return
	}
	if m == s.active {
		s.closeActive()
		return
	}
	// A suspended parent closed directly drops out of the stack.
	m.state = StateClosed
	m.gen++
	if i := slices.Index(s.stack, m); i >= 0 {
		s.stack = slices.Delete(s.stack, i, i+1)
	}
}

func (s *Session) closeActive() {
	m := s.active
	if m == nil {
		return
	}
	m.state = StateClosed
	m.gen++
	m.cursor.flashing = false
	m.cursor.flashKey = -1

	s.renderer.destroy()
	s.host.UnregisterDigitCommands()

	if s.calib != nil {
		s.calib.Cancel()
		s.calib = nil
		s.calibMenu = nil
	}

	for _, p := range s.stack {
		p.state = StateClosed
		p.gen++
	}
	s.stack = nil
	s.active = nil
	s.applyFreeze()
}

func (s *Session) wantFreeze() bool {
	if s.calib != nil {
		return true
	}
	m := s.active
	return m != nil && m.state == StateOpen && m.needsFreeze()
}

func (s *Session) applyFreeze() {
	want := s.wantFreeze()
	if want == s.frozen {
		return
	}
	s.host.SetMovementLocked(want)
	s.frozen = want
}

// refreeze re-sends the lock after the host reset player movement.
func (s *Session) refreeze() {
	if s.frozen {
		s.host.SetMovementLocked(true)
	}
}
