package menu

import "fmt"

// KeyPress handles a digit command. The pressed line flashes for one tick
// and the action runs on the next.
func (m *Menu) KeyPress(key int) {
	if !m.live() || m.InputMode == Scrollable || m.cursor.flashing || m.session.calibrating() {
		return
	}
	if !m.Page().Digit(key).Valid() {
		return
	}

	m.cursor.flashing = true
	m.cursor.flashKey = key
	m.markDirty()

	m.session.after(m, func() {
		m.cursor.flashing = false
		m.cursor.flashKey = -1
		m.markDirty()
		// Options may have been relabeled or disabled while flashing.
		m.activate(m.Page().Digit(key))
	})
}

// Scroll moves the cursor by dir, wrapping over options and nav buttons.
func (m *Menu) Scroll(dir int) {
	if !m.live() || m.InputMode == KeyPress || m.cursor.flashing || m.session.calibrating() {
		return
	}
	n := m.Page().Selectable()
	if n == 0 {
		return
	}
	m.cursor.selected = wrap(m.cursor.selected, dir, n)
	if dir < 0 {
		m.session.cue(m.session.env.Sounds.ScrollUp)
	} else {
		m.session.cue(m.session.env.Sounds.ScrollDown)
	}
	m.markDirty()
}

// Select activates whatever the cursor points at.
func (m *Menu) Select() {
	if !m.live() || m.cursor.flashing || m.session.calibrating() {
		return
	}
	m.activate(m.Page().Resolve(m.cursor.selected))
}

// NextPage advances one page. Outside KeyPress mode the cursor lands on the
// first navigation button so it never points at an option that just scrolled away.
func (m *Menu) NextPage() {
	if !m.live() {
		return
	}
	if p := m.Page(); p.Index >= p.MaxPage {
		return
	}
	m.session.cue(m.session.env.Sounds.Next)
	m.page++
	m.reseed()
}

// PrevPage goes back one page; it never leaves the menu.
func (m *Menu) PrevPage() {
	if !m.live() || m.page == 0 {
		return
	}
	m.session.cue(m.session.env.Sounds.Prev)
	m.page--
	m.reseed()
}

func (m *Menu) reseed() {
	p := m.Page()
	m.page = p.Index
	if m.InputMode == KeyPress || len(p.Nav) == 0 {
		m.cursor.selected = 0
	} else {
		m.cursor.selected = p.Enabled
	}
	m.markDirty()
}

func (m *Menu) activate(t Target) {
	if !m.live() || !t.Valid() {
		return
	}
	if t.Option != nil {
		m.selectOption(t.Option)
		return
	}

	switch t.Nav {
	case NavBack:
		if m.page == 0 && m.isSub && m.parent != nil {
			m.session.cue(m.session.env.Sounds.Prev)
			m.session.returnToParent(m)
			return
		}
		m.PrevPage()
	case NavNext:
		m.NextPage()
	case NavExit:
		m.session.cue(m.session.env.Sounds.Close)
		m.Close()
	case NavCalibrate:
		m.session.cue(m.session.env.Sounds.Select)
		m.session.startCalibration(m)
	}
}

func (m *Menu) selectOption(o *Option) {
	if !o.selectable() {
		return
	}
	m.session.cue(m.session.env.Sounds.Select)

	if o.SubMenu != nil {
		m.session.enterSubMenu(m, o.SubMenu)
		return
	}

	if o.OnSelect != nil {
		o.OnSelect(m, o)
	}
	// The callback may have closed this menu or opened another one.
	if !m.live() {
		return
	}

	switch m.PostSelect {
	case PostSelectClose:
		m.Close()
	case PostSelectReset:
		m.page = 0
		m.cursor.selected = 0
		m.Refresh()
	case PostSelectNothing:
		m.markDirty()
	default:
		panic(fmt.Sprintf("menu: unsupported post-select action %d", m.PostSelect))
	}
}
