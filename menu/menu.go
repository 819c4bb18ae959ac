package menu

import (
	"github.com/automoto/screenmenu/config"
)

// Settings are the per-menu behaviour switches. New menus copy them from config.
type Settings struct {
	InputMode             InputMode
	PostSelect            PostSelect
	HasExitButton         bool
	ShowPageCount         bool
	ShowDisabledNumbering bool
	ShowControlsHint      bool
	HasCalibrationOption  bool
	FreezePlayer          bool
}

// SettingsFromConfig converts the on-disk settings block.
func SettingsFromConfig(c config.SettingsConfig) Settings {
	return Settings{
		InputMode:             ParseInputMode(c.MenuType),
		PostSelect:            PostSelectClose,
		HasExitButton:         c.HasExitOption,
		ShowPageCount:         c.ShowPageCount,
		ShowDisabledNumbering: c.ShowDisabledOptionNum,
		ShowControlsHint:      c.ShowControlsInfo,
		HasCalibrationOption:  c.ShowResolutionOption,
		FreezePlayer:          c.FreezePlayer,
	}
}

type cursor struct {
	selected int
	flashing bool
	flashKey int
}

// Menu is a titled, paginated option list. A menu is built freely and then
// handed to a Session, which owns its lifecycle from that point.
type Menu struct {
	Title string
	Settings

	options []*Option
	page    int
	cursor  cursor

	parent  *Menu
	isSub   bool
	state   State
	session *Session
	// gen changes on every lifecycle transition; deferred tasks carry a copy.
	gen uint64
}

// New creates a menu seeded with the active config's settings.
func New(title string) *Menu {
	return NewWithSettings(title, SettingsFromConfig(config.C.Settings))
}

func NewWithSettings(title string, s Settings) *Menu {
	return &Menu{
		Title:    title,
		Settings: s,
		cursor:   cursor{flashKey: -1},
	}
}

// AddItem appends a selectable option.
func (m *Menu) AddItem(text string, fn SelectFunc) *Option {
	o := &Option{Text: text, OnSelect: fn}
	m.options = append(m.options, o)
	return o
}

// AddDisabledItem appends a line that is shown but cannot be picked.
func (m *Menu) AddDisabledItem(text string) *Option {
	o := &Option{Text: text, Disabled: true}
	m.options = append(m.options, o)
	return o
}

// AddSubMenu appends an option that opens sub when picked.
func (m *Menu) AddSubMenu(text string, sub *Menu) *Option {
	o := &Option{Text: text, SubMenu: sub}
	m.options = append(m.options, o)
	return o
}

// AddSpacer appends a blank line that takes no page slot.
func (m *Menu) AddSpacer() *Option {
	o := &Option{spacer: true}
	m.options = append(m.options, o)
	return o
}

// ClearOptions drops every option and returns to the first page.
func (m *Menu) ClearOptions() {
	m.options = nil
	m.page = 0
	m.cursor.selected = 0
	m.Refresh()
}

func (m *Menu) Options() []*Option {
	return m.options
}

// Page derives the current page view.
func (m *Menu) Page() Page {
	return buildPage(m.options, m.page, pageFlags{
		hasParent:      m.isSub && m.parent != nil,
		exit:           m.HasExitButton,
		calibrate:      m.HasCalibrationOption,
		numberDisabled: m.ShowDisabledNumbering,
	})
}

func (m *Menu) CurrentPage() int   { return m.page }
func (m *Menu) SelectedIndex() int { return m.cursor.selected }
func (m *Menu) IsFlashing() bool   { return m.cursor.flashing }
func (m *Menu) State() State       { return m.state }
func (m *Menu) IsSubMenu() bool    { return m.isSub }
func (m *Menu) Parent() *Menu      { return m.parent }

// FlashKey is the digit being flashed, -1 when not flashing.
func (m *Menu) FlashKey() int {
	if !m.cursor.flashing {
		return -1
	}
	return m.cursor.flashKey
}

// Session returns the session the menu was opened in, nil before Open.
func (m *Menu) Session() *Session { return m.session }

// Refresh re-clamps page and selection after the option list changed and
// schedules a redraw.
func (m *Menu) Refresh() {
	if m.state == StateClosed && m.session != nil {
		return
	}
	p := m.Page()
	m.page = p.Index
	if n := p.Selectable(); n == 0 {
		m.cursor.selected = 0
	} else {
		m.cursor.selected = clamp(m.cursor.selected, 0, n-1)
	}
	m.markDirty()
}

// Close releases everything the menu holds. Calling it again is a no-op.
func (m *Menu) Close() {
	if m.session == nil {
		m.state = StateClosed
		return
	}
	m.session.closeMenu(m)
}

func (m *Menu) live() bool {
	return m.session != nil && !m.session.ended && m.state == StateOpen && m.session.active == m
}

func (m *Menu) markDirty() {
	if m.session != nil && m.session.active == m {
		m.session.renderer.forceRefresh()
	}
}

func (m *Menu) needsFreeze() bool {
	return m.FreezePlayer && m.InputMode != KeyPress
}
