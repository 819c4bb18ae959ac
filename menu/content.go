package menu

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
)

// titlePad is appended to the title so the backdrop is as wide as the widest line.
const titlePad = "ᅠ"

type lineStyle struct {
	foreground bool
	highlight  bool
}

type line struct {
	text  string
	style lineStyle
}

// content is the rendered text of one menu state, independent of backend.
type content struct {
	lines []line
}

func buildContent(m *Menu, s *Session) content {
	p := m.Page()
	cur := m.cursor
	scrolling := m.InputMode != KeyPress && !cur.flashing
	var c content

	title := m.Title + ":"
	if m.ShowPageCount {
		title = fmt.Sprintf("%s:    (%d/%d)", m.Title, p.Index+1, p.MaxPage+1)
	}
	c.add(title, lineStyle{})

	for _, e := range p.Entries {
		o := e.Option
		if o.spacer {
			c.add("", lineStyle{})
			continue
		}

		selected := scrolling && e.Selectable >= 0 && e.Selectable == cur.selected
		flashed := cur.flashing && e.Number > 0 && e.Number == cur.flashKey
		text := o.Text
		if e.Number > 0 {
			text = fmt.Sprintf("%d. %s", e.Number, o.Text)
		}
		if selected && s.env.Style.ScrollPrefix != "" {
			text = s.env.Style.ScrollPrefix + " " + text
		}
		c.add(text, lineStyle{foreground: !o.Disabled, highlight: selected || flashed})
	}

	c.add(" ", lineStyle{})

	for i, nav := range p.Nav {
		selected := scrolling && cur.selected == p.Enabled+i
		flashed := cur.flashing && cur.flashKey == nav.Key()
		text := fmt.Sprintf("%d. %s", nav.Key(), navLabel(m, s, nav))
		if selected && s.env.Style.ScrollPrefix != "" {
			text = s.env.Style.ScrollPrefix + " " + text
		}
		c.add(text, lineStyle{foreground: true, highlight: selected || flashed})
	}

	if m.InputMode != KeyPress && m.ShowControlsHint {
		ctl := s.env.Controls
		c.add(s.localize("ScrollKeys", ctl.ScrollUpName, ctl.ScrollDownName), lineStyle{})
		c.add(s.localize("SelectKey", ctl.SelectName), lineStyle{})
		c.add(s.localize("ExitKey", ctl.ExitName), lineStyle{})
	}

	c.padTitle()
	return c
}

func navLabel(m *Menu, s *Session, nav NavButton) string {
	switch nav {
	case NavBack:
		if m.isSub && m.page == 0 {
			return s.localize("Back")
		}
		return s.localize("Prev")
	case NavNext:
		return s.localize("Next")
	case NavExit:
		return s.localize("Close")
	case NavCalibrate:
		return s.localize("ChangeRes")
	default:
		return ""
	}
}

func (c *content) add(text string, style lineStyle) {
	c.lines = append(c.lines, line{text: text, style: style})
}

func (c *content) padTitle() {
	if len(c.lines) == 0 {
		return
	}
	widest := 0
	for _, l := range c.lines[1:] {
		widest = max(widest, runewidth.StringWidth(l.text))
	}
	if gap := widest - runewidth.StringWidth(c.lines[0].text); gap > 0 {
		c.lines[0].text += strings.Repeat(titlePad, gap)
	}
}

// layers splits the content into the four stacked blocks. Every layer gets
// one row per line so rows stay aligned across layers.
func (c content) layers() [layerCount]string {
	var b [layerCount]strings.Builder
	for i, l := range c.lines {
		if i > 0 {
			for j := range b {
				b[j].WriteByte('\n')
			}
		}
		if l.style.highlight {
			b[LayerHighlight].WriteString(l.text)
		}
		if l.style.foreground {
			b[LayerForeground].WriteString(l.text)
		} else {
			b[LayerBackground].WriteString(l.text)
		}
		b[LayerBackdrop].WriteString(l.text)
	}

	var out [layerCount]string
	for i := range b {
		out[i] = b[i].String()
	}
	return out
}

// markup renders the single-block overlay used when no layered surface is available.
func (c content) markup(st Style) string {
	var b strings.Builder
	b.WriteString("<font class='fontSize-s'>")
	for _, l := range c.lines {
		col := st.MarkupBackground
		switch {
		case l.style.foreground && l.style.highlight:
			col = st.MarkupForegroundHighlight
		case l.style.foreground:
			col = st.MarkupForeground
		case l.style.highlight:
			col = st.MarkupBackgroundHighlight
		}
		fmt.Fprintf(&b, "<font color='%s'>%s</font><br>", col, html.EscapeString(strings.TrimRight(l.text, titlePad)))
	}
	b.WriteString("</font>")
	return b.String()
}
