// Package preview drives a menu on the headless host from a short script and
// prints each frame the way the layered surfaces would stack in game.
package preview

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/automoto/screenmenu/headless"
	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/shared/markup"
)

const titlePad = "ᅠ"

type styles struct {
	box       lipgloss.Style
	highlight lipgloss.Style
	fg        lipgloss.Style
	bg        lipgloss.Style
	overlay   lipgloss.Style
	step      lipgloss.Style
	cue       lipgloss.Style
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

func newStyles(st menu.Style) styles {
	return styles{
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hex(st.Backdrop)).
			Padding(0, 1),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(hex(st.Highlight)),
		fg:        lipgloss.NewStyle().Foreground(hex(st.Foreground)),
		bg:        lipgloss.NewStyle().Foreground(hex(st.Background)),
		overlay: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Faint(true).
			Padding(0, 1),
		step: lipgloss.NewStyle().Bold(true).Underline(true),
		cue:  lipgloss.NewStyle().Italic(true).Faint(true),
	}
}

// Runner owns one headless session.
type Runner struct {
	env     *menu.Env
	host    *headless.Host
	cues    *headless.Cues
	session *menu.Session
	styles  styles
	heard   int
}

func New(env *menu.Env, opts ...menu.SessionOption) *Runner {
	if env == nil {
		env = menu.DefaultEnv()
	}
	r := &Runner{
		env:    env,
		host:   headless.New(),
		cues:   &headless.Cues{},
		styles: newStyles(env.Style),
	}
	opts = append(opts, menu.WithCues(r.cues))
	r.session = menu.NewSession("preview", r.host, env, opts...)
	return r
}

func (r *Runner) Session() *menu.Session { return r.session }

func (r *Runner) Open(m *menu.Menu) { r.session.Open(m) }

// Do runs one script step:
//
//	0-9          digit command, then two ticks
//	tick         one tick
//	first, third switch the view mode
//	any button   press and release, e.g. W or Tab
func (r *Runner) Do(step string) error {
	step = strings.TrimSpace(step)
	if key, err := strconv.Atoi(step); err == nil && key >= 0 && key <= 9 {
		r.host.PressDigit(key)
		r.ticks(2)
		return nil
	}
	switch strings.ToLower(step) {
	case "tick":
		r.ticks(1)
		return nil
	case "first":
		r.host.View = menu.ObservationContext{Mode: menu.FirstPerson, Target: 1, Anchored: true}
		r.session.HandleEvent(menu.EventViewInvalidate)
		r.ticks(2)
		return nil
	case "third":
		r.host.View = menu.ObservationContext{Mode: menu.ThirdPerson, Target: 1}
		r.session.HandleEvent(menu.EventViewInvalidate)
		r.ticks(2)
		return nil
	}

	b, ok := menu.ButtonByName(step)
	if !ok {
		return fmt.Errorf("unknown step %q", step)
	}
	r.host.Buttons = b
	r.ticks(1)
	r.host.Buttons = 0
	r.ticks(2)
	return nil
}

func (r *Runner) ticks(n int) {
	for i := 0; i < n; i++ {
		r.session.Tick()
	}
}

// Render draws the current frame. Layers are merged row by row, front layer first.
func (r *Runner) Render() string {
	if r.host.SurfaceCount() == 0 {
		if r.host.Overlay == "" {
			return r.styles.overlay.Render("(nothing drawn)")
		}
		return r.styles.overlay.Render(markup.Plain(r.host.Overlay))
	}

	rows := func(l menu.Layer) []string {
		text, _ := r.host.Layer(l)
		return strings.Split(text, "\n")
	}
	hl, fg, bg, back := rows(menu.LayerHighlight), rows(menu.LayerForeground), rows(menu.LayerBackground), rows(menu.LayerBackdrop)

	out := make([]string, len(back))
	for i := range back {
		switch {
		case at(hl, i) != "":
			out[i] = r.styles.highlight.Render(at(hl, i))
		case at(fg, i) != "":
			out[i] = r.styles.fg.Render(at(fg, i))
		default:
			out[i] = r.styles.bg.Render(strings.TrimRight(at(bg, i), titlePad))
		}
	}
	return r.styles.box.Render(strings.Join(out, "\n"))
}

func at(rows []string, i int) string {
	if i < len(rows) {
		return rows[i]
	}
	return ""
}

// newCues returns the cues played since the last call.
func (r *Runner) newCues() []string {
	c := r.cues.Played[r.heard:]
	r.heard = len(r.cues.Played)
	return c
}

// Run executes steps and writes a frame after each.
func (r *Runner) Run(w io.Writer, steps []string) error {
	r.ticks(1)
	r.frame(w, "open")
	for _, step := range steps {
		if err := r.Do(step); err != nil {
			return err
		}
		r.frame(w, step)
	}
	return nil
}

func (r *Runner) frame(w io.Writer, name string) {
	fmt.Fprintln(w, r.styles.step.Render(name))
	if cues := r.newCues(); len(cues) > 0 {
		fmt.Fprintln(w, r.styles.cue.Render("♪ "+strings.Join(cues, ", ")))
	}
	fmt.Fprintln(w, r.Render())
	fmt.Fprintln(w)
}

// ParseScript splits "1, tick, W" into steps.
func ParseScript(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}
