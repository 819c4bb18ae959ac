// Package headless is an in-memory menu host. It backs the preview command
// and the tests of every package that drives menus.
package headless

import (
	"sort"

	"github.com/automoto/screenmenu/menu"
)

// Surface is one live text surface.
type Surface struct {
	Spec menu.SurfaceSpec
	Text string
}

// Host implements menu.Host without any rendering.
type Host struct {
	Buttons menu.Button
	View    menu.ObservationContext
	Overlay string
	Locked  bool
	Gone    bool

	// MaxSurfaces caps live surfaces; 0 means unlimited.
	MaxSurfaces int
	// FailCreates makes the next n creates fail with menu.ErrEntityLimit.
	FailCreates int

	Created   int
	Destroyed int
	Updates   int
	LockCalls int

	surfaces map[menu.SurfaceHandle]*Surface
	next     menu.SurfaceHandle
	digits   func(int)
}

var _ menu.Host = (*Host)(nil)

func New() *Host {
	return &Host{
		View:     menu.ObservationContext{Mode: menu.FirstPerson, Target: 1, Anchored: true},
		surfaces: make(map[menu.SurfaceHandle]*Surface),
	}
}

func (h *Host) PollInput() menu.Button { return h.Buttons }

func (h *Host) ObservationContext() menu.ObservationContext { return h.View }

func (h *Host) CreateTextSurface(spec menu.SurfaceSpec) (menu.SurfaceHandle, error) {
	if !h.View.Anchored {
		return 0, menu.ErrNoAnchor
	}
	if h.FailCreates > 0 {
		h.FailCreates--
		return 0, menu.ErrEntityLimit
	}
	if h.MaxSurfaces > 0 && len(h.surfaces) >= h.MaxSurfaces {
		return 0, menu.ErrEntityLimit
	}
	h.next++
	h.surfaces[h.next] = &Surface{Spec: spec}
	h.Created++
	return h.next, nil
}

func (h *Host) UpdateSurfaceText(sh menu.SurfaceHandle, text string) error {
	s, ok := h.surfaces[sh]
	if !ok {
		return menu.ErrEntityLimit
	}
	s.Text = text
	h.Updates++
	return nil
}

func (h *Host) DestroySurface(sh menu.SurfaceHandle) {
	if _, ok := h.surfaces[sh]; ok {
		delete(h.surfaces, sh)
		h.Destroyed++
	}
}

func (h *Host) IsSurfaceValid(sh menu.SurfaceHandle) bool {
	_, ok := h.surfaces[sh]
	return ok
}

func (h *Host) ShowFallbackOverlay(markup string) { h.Overlay = markup }

func (h *Host) RegisterDigitCommands(fn func(key int)) { h.digits = fn }

func (h *Host) UnregisterDigitCommands() { h.digits = nil }

func (h *Host) SetMovementLocked(locked bool) {
	h.Locked = locked
	h.LockCalls++
}

func (h *Host) Valid() bool { return !h.Gone }

// PressDigit sends a digit command like a chat bind would. It reports
// whether any handler was registered.
func (h *Host) PressDigit(key int) bool {
	if h.digits == nil {
		return false
	}
	h.digits(key)
	return true
}

func (h *Host) DigitsRegistered() bool { return h.digits != nil }

// Wipe drops every surface without telling the owner, like a round restart does.
func (h *Host) Wipe() {
	clear(h.surfaces)
}

// SurfaceCount is the number of live surfaces.
func (h *Host) SurfaceCount() int { return len(h.surfaces) }

// Layer returns the text of the live surface created for l.
func (h *Host) Layer(l menu.Layer) (string, bool) {
	for _, s := range h.surfaces {
		if s.Spec.Layer == l {
			return s.Text, true
		}
	}
	return "", false
}

// Surfaces returns live surfaces ordered from back to front.
func (h *Host) Surfaces() []Surface {
	out := make([]Surface, 0, len(h.surfaces))
	for _, s := range h.surfaces {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Spec.DepthOffset < out[j].Spec.DepthOffset
	})
	return out
}

// Cues records played cue names.
type Cues struct {
	Played []string
}

func (c *Cues) PlayCue(name string) { c.Played = append(c.Played, name) }

// Last returns the most recent cue, or "".
func (c *Cues) Last() string {
	if len(c.Played) == 0 {
		return ""
	}
	return c.Played[len(c.Played)-1]
}
