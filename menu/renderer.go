package menu

import (
	"errors"

	"github.com/automoto/screenmenu/pkg/logging"
)

// renderTarget is what is currently on screen: layered surfaces or the overlay.
type renderTarget interface {
	teardown(h Host)
}

type layeredTarget struct {
	handles [layerCount]SurfaceHandle
	texts   [layerCount]string
	pos     Position
}

func (t *layeredTarget) teardown(h Host) {
	for _, sh := range t.handles {
		if sh != 0 && h.IsSurfaceValid(sh) {
			h.DestroySurface(sh)
		}
	}
}

func (t *layeredTarget) valid(h Host) bool {
	for _, sh := range t.handles {
		if sh == 0 || !h.IsSurfaceValid(sh) {
			return false
		}
	}
	return true
}

type fallbackTarget struct {
	markup string
}

func (t *fallbackTarget) teardown(h Host) {
	h.ShowFallbackOverlay("")
}

// renderer turns the active menu into host surfaces. It only redraws when
// the menu is dirty, the view identity changed or a surface went stale.
type renderer struct {
	s      *Session
	target renderTarget

	view    ObservationContext
	hasView bool
	dirty   bool
	// holdoff skips one draw after surfaces were destroyed inside a tick.
	holdoff bool
}

func newRenderer(s *Session) *renderer {
	return &renderer{s: s, dirty: true}
}

func (r *renderer) forceRefresh() {
	r.dirty = true
}

// destroy is used on close and menu transitions.
func (r *renderer) destroy() {
	r.teardown()
	r.dirty = true
	r.holdoff = false
}

// invalidate drops every surface; the next tick rebuilds from scratch.
func (r *renderer) invalidate() {
	r.teardown()
	r.hasView = false
	r.dirty = true
}

func (r *renderer) teardown() {
	if r.target != nil {
		r.target.teardown(r.s.host)
		r.target = nil
	}
}

func (r *renderer) tick(m *Menu) {
	host := r.s.host
	view := host.ObservationContext()

	if !r.hasView {
		r.view = view
		r.hasView = true
		r.dirty = true
	} else if !view.sameView(r.view) {
		logging.Debug("menu", "view changed for %s: %s -> %s", r.s.id, r.view.Mode, view.Mode)
		r.view = view
		r.dirty = true
		if r.target != nil {
			r.teardown()
			r.holdoff = true
		}
	}

	if lt, ok := r.target.(*layeredTarget); ok && !lt.valid(host) {
		logging.Debug("menu", "stale surface for %s, rebuilding", r.s.id)
		r.teardown()
		r.dirty = true
		r.holdoff = true
	}

	if r.holdoff {
		r.holdoff = false
		return
	}

	if !r.dirty {
		// The overlay channel is transient on the host and has to be re-sent every tick.
		if fb, ok := r.target.(*fallbackTarget); ok && !r.s.calibrating() {
			host.ShowFallbackOverlay(fb.markup)
		}
		return
	}

	r.dirty = false
	r.reconcile(m, view)
}

// reconcile draws c through whichever backend the view allows, tearing the
// other one down first.
func (r *renderer) reconcile(m *Menu, view ObservationContext) {
	c := buildContent(m, r.s)

	if view.Anchored {
		err := r.drawLayered(c)
		if err == nil {
			return
		}
		if !errors.Is(err, ErrNoAnchor) {
			logging.Debug("menu", "layered draw for %s failed, retrying next tick: %v", r.s.id, err)
			r.dirty = true
			return
		}
	}
	r.drawFallback(c)
}

func (r *renderer) drawLayered(c content) error {
	host := r.s.host
	texts := c.layers()
	pos := r.s.position

	if lt, ok := r.target.(*layeredTarget); ok {
		if lt.pos != pos {
			// Surfaces are placed at creation; rebuild next tick once the host dropped the old ones.
			r.teardown()
			r.dirty = true
			return nil
		}
		for i := range texts {
			if texts[i] == lt.texts[i] {
				continue
			}
			if err := host.UpdateSurfaceText(lt.handles[i], texts[i]); err != nil {
				r.teardown()
				return err
			}
			lt.texts[i] = texts[i]
		}
		return nil
	}

	if _, ok := r.target.(*fallbackTarget); ok {
		r.teardown()
	}

	next := &layeredTarget{pos: pos}
	for i, spec := range r.specs(pos) {
		h, err := host.CreateTextSurface(spec)
		if err != nil {
			next.teardown(host)
			return err
		}
		next.handles[i] = h
	}
	for i := range texts {
		if err := host.UpdateSurfaceText(next.handles[i], texts[i]); err != nil {
			next.teardown(host)
			return err
		}
		next.texts[i] = texts[i]
	}
	r.target = next
	return nil
}

func (r *renderer) drawFallback(c content) {
	if _, ok := r.target.(*layeredTarget); ok {
		r.teardown()
	}
	fb := &fallbackTarget{markup: c.markup(r.s.env.Style)}
	r.target = fb
	if !r.s.calibrating() {
		r.s.host.ShowFallbackOverlay(fb.markup)
	}
}

func (r *renderer) specs(pos Position) [layerCount]SurfaceSpec {
	st := r.s.env.Style
	base := SurfaceSpec{FontName: st.FontName, FontSize: st.FontSize, Position: pos}

	var out [layerCount]SurfaceSpec
	for i := range out {
		out[i] = base
		out[i].Layer = Layer(i)
	}
	out[LayerHighlight].Color = st.Highlight
	out[LayerHighlight].DepthOffset = 0.001
	out[LayerForeground].Color = st.Foreground
	out[LayerBackground].Color = st.Background
	out[LayerBackground].DepthOffset = -0.001
	out[LayerBackdrop].Color = st.Backdrop
	out[LayerBackdrop].DrawBackground = true
	out[LayerBackdrop].DepthOffset = -0.002
	return out
}
