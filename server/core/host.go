package core

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"

	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/shared/netcomponents"
)

var errStaleSurface = errors.New("stale surface")

// syncFunc marks a freshly created entity for network sync of component c.
type syncFunc func(w donburi.World, e *donburi.Entity, c donburi.IComponentType) error

// PlayerHost is the menu.Host of one connected player. Text surfaces are
// NetText entities and the overlay, cues and movement lock live on the
// player's NetHUD entity. It is only touched from the game loop goroutine.
type PlayerHost struct {
	world       donburi.World
	owner       string
	sync        syncFunc
	maxEntities int
	hud         donburi.Entity

	buttons menu.Button
	view    menu.ObservationContext
	digits  func(int)
	gone    bool

	surfaces map[menu.SurfaceHandle]donburi.Entity
	next     menu.SurfaceHandle
}

var (
	_ menu.Host      = (*PlayerHost)(nil)
	_ menu.CuePlayer = (*PlayerHost)(nil)
)

func newPlayerHost(world donburi.World, owner string, sync syncFunc, maxEntities int) (*PlayerHost, error) {
	h := &PlayerHost{
		world:       world,
		owner:       owner,
		sync:        sync,
		maxEntities: maxEntities,
		view:        menu.ObservationContext{Mode: menu.FirstPerson, Anchored: true},
		surfaces:    make(map[menu.SurfaceHandle]donburi.Entity),
	}

	h.hud = world.Create(netcomponents.NetHUD)
	netcomponents.NetHUD.SetValue(world.Entry(h.hud), netcomponents.NetHUDData{Owner: owner})
	if sync != nil {
		if err := sync(world, &h.hud, netcomponents.NetHUD); err != nil {
			world.Remove(h.hud)
			return nil, fmt.Errorf("sync hud for %s: %w", owner, err)
		}
	}
	return h, nil
}

func (h *PlayerHost) PollInput() menu.Button { return h.buttons }

func (h *PlayerHost) ObservationContext() menu.ObservationContext { return h.view }

func (h *PlayerHost) CreateTextSurface(spec menu.SurfaceSpec) (menu.SurfaceHandle, error) {
	if !h.view.Anchored {
		return 0, menu.ErrNoAnchor
	}
	if h.maxEntities > 0 && h.world.Len() >= h.maxEntities {
		return 0, menu.ErrEntityLimit
	}

	e := h.world.Create(netcomponents.NetText)
	netcomponents.NetText.SetValue(h.world.Entry(e), netcomponents.NetTextData{
		Owner:          h.owner,
		Layer:          int(spec.Layer),
		Color:          [4]uint8{spec.Color.R, spec.Color.G, spec.Color.B, spec.Color.A},
		Depth:          spec.DepthOffset,
		X:              spec.Position.X,
		Y:              spec.Position.Y,
		DrawBackground: spec.DrawBackground,
		FontName:       spec.FontName,
		FontSize:       spec.FontSize,
	})
	if h.sync != nil {
		if err := h.sync(h.world, &e, netcomponents.NetText); err != nil {
			h.world.Remove(e)
			return 0, fmt.Errorf("sync text surface: %w", err)
		}
	}

	h.next++
	h.surfaces[h.next] = e
	return h.next, nil
}

func (h *PlayerHost) UpdateSurfaceText(sh menu.SurfaceHandle, text string) error {
	e, ok := h.surfaces[sh]
	if !ok || !h.world.Valid(e) {
		return fmt.Errorf("surface %d: %w", sh, errStaleSurface)
	}
	netcomponents.NetText.Get(h.world.Entry(e)).Text = text
	return nil
}

func (h *PlayerHost) DestroySurface(sh menu.SurfaceHandle) {
	e, ok := h.surfaces[sh]
	if !ok {
		return
	}
	delete(h.surfaces, sh)
	if h.world.Valid(e) {
		h.world.Remove(e)
	}
}

// IsSurfaceValid also forgets handles whose entity was removed behind our back.
func (h *PlayerHost) IsSurfaceValid(sh menu.SurfaceHandle) bool {
	e, ok := h.surfaces[sh]
	if !ok {
		return false
	}
	if !h.world.Valid(e) {
		delete(h.surfaces, sh)
		return false
	}
	return true
}

func (h *PlayerHost) ShowFallbackOverlay(markup string) {
	if d := h.hudData(); d != nil {
		d.Overlay = markup
	}
}

func (h *PlayerHost) RegisterDigitCommands(fn func(key int)) { h.digits = fn }

func (h *PlayerHost) UnregisterDigitCommands() { h.digits = nil }

func (h *PlayerHost) SetMovementLocked(locked bool) {
	if d := h.hudData(); d != nil {
		d.Frozen = locked
	}
}

func (h *PlayerHost) Valid() bool { return !h.gone }

func (h *PlayerHost) PlayCue(name string) {
	if d := h.hudData(); d != nil {
		d.Cue = name
		d.CueSeq++
	}
}

func (h *PlayerHost) setButtons(b menu.Button) { h.buttons = b }

// pressDigit runs the bound digit handler, if any.
func (h *PlayerHost) pressDigit(key int) bool {
	if h.digits == nil || key < 0 || key > 9 {
		return false
	}
	h.digits(key)
	return true
}

// setView applies a client view change. Third person has no anchor for world text.
func (h *PlayerHost) setView(mode menu.ObserverMode, target uint64) {
	h.view = menu.ObservationContext{
		Mode:     mode,
		Target:   target,
		Anchored: mode != menu.ThirdPerson,
	}
}

func (h *PlayerHost) setRound(round int) {
	if d := h.hudData(); d != nil {
		d.Round = round
	}
}

func (h *PlayerHost) hudData() *netcomponents.NetHUDData {
	if !h.world.Valid(h.hud) {
		return nil
	}
	return netcomponents.NetHUD.Get(h.world.Entry(h.hud))
}

// close removes every entity of the player.
func (h *PlayerHost) close() {
	h.gone = true
	h.digits = nil
	for sh := range h.surfaces {
		h.DestroySurface(sh)
	}
	if h.world.Valid(h.hud) {
		h.world.Remove(h.hud)
	}
}
