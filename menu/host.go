package menu

import (
	"errors"
	"image/color"
)

var (
	// ErrNoAnchor means the host has nothing to attach a world-space surface to
	// for the current view. The renderer switches to the overlay channel.
	ErrNoAnchor = errors.New("no renderable anchor")
	// ErrEntityLimit means the host is out of entities for now. Retried next tick.
	ErrEntityLimit = errors.New("entity limit reached")
)

// ObserverMode is how the player currently sees the world.
type ObserverMode int

const (
	FirstPerson ObserverMode = iota
	ThirdPerson
	Roaming
)

func (m ObserverMode) String() string {
	switch m {
	case FirstPerson:
		return "FirstPerson"
	case ThirdPerson:
		return "ThirdPerson"
	case Roaming:
		return "Roaming"
	default:
		return "Unknown"
	}
}

// ObservationContext describes the view a player is looking through.
// Mode and Target together form the view identity; a change forces a redraw.
type ObservationContext struct {
	Mode   ObserverMode
	Target uint64
	// Anchored is false when no layered surface can be placed in this view.
	Anchored bool
}

func (c ObservationContext) sameView(o ObservationContext) bool {
	return c.Mode == o.Mode && c.Target == o.Target && c.Anchored == o.Anchored
}

// SurfaceHandle identifies a host text surface. Zero is never valid.
type SurfaceHandle uint64

// Layer is one of the stacked text blocks of the layered backend.
type Layer int

const (
	LayerHighlight Layer = iota
	LayerForeground
	LayerBackground
	LayerBackdrop
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerHighlight:
		return "highlight"
	case LayerForeground:
		return "foreground"
	case LayerBackground:
		return "background"
	case LayerBackdrop:
		return "backdrop"
	default:
		return "unknown"
	}
}

// SurfaceSpec is everything the host needs to create one layer.
type SurfaceSpec struct {
	Layer          Layer
	Color          color.RGBA
	DrawBackground bool
	DepthOffset    float64
	FontName       string
	FontSize       int
	Position       Position
}

// Host is the per-player adapter the menu core draws through and reads input from.
type Host interface {
	PollInput() Button
	ObservationContext() ObservationContext

	CreateTextSurface(spec SurfaceSpec) (SurfaceHandle, error)
	UpdateSurfaceText(h SurfaceHandle, text string) error
	DestroySurface(h SurfaceHandle)
	IsSurfaceValid(h SurfaceHandle) bool

	// ShowFallbackOverlay replaces the coarse overlay. An empty string clears it.
	ShowFallbackOverlay(markup string)

	RegisterDigitCommands(fn func(key int))
	UnregisterDigitCommands()

	SetMovementLocked(locked bool)

	// Valid is false once the player is gone.
	Valid() bool
}

// Localizer resolves a translation key with {0}-style arguments.
type Localizer interface {
	Localize(key string, args ...any) string
}

// CuePlayer plays a named sound for the player. Empty names are skipped by the caller.
type CuePlayer interface {
	PlayCue(name string)
}

// PositionStore keeps the calibrated panel position per player.
type PositionStore interface {
	Position(player string) (Position, bool)
	SetPosition(player string, pos Position) error
}

// Calibrator starts the position adjustment flow.
type Calibrator interface {
	Begin(req CalibrationRequest) CalibrationFlow
}

// CalibrationRequest carries what a calibration flow needs from the session.
type CalibrationRequest struct {
	Player    string
	Host      Host
	Localizer Localizer
	From      Position
	// OnMove is called with every intermediate position.
	OnMove func(Position)
	// Done is called exactly once. saved is false on cancel, pos is then the starting position.
	Done func(pos Position, saved bool)
}

// CalibrationFlow is driven by the session tick while it is active.
type CalibrationFlow interface {
	Tick()
	Cancel()
}

type keyLocalizer struct{}

func (keyLocalizer) Localize(key string, _ ...any) string { return key }

type noCues struct{}

func (noCues) PlayCue(string) {}
