package menu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/screenmenu/headless"
	"github.com/automoto/screenmenu/menu"
)

type fakeFlow struct {
	ticks     int
	cancelled bool
	// finish, when set, is reported as Done on the next Tick.
	finish *menu.Position
	saved  bool
	req    menu.CalibrationRequest
}

func (f *fakeFlow) Tick() {
	f.ticks++
	if f.finish != nil {
		p := *f.finish
		f.finish = nil
		f.req.Done(p, f.saved)
	}
}

func (f *fakeFlow) Cancel() { f.cancelled = true }

type fakeCalibrator struct {
	flows []*fakeFlow
}

func (c *fakeCalibrator) Begin(req menu.CalibrationRequest) menu.CalibrationFlow {
	fl := &fakeFlow{req: req}
	c.flows = append(c.flows, fl)
	return fl
}

func (c *fakeCalibrator) last() *fakeFlow { return c.flows[len(c.flows)-1] }

type mapStore map[string]menu.Position

func (m mapStore) Position(player string) (menu.Position, bool) {
	p, ok := m[player]
	return p, ok
}

func (m mapStore) SetPosition(player string, p menu.Position) error {
	m[player] = p
	return nil
}

func calibratingFixture(t *testing.T) (*fixture, *fakeCalibrator, mapStore) {
	t.Helper()
	f := newFixture(t)
	cal := &fakeCalibrator{}
	store := mapStore{}
	f.env.RequireCalibration = true
	f.env.Calibrator = cal
	f.env.Positions = store
	f.s = menu.NewSession("player-1", f.host, f.env, menu.WithCues(f.cues))
	return f, cal, store
}

func TestFirstOpenCalibratesBeforeShowing(t *testing.T) {
	f, cal, store := calibratingFixture(t)
	m := f.newMenu("Main", 2, menu.KeyPress)
	f.s.Open(m)

	assert.Equal(t, menu.StateAwaitingCalibration, m.State())
	assert.True(t, f.s.Calibrating())
	assert.True(t, f.host.Locked, "movement is locked while calibrating")
	require.Len(t, cal.flows, 1)
	assert.Equal(t, "player-1", cal.last().req.Player)

	f.ticks(2)
	assert.Equal(t, 2, cal.last().ticks)
	assert.Zero(t, f.host.SurfaceCount())
	assert.False(t, f.host.PressDigit(1), "digits are not bound yet")

	want := menu.Position{X: -9, Y: -4.5}
	cal.last().finish = &want
	cal.last().saved = true
	f.ticks(2)

	assert.Equal(t, menu.StateOpen, m.State())
	assert.False(t, f.s.Calibrating())
	assert.False(t, f.host.Locked)
	assert.Equal(t, want, f.s.Position())
	assert.Equal(t, want, store["player-1"])
	require.Equal(t, 4, f.host.SurfaceCount())
	assert.Equal(t, want, f.host.Surfaces()[0].Spec.Position)

	// a stored position skips calibration for the next session
	next := menu.NewSession("player-1", headless.New(), f.env)
	other := f.newMenu("Again", 1, menu.KeyPress)
	next.Open(other)
	assert.Equal(t, menu.StateOpen, other.State())
	assert.Len(t, cal.flows, 1)
}

func TestCancelledCalibrationStillOpens(t *testing.T) {
	f, cal, store := calibratingFixture(t)
	m := f.newMenu("Main", 2, menu.KeyPress)
	f.s.Open(m)

	from := cal.last().req.From
	cal.last().finish = &from
	f.ticks(2)

	assert.Equal(t, menu.StateOpen, m.State())
	assert.Empty(t, store)
	assert.Equal(t, f.env.DefaultPosition, f.s.Position())
}

func TestCalibrateButtonMovesOpenMenu(t *testing.T) {
	f, cal, store := calibratingFixture(t)
	store["player-1"] = menu.Position{X: -7}
	f.s = menu.NewSession("player-1", f.host, f.env)

	m := f.newMenu("Main", 2, menu.KeyPress)
	m.HasCalibrationOption = true
	f.s.Open(m)
	require.Equal(t, menu.StateOpen, m.State())
	f.ticks(1)
	fg, _ := f.host.Layer(menu.LayerForeground)
	assert.Contains(t, fg, "0. ChangeRes")

	f.press(0)
	require.True(t, f.s.Calibrating())
	assert.Equal(t, menu.Position{X: -7}, cal.last().req.From)
	assert.True(t, f.host.Locked)

	f.press(1)
	assert.Equal(t, menu.StateOpen, m.State(), "digits are ignored while calibrating")

	moved := menu.Position{X: -6.5, Y: 1}
	cal.last().req.OnMove(moved)
	f.ticks(1)
	assert.Zero(t, f.host.SurfaceCount(), "surfaces are rebuilt at the new position")
	f.ticks(1)
	require.Equal(t, 4, f.host.SurfaceCount())
	assert.Equal(t, moved, f.host.Surfaces()[0].Spec.Position)

	cal.last().finish = &moved
	cal.last().saved = true
	f.ticks(2)
	assert.False(t, f.s.Calibrating())
	assert.False(t, f.host.Locked)
	assert.Equal(t, moved, store["player-1"])
	assert.Equal(t, menu.StateOpen, m.State())
}

func TestClosingCancelsCalibration(t *testing.T) {
	f, cal, _ := calibratingFixture(t)
	m := f.newMenu("Main", 1, menu.KeyPress)
	f.s.Open(m)
	flow := cal.last()

	m.Close()
	assert.True(t, flow.cancelled)
	assert.False(t, f.s.Calibrating())
	assert.False(t, f.host.Locked)

	// a late Done from the cancelled flow is dropped
	p := menu.Position{X: 3}
	flow.req.Done(p, true)
	f.ticks(3)
	assert.Equal(t, menu.StateClosed, m.State())
	assert.Nil(t, f.s.Active())
}
