package calibration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/screenmenu/config"
	"github.com/automoto/screenmenu/headless"
	"github.com/automoto/screenmenu/menu"
)

type argsLocalizer struct{}

func (argsLocalizer) Localize(key string, args ...any) string {
	return fmt.Sprint(append([]any{key}, args...)...)
}

type result struct {
	pos   menu.Position
	saved bool
	calls int
}

type harness struct {
	host  *headless.Host
	flow  menu.CalibrationFlow
	moves []menu.Position
	res   result
}

func newHarness(t *testing.T, from menu.Position) *harness {
	t.Helper()
	s, err := SettingsFromConfig(config.Default())
	require.NoError(t, err)
	s.HoldDelay = 3
	s.RepeatEvery = 2

	h := &harness{host: headless.New()}
	h.flow = New(s).Begin(menu.CalibrationRequest{
		Player:    "p1",
		Host:      h.host,
		Localizer: argsLocalizer{},
		From:      from,
		OnMove:    func(p menu.Position) { h.moves = append(h.moves, p) },
		Done: func(p menu.Position, saved bool) {
			h.res = result{pos: p, saved: saved, calls: h.res.calls + 1}
		},
	})
	return h
}

func (h *harness) hold(b menu.Button, ticks int) {
	h.host.Buttons = b
	for i := 0; i < ticks; i++ {
		h.flow.Tick()
	}
}

func (h *harness) tap(b menu.Button) {
	h.hold(b, 1)
	h.hold(0, 1)
}

func (h *harness) x() float64 {
	return h.flow.(*Flow).Position().X
}

func TestSettingsFromConfig(t *testing.T) {
	c := config.Default()
	c.Server.TickRate = 100
	s, err := SettingsFromConfig(c)
	require.NoError(t, err)

	assert.Equal(t, 30, s.HoldDelay)
	assert.Equal(t, 5, s.RepeatEvery)
	assert.Equal(t, menu.ButtonMoveLeft, s.Left)
	assert.Equal(t, menu.ButtonMoveRight, s.Right)
	assert.Equal(t, menu.ButtonUse, s.Save)
	assert.Equal(t, menu.ButtonReload, s.Cancel)
	require.Len(t, s.Presets, len(c.Settings.Resolutions))
	first := c.Settings.Resolutions[c.Settings.ResolutionNames()[0]]
	assert.Equal(t, first.PositionX, s.Presets[0].X)

	c.Controls.Cancel = "nope"
	_, err = SettingsFromConfig(c)
	assert.Error(t, err)
}

func TestStepAndRepeat(t *testing.T) {
	h := newHarness(t, menu.Position{})

	h.hold(menu.ButtonMoveRight, 1)
	assert.InDelta(t, 0.02, h.x(), 1e-9, "first tick of a press steps")

	h.hold(menu.ButtonMoveRight, 3)
	assert.InDelta(t, 0.02, h.x(), 1e-9, "no repeat during the hold delay")

	h.hold(menu.ButtonMoveRight, 4)
	assert.InDelta(t, 0.06, h.x(), 1e-9)

	h.hold(0, 1)
	h.hold(menu.ButtonMoveLeft, 1)
	assert.InDelta(t, 0.04, h.x(), 1e-9)
	assert.Len(t, h.moves, 4)
	assert.Zero(t, h.res.calls)
}

func TestSaveReportsPosition(t *testing.T) {
	h := newHarness(t, menu.Position{X: -7})
	h.tap(menu.ButtonMoveLeft)
	h.tap(menu.ButtonMoveLeft)
	require.Contains(t, h.host.Overlay, "-7.040")

	h.tap(menu.ButtonUse)
	assert.Equal(t, 1, h.res.calls)
	assert.True(t, h.res.saved)
	assert.InDelta(t, -7.04, h.res.pos.X, 1e-9)
	assert.Empty(t, h.host.Overlay)

	h.tap(menu.ButtonUse)
	h.flow.Cancel()
	assert.Equal(t, 1, h.res.calls, "a finished flow ignores input")
}

func TestCancelRestoresStart(t *testing.T) {
	from := menu.Position{X: -9, Y: 0.5}
	h := newHarness(t, from)
	h.tap(menu.ButtonMoveRight)

	h.tap(menu.ButtonReload)
	assert.Equal(t, 1, h.res.calls)
	assert.False(t, h.res.saved)
	assert.Equal(t, from, h.res.pos)
	assert.Equal(t, from, h.moves[len(h.moves)-1])
}

func TestPresetsCycle(t *testing.T) {
	h := newHarness(t, menu.Position{})
	presets := h.flow.(*Flow).settings.Presets
	require.Len(t, presets, 2)

	h.tap(menu.ButtonBack)
	assert.Equal(t, presets[0], h.flow.(*Flow).Position())
	h.tap(menu.ButtonBack)
	assert.Equal(t, presets[1], h.flow.(*Flow).Position())
	h.tap(menu.ButtonBack)
	assert.Equal(t, presets[0], h.flow.(*Flow).Position())
	h.tap(menu.ButtonForward)
	assert.Equal(t, presets[1], h.flow.(*Flow).Position())
}

func TestOverlayShownEachTick(t *testing.T) {
	h := newHarness(t, menu.Position{X: 1.5})
	assert.Contains(t, h.host.Overlay, "SelectRes")
	assert.Contains(t, h.host.Overlay, "ResHintADWSER")

	h.host.Overlay = ""
	h.hold(0, 1)
	assert.Contains(t, h.host.Overlay, "ResValue1.5000.000")

	h.flow.Cancel()
	assert.Empty(t, h.host.Overlay)
	assert.Zero(t, h.res.calls)
}
