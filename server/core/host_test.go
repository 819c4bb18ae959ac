package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/shared/netcomponents"
)

func TestPlayerHostSurfaces(t *testing.T) {
	w := donburi.NewWorld()
	h, err := newPlayerHost(w, "alice", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Len(), "hud entity")

	sh, err := h.CreateTextSurface(menu.SurfaceSpec{Layer: menu.LayerForeground, Position: menu.Position{X: -9}})
	require.NoError(t, err)
	require.NoError(t, h.UpdateSurfaceText(sh, "1. Glock"))

	e := h.surfaces[sh]
	d := netcomponents.NetText.Get(w.Entry(e))
	assert.Equal(t, "alice", d.Owner)
	assert.Equal(t, "1. Glock", d.Text)
	assert.Equal(t, -9.0, d.X)

	w.Remove(e)
	assert.False(t, h.IsSurfaceValid(sh))
	assert.ErrorIs(t, h.UpdateSurfaceText(sh, "x"), errStaleSurface)
}

func TestPlayerHostLimits(t *testing.T) {
	w := donburi.NewWorld()
	h, err := newPlayerHost(w, "alice", nil, 2)
	require.NoError(t, err)

	_, err = h.CreateTextSurface(menu.SurfaceSpec{})
	require.NoError(t, err)
	_, err = h.CreateTextSurface(menu.SurfaceSpec{})
	assert.ErrorIs(t, err, menu.ErrEntityLimit)

	h.setView(menu.ThirdPerson, 3)
	_, err = h.CreateTextSurface(menu.SurfaceSpec{})
	assert.ErrorIs(t, err, menu.ErrNoAnchor)
	assert.Equal(t, uint64(3), h.ObservationContext().Target)
}

func TestPlayerHostSyncFailure(t *testing.T) {
	w := donburi.NewWorld()
	boom := errors.New("boom")
	calls := 0
	sync := func(donburi.World, *donburi.Entity, donburi.IComponentType) error {
		calls++
		if calls > 1 {
			return boom
		}
		return nil
	}
	h, err := newPlayerHost(w, "alice", sync, 0)
	require.NoError(t, err)

	_, err = h.CreateTextSurface(menu.SurfaceSpec{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, w.Len(), "failed surface is removed")
}

func TestPlayerHostHUD(t *testing.T) {
	w := donburi.NewWorld()
	h, err := newPlayerHost(w, "alice", nil, 0)
	require.NoError(t, err)

	h.ShowFallbackOverlay("<b>hi</b>")
	h.SetMovementLocked(true)
	h.PlayCue("menu.Select")
	h.PlayCue("menu.Select")

	hud := h.hudData()
	assert.Equal(t, "<b>hi</b>", hud.Overlay)
	assert.True(t, hud.Frozen)
	assert.Equal(t, uint32(2), hud.CueSeq)

	var got []int
	assert.False(t, h.pressDigit(1))
	h.RegisterDigitCommands(func(k int) { got = append(got, k) })
	assert.True(t, h.pressDigit(4))
	assert.False(t, h.pressDigit(10))
	assert.Equal(t, []int{4}, got)

	h.close()
	assert.False(t, h.Valid())
	assert.Zero(t, w.Len())
	assert.Nil(t, h.hudData())
}

func TestRoundTimer(t *testing.T) {
	r := newRoundTimer(1, 3)
	assert.False(t, r.tick())
	assert.False(t, r.tick())
	assert.True(t, r.tick())
	assert.Equal(t, 2, r.round)

	off := newRoundTimer(0, 64)
	for i := 0; i < 100; i++ {
		assert.False(t, off.tick())
	}
}
