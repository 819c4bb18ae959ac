package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/screenmenu/headless"
	"github.com/automoto/screenmenu/menu"
)

func demoSession(t *testing.T) (*Demo, *menu.Session, *headless.Host) {
	t.Helper()
	env := menu.DefaultEnv()
	env.RequireCalibration = false
	host := headless.New()
	return NewDemo(env), menu.NewSession("alice", host, env), host
}

func TestDemoUnknownCommand(t *testing.T) {
	d, s, _ := demoSession(t)
	assert.False(t, d.Handle(s, "nope", menu.KeyPress))
	assert.Nil(t, s.Active())
	assert.ElementsMatch(t, []string{"menu", "submenu", "vote"}, d.Commands())
}

func TestDemoDisabledWeapons(t *testing.T) {
	d, _, _ := demoSession(t)
	root := d.WeaponsMenu("alice", menu.KeyPress)
	assert.Equal(t, "Weapons Menu", root.Title)

	disabled := map[string]bool{}
	for _, cat := range demoCategories {
		for _, w := range cat.weapons {
			if w.disabled {
				disabled[w.name] = true
			}
		}
	}
	assert.Equal(t, map[string]bool{"TEC-9": true, "SCAR-20": true, "Negev": true}, disabled)
}

func TestDemoVoteRetitles(t *testing.T) {
	d, s, host := demoSession(t)
	require.True(t, d.Handle(s, "vote", menu.KeyPress))
	s.Tick()
	assert.Equal(t, "Vote Test | 0", s.Active().Title)

	host.PressDigit(1)
	s.Tick()
	s.Tick()

	require.NotNil(t, s.Active(), "vote menu stays open")
	assert.Equal(t, "Vote Test | 1", s.Active().Title)
	s.Tick()
	bg, _ := host.Layer(menu.LayerBackground)
	assert.Contains(t, bg, "Vote Test | 1")
}

func TestDemoNestedDepth(t *testing.T) {
	d, s, host := demoSession(t)
	require.True(t, d.Handle(s, "submenu", menu.Scrollable))
	s.Tick()

	for want := 2; want <= 3; want++ {
		host.Buttons = menu.ButtonUse
		s.Tick()
		host.Buttons = 0
		for i := 0; i < 3; i++ {
			s.Tick()
		}
		require.NotNil(t, s.Active())
		assert.Equal(t, want-1, s.Depth())
	}
	assert.Equal(t, "Level 3", s.Active().Title)
}
