package menu

import (
	"fmt"
	"image/color"

	"github.com/automoto/screenmenu/config"
)

// Controls are the polled buttons a scrollable menu reacts to.
type Controls struct {
	ScrollUp   Button
	ScrollDown Button
	Select     Button
	Exit       Button

	// Names shown in the controls hint
	ScrollUpName   string
	ScrollDownName string
	SelectName     string
	ExitName       string
}

// Style is how layers and the fallback overlay are colored.
type Style struct {
	FontName string
	FontSize int

	Highlight  color.RGBA
	Foreground color.RGBA
	Background color.RGBA
	Backdrop   color.RGBA

	MarkupForegroundHighlight string
	MarkupForeground          string
	MarkupBackgroundHighlight string
	MarkupBackground          string

	ScrollPrefix string
}

// Env is shared by every session of a plugin instance.
type Env struct {
	Settings            Settings
	Controls            Controls
	Sounds              config.SoundsConfig
	Style               Style
	DefaultPosition     Position
	CloseOnRoundRestart bool
	// RequireCalibration makes a player without a stored position calibrate before the first menu.
	RequireCalibration bool

	Positions  PositionStore
	Calibrator Calibrator
}

// EnvFromConfig builds an Env from cfg. Positions and Calibrator are left for the caller.
func EnvFromConfig(c config.Config) (*Env, error) {
	controls := Controls{
		ScrollUpName:   c.Controls.ScrollUp,
		ScrollDownName: c.Controls.ScrollDown,
		SelectName:     c.Controls.Select,
		ExitName:       c.Controls.Exit,
	}
	for _, b := range []struct {
		name string
		dst  *Button
	}{
		{c.Controls.ScrollUp, &controls.ScrollUp},
		{c.Controls.ScrollDown, &controls.ScrollDown},
		{c.Controls.Select, &controls.Select},
		{c.Controls.Exit, &controls.Exit},
	} {
		btn, ok := ButtonByName(b.name)
		if !ok {
			return nil, fmt.Errorf("unknown control button %q", b.name)
		}
		*b.dst = btn
	}

	return &Env{
		Settings: SettingsFromConfig(c.Settings),
		Controls: controls,
		Sounds:   c.Sounds,
		Style: Style{
			FontName:                  c.Settings.FontName,
			FontSize:                  c.Settings.Size,
			Highlight:                 c.Colors.Highlight,
			Foreground:                c.Colors.Foreground,
			Background:                c.Colors.Background,
			Backdrop:                  c.Colors.Backdrop,
			MarkupForegroundHighlight: c.Colors.MarkupForegroundHighlight,
			MarkupForeground:          c.Colors.MarkupForeground,
			MarkupBackgroundHighlight: c.Colors.MarkupBackgroundHighlight,
			MarkupBackground:          c.Colors.MarkupBackground,
			ScrollPrefix:              c.Settings.ScrollPrefix,
		},
		DefaultPosition:     Position{X: c.Settings.PositionX, Y: c.Settings.PositionY},
		CloseOnRoundRestart: c.Settings.CloseOnRoundRestart,
		RequireCalibration:  len(c.Settings.Resolutions) > 0,
	}, nil
}

// DefaultEnv is EnvFromConfig(config.Default()); the default controls always resolve.
func DefaultEnv() *Env {
	env, err := EnvFromConfig(config.Default())
	if err != nil {
		panic(err)
	}
	return env
}

// NewMenu creates a menu seeded with this environment's settings.
func (e *Env) NewMenu(title string) *Menu {
	return NewWithSettings(title, e.Settings)
}
