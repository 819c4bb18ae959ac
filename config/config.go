package config

import "image/color"

// Config is the full plugin configuration as it appears on disk.
type Config struct {
	Settings    SettingsConfig               `yaml:"settings"`
	Controls    ControlsConfig               `yaml:"controls"`
	Sounds      SoundsConfig                 `yaml:"sounds"`
	Colors      ColorsConfig                 `yaml:"colors"`
	Calibration CalibrationConfig            `yaml:"calibration"`
	Storage     StorageConfig                `yaml:"storage"`
	Server      ServerConfig                 `yaml:"server"`
	Lang        map[string]map[string]string `yaml:"lang"`
}

// ControlsConfig names the host buttons used while a scrollable menu is open.
type ControlsConfig struct {
	ScrollUp   string `yaml:"scroll_up"`
	ScrollDown string `yaml:"scroll_down"`
	Select     string `yaml:"select"`
	Exit       string `yaml:"exit"`

	// Calibration only
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Cancel string `yaml:"cancel"`
}

// SoundsConfig maps menu actions to cue names played on the host.
type SoundsConfig struct {
	Select     string  `yaml:"select"`
	Next       string  `yaml:"next"`
	Prev       string  `yaml:"prev"`
	Close      string  `yaml:"close"`
	ScrollUp   string  `yaml:"scroll_up"`
	ScrollDown string  `yaml:"scroll_down"`
	Volume     float64 `yaml:"volume"`
}

// ColorsConfig holds the layered surface colors and the fallback markup palette.
type ColorsConfig struct {
	Highlight  color.RGBA `yaml:"highlight"`
	Foreground color.RGBA `yaml:"foreground"`
	Background color.RGBA `yaml:"background"`
	Backdrop   color.RGBA `yaml:"backdrop"`

	// Hex colors used by the single-block overlay
	MarkupForegroundHighlight string `yaml:"markup_foreground_highlight"`
	MarkupForeground          string `yaml:"markup_foreground"`
	MarkupBackgroundHighlight string `yaml:"markup_background_highlight"`
	MarkupBackground          string `yaml:"markup_background"`
}

// CalibrationConfig tunes the position adjustment flow.
type CalibrationConfig struct {
	Step           float64 `yaml:"step"`
	HoldDelay      float64 `yaml:"hold_delay"`      // seconds before a held button repeats
	RepeatInterval float64 `yaml:"repeat_interval"` // seconds between repeats
}

// StorageConfig selects where per-player positions are kept.
type StorageConfig struct {
	AppName string `yaml:"app_name"`
	Memory  bool   `yaml:"memory"`
}

// ServerConfig is read by the reference host only.
type ServerConfig struct {
	Port         uint   `yaml:"port"`
	TickRate     int    `yaml:"tick_rate"`
	RoundSeconds int    `yaml:"round_seconds"`
	MaxEntities  int    `yaml:"max_entities"`
	LogLevel     string `yaml:"log_level"`
}

// C is the active configuration. Load replaces it.
var C Config

func init() {
	C = Default()
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Settings: SettingsConfig{
			FontName:              "Tahoma Bold",
			MenuType:              "KeyPress",
			Size:                  25,
			PositionX:             0,
			PositionY:             0,
			HasExitOption:         true,
			ShowResolutionOption:  true,
			ShowDisabledOptionNum: true,
			ShowPageCount:         true,
			FreezePlayer:          true,
			ShowControlsInfo:      true,
			CloseOnRoundRestart:   true,
			ScrollPrefix:          "‣",
			Resolutions: map[string]Resolution{
				"1920x1080": {PositionX: -9.0, PositionY: 0.0},
				"1440x1080": {PositionX: -7.0, PositionY: 0.0},
			},
		},
		Controls: ControlsConfig{
			ScrollUp:   "W",
			ScrollDown: "S",
			Select:     "E",
			Exit:       "Tab",
			Left:       "A",
			Right:      "D",
			Cancel:     "R",
		},
		Sounds: SoundsConfig{
			Select:     "menu.Select",
			Next:       "menu.Select",
			Prev:       "menu.Close",
			Close:      "menu.Close",
			ScrollUp:   "menu.ScrollUp",
			ScrollDown: "menu.ScrollDown",
			Volume:     1.0,
		},
		Colors: ColorsConfig{
			Highlight:                 color.RGBA{R: 255, G: 255, B: 64, A: 127},
			Foreground:                color.RGBA{R: 230, G: 153, B: 39, A: 255},
			Background:                color.RGBA{R: 234, G: 209, B: 175, A: 255},
			Backdrop:                  color.RGBA{R: 127, G: 127, B: 127, A: 125},
			MarkupForegroundHighlight: "#EFCE21",
			MarkupForeground:          "#E28B12",
			MarkupBackgroundHighlight: "#EFE472",
			MarkupBackground:          "#E7CCA5",
		},
		Calibration: CalibrationConfig{
			Step:           0.02,
			HoldDelay:      0.3,
			RepeatInterval: 0.05,
		},
		Storage: StorageConfig{
			AppName: "screenmenu",
		},
		Server: ServerConfig{
			Port:         7373,
			TickRate:     64,
			RoundSeconds: 115,
			MaxEntities:  2048,
			LogLevel:     "info",
		},
		Lang: map[string]map[string]string{
			"en": {
				"Prev":       "Prev",
				"Back":       "Back",
				"Next":       "Next",
				"Close":      "Close",
				"ScrollKeys": "[{0}/{1}] Scroll",
				"SelectKey":  "[{0}] Select",
				"ExitKey":    "[{0}] Exit",
				"SelectRes":  "Select Your Game Resolution",
				"ChangeRes":  "Change Resolution",
				"ResHint":    "[{0}/{1}] Move  [{2}/{3}] Preset  [{4}] Save  [{5}] Cancel",
				"ResValue":   "X: {0}  Y: {1}",
			},
		},
	}
}
