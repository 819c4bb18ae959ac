package config

import "sort"

// Resolution is a named position preset offered during calibration.
type Resolution struct {
	PositionX float64 `yaml:"position_x"`
	PositionY float64 `yaml:"position_y"`
}

// SettingsConfig holds the defaults every new menu starts from.
type SettingsConfig struct {
	FontName              string                `yaml:"font_name"`
	MenuType              string                `yaml:"menu_type"` // KeyPress, Scrollable or Both
	Size                  int                   `yaml:"size"`
	PositionX             float64               `yaml:"position_x"`
	PositionY             float64               `yaml:"position_y"`
	HasExitOption         bool                  `yaml:"has_exit_option"`
	ShowResolutionOption  bool                  `yaml:"show_resolution_option"`
	ShowDisabledOptionNum bool                  `yaml:"show_disabled_option_num"`
	ShowPageCount         bool                  `yaml:"show_page_count"`
	FreezePlayer          bool                  `yaml:"freeze_player"`
	ShowControlsInfo      bool                  `yaml:"show_controls_info"`
	CloseOnRoundRestart   bool                  `yaml:"close_on_round_restart"`
	ScrollPrefix          string                `yaml:"scroll_prefix"`
	Resolutions           map[string]Resolution `yaml:"resolutions"`
}

// ResolutionNames returns the preset names in a stable order.
func (s SettingsConfig) ResolutionNames() []string {
	names := make([]string, 0, len(s.Resolutions))
	for name := range s.Resolutions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
