package netcomponents

import "github.com/yohamta/donburi"

// NetHUDData is the per-player screen state that is not a text surface.
type NetHUDData struct {
	Owner   string
	Overlay string // fallback markup, empty when hidden
	Cue     string
	CueSeq  uint32 // bumped on every cue so repeats are noticed
	Frozen  bool
	Round   int
}

var NetHUD = donburi.NewComponentType[NetHUDData]()
