package tags

import "github.com/yohamta/donburi"

var (
	// Viewer marks the single local state entity of the viewer.
	Viewer = donburi.NewTag().SetName("Viewer")
)
