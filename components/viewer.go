package components

import "github.com/yohamta/donburi"

// ViewerData is the local client state that is not mirrored from the server.
type ViewerData struct {
	PlayerID string
	View     int // last view mode sent
	CueSeq   uint32
	Status   string
}

var Viewer = donburi.NewComponentType[ViewerData]()
