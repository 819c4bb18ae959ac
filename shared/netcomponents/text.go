package netcomponents

import "github.com/yohamta/donburi"

// NetTextData is one world-space text block. Clients only draw blocks whose
// Owner matches their own player ID.
type NetTextData struct {
	Owner          string
	Layer          int
	Text           string
	Color          [4]uint8 // RGBA
	Depth          float64
	X, Y           float64
	DrawBackground bool
	FontName       string
	FontSize       int
}

var NetText = donburi.NewComponentType[NetTextData]()
