package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/screenmenu/components"
	"github.com/automoto/screenmenu/shared/netcomponents"
)

var textQuery = donburi.NewQuery(filter.Contains(netcomponents.NetText))

// UpdateSlide eases the panel toward the position of the mirrored text.
// All layers of a menu share one position, so any of them will do.
func UpdateSlide(e *ecs.ECS) {
	entry, ok := components.Slide.First(e.World)
	if !ok {
		return
	}
	slide := components.Slide.Get(entry)

	text, ok := textQuery.First(e.World)
	if !ok {
		if !slide.Sliding() {
			// Keep the last X through the blank tick of a rebuild so the next move still animates.
			return
		}
	} else {
		d := netcomponents.NetText.Get(text)
		slide.Retarget(float32(d.X), float32(d.Y))
	}
	slide.Step(1 / float32(ebiten.TPS()))
}
