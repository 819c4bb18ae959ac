package core

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/screenmenu/shared/netcomponents"
)

// roundTimer ends a round every length ticks. A zero length disables rounds.
type roundTimer struct {
	length  int
	elapsed int
	round   int
}

func newRoundTimer(seconds, tickRate int) *roundTimer {
	return &roundTimer{length: seconds * tickRate, round: 1}
}

// tick advances one tick and reports whether the round just ended.
func (r *roundTimer) tick() bool {
	if r.length <= 0 {
		return false
	}
	r.elapsed++
	if r.elapsed < r.length {
		return false
	}
	r.elapsed = 0
	r.round++
	return true
}

var textQuery = donburi.NewQuery(filter.Contains(netcomponents.NetText))

// wipeTexts removes every text entity in the world, the way a map restart
// drops all world text. Owners find out through IsSurfaceValid.
func wipeTexts(world donburi.World) int {
	var doomed []donburi.Entity
	textQuery.Each(world, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	for _, e := range doomed {
		world.Remove(e)
	}
	return len(doomed)
}
