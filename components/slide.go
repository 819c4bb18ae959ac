package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SlideDuration is how long the panel takes to follow a position change, in seconds.
const SlideDuration = 0.15

// SlideData eases the drawn panel offset toward the position the server last sent.
type SlideData struct {
	X, Y   float32 // drawn offset
	Target float32
	Placed bool
	tween  *gween.Tween
}

// Retarget starts a slide from the current X to x. The first call only places the panel.
func (s *SlideData) Retarget(x, y float32) {
	s.Y = y
	if !s.Placed {
		s.X, s.Target, s.Placed = x, x, true
		return
	}
	if x == s.Target {
		return
	}
	s.Target = x
	s.tween = gween.New(s.X, x, SlideDuration, ease.OutQuad)
}

// Step advances the slide by dt seconds.
func (s *SlideData) Step(dt float32) {
	if s.tween == nil {
		return
	}
	x, done := s.tween.Update(dt)
	s.X = x
	if done {
		s.X = s.Target
		s.tween = nil
	}
}

// Sliding reports whether a slide is in progress.
func (s *SlideData) Sliding() bool { return s.tween != nil }

// Reset forgets the panel so the next Retarget places it without animating.
func (s *SlideData) Reset() {
	*s = SlideData{}
}

var Slide = donburi.NewComponentType[SlideData]()
