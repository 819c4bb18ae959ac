package menu

import "github.com/automoto/screenmenu/pkg/logging"

func (s *Session) needsCalibration() bool {
	return s.env.RequireCalibration && s.env.Calibrator != nil && !s.hasStored
}

// beginCalibration runs the one-time flow before m is shown.
func (s *Session) beginCalibration(m *Menu) {
	s.runCalibration(m)
}

// startCalibration runs the flow on top of an open menu, which keeps
// drawing and follows every position change.
func (s *Session) startCalibration(m *Menu) {
	if s.calib != nil {
		return
	}
	s.runCalibration(m)
}

func (s *Session) runCalibration(m *Menu) {
	if s.env.Calibrator == nil {
		if m.state == StateAwaitingCalibration {
			s.activateNow(m)
		}
		return
	}

	gen := m.gen
	s.calibMenu = m
	flow := s.env.Calibrator.Begin(CalibrationRequest{
		Player:    s.id,
		Host:      s.host,
		Localizer: s.loc,
		From:      s.position,
		OnMove: func(p Position) {
			if s.calibMenu != m {
				return
			}
			s.position = p
			s.renderer.forceRefresh()
		},
		Done: func(p Position, saved bool) {
			s.tasks.push(task{menu: m, gen: gen, run: func() {
				s.finishCalibration(m, p, saved)
			}})
		},
	})
	s.calib = flow
	s.applyFreeze()
}

func (s *Session) finishCalibration(m *Menu, p Position, saved bool) {
	s.calib = nil
	s.calibMenu = nil
	s.position = p

	if saved {
		s.hasStored = true
		if s.env.Positions != nil {
			if err := s.env.Positions.SetPosition(s.id, p); err != nil {
				logging.Warn("menu", "could not store position for %s: %v", s.id, err)
			}
		}
	}

	if m.state == StateAwaitingCalibration {
		s.activateNow(m)
		return
	}
	s.applyFreeze()
	s.renderer.forceRefresh()
}
