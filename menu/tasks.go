package menu

// task is work deferred to a later tick. It only runs if its menu is still
// the session's active menu at the same generation.
type task struct {
	menu *Menu
	gen  uint64
	due  uint64
	run  func()
}

type taskQueue struct {
	pending []task
	// now is the number of the tick being run, or of the last one finished.
	now    uint64
	inTick bool
}

// push schedules fn for the next tick. Work queued between ticks (a digit
// command) waits one extra tick so the current state gets drawn first.
func (q *taskQueue) push(t task) {
	t.due = q.now + 1
	if !q.inTick {
		t.due++
	}
	q.pending = append(q.pending, t)
}

func (q *taskQueue) begin() {
	q.now++
	q.inTick = true
}

func (q *taskQueue) end() {
	q.inTick = false
}

// drain runs the tasks due by now. Tasks queued while draining wait for a later tick.
func (q *taskQueue) drain(s *Session) {
	if len(q.pending) == 0 {
		return
	}
	batch := q.pending
	q.pending = nil
	for _, t := range batch {
		if t.due > q.now {
			q.pending = append(q.pending, t)
			continue
		}
		if s.ended || s.active != t.menu || t.menu.gen != t.gen || t.menu.state == StateClosed {
			continue
		}
		t.run()
	}
}

func (q *taskQueue) reset() {
	q.pending = nil
}
