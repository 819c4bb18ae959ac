package menu

import "sort"

// Manager keeps one Session per connected player and fans host ticks and
// events out to them. It is not safe for concurrent use.
type Manager struct {
	env      *Env
	sessions map[string]*Session
}

func NewManager(env *Env) *Manager {
	if env == nil {
		env = DefaultEnv()
	}
	return &Manager{env: env, sessions: make(map[string]*Session)}
}

func (m *Manager) Env() *Env { return m.env }

// Attach returns the player's session, creating it on first use.
func (m *Manager) Attach(id string, host Host, opts ...SessionOption) *Session {
	if s, ok := m.sessions[id]; ok && !s.ended {
		return s
	}
	s := NewSession(id, host, m.env, opts...)
	m.sessions[id] = s
	return s
}

// Session looks up an attached player.
func (m *Manager) Session(id string) (*Session, bool) {
	s, ok := m.sessions[id]
	return s, ok
}

// Open shows menu to an attached player. It reports false for unknown players.
func (m *Manager) Open(id string, menu *Menu) bool {
	s, ok := m.sessions[id]
	if !ok {
		return false
	}
	s.Open(menu)
	return true
}

// Detach ends the player's session and forgets it.
func (m *Manager) Detach(id string) {
	if s, ok := m.sessions[id]; ok {
		s.End()
		delete(m.sessions, id)
	}
}

// Tick advances every session in a stable order.
func (m *Manager) Tick() {
	for _, id := range m.ids() {
		m.sessions[id].Tick()
	}
}

// Broadcast delivers a host event to every session.
func (m *Manager) Broadcast(e Event) {
	for _, id := range m.ids() {
		m.sessions[id].HandleEvent(e)
	}
	if e == EventDisconnect {
		clear(m.sessions)
	}
}

// HandleEvent delivers a host event to one player. Disconnect also detaches.
func (m *Manager) HandleEvent(id string, e Event) {
	s, ok := m.sessions[id]
	if !ok {
		return
	}
	s.HandleEvent(e)
	if e == EventDisconnect {
		delete(m.sessions, id)
	}
}

func (m *Manager) Len() int { return len(m.sessions) }

func (m *Manager) ids() []string {
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
