package calibration

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"

	"github.com/automoto/screenmenu/config"
	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/pkg/logging"
)

const positionsKey = "positions"

// itemStore is the part of gdata.Manager the store uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// GDataStore keeps every player's position in one gdata item, cached in memory.
type GDataStore struct {
	mu        sync.Mutex
	items     itemStore
	positions map[string]menu.Position
}

var _ menu.PositionStore = (*GDataStore)(nil)

// OpenGData opens the per-user data directory for appName and loads the saved positions.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", appName, err)
	}
	return newGDataStore(m)
}

func newGDataStore(items itemStore) (*GDataStore, error) {
	s := &GDataStore{items: items, positions: make(map[string]menu.Position)}

	data, err := items.LoadItem(positionsKey)
	if err != nil {
		return nil, fmt.Errorf("load positions: %w", err)
	}
	if data == nil {
		// Nothing saved yet
		return s, nil
	}
	if err := json.Unmarshal(data, &s.positions); err != nil {
		return nil, fmt.Errorf("parse positions: %w", err)
	}
	logging.Debug("calibration", "loaded %d stored positions", len(s.positions))
	return s, nil
}

func (s *GDataStore) Position(player string) (menu.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.positions[player]
	return p, ok
}

// SetPosition updates the cache and writes the whole table back.
func (s *GDataStore) SetPosition(player string, p menu.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[player] = p

	data, err := json.Marshal(s.positions)
	if err != nil {
		return fmt.Errorf("serialize positions: %w", err)
	}
	if err := s.items.SaveItem(positionsKey, data); err != nil {
		return fmt.Errorf("save positions: %w", err)
	}
	return nil
}

// MemoryStore keeps positions for the lifetime of the process.
type MemoryStore struct {
	mu        sync.Mutex
	positions map[string]menu.Position
}

var _ menu.PositionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{positions: make(map[string]menu.Position)}
}

func (s *MemoryStore) Position(player string) (menu.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.positions[player]
	return p, ok
}

func (s *MemoryStore) SetPosition(player string, p menu.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[player] = p
	return nil
}

// OpenStore picks the store selected by cfg. A gdata failure falls back to
// memory so the server still runs without persistence.
func OpenStore(cfg config.StorageConfig) menu.PositionStore {
	if cfg.Memory {
		return NewMemoryStore()
	}
	s, err := OpenGData(cfg.AppName)
	if err != nil {
		logging.Warn("calibration", "positions will not persist: %v", err)
		return NewMemoryStore()
	}
	return s
}
