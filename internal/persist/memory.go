package persist

import (
	"context"
	"sync"
)

// Memory keeps the snapshot in process memory.  It backs tests and can
// serve as an explicit "no durability" mode.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

// NewMemory returns an empty in-memory driver.
func NewMemory() *Memory { return &Memory{} }

// Load returns the last saved snapshot, or ErrNoData before the first
// save.
func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoData
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Save retains a copy of the snapshot.
func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}
