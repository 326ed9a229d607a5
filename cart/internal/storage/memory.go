package storage

import (
	"context"
	"sync"

	commonErrors "github.com/Alturino/salon/internal/errors"
)

// Memory keeps the snapshot in process memory. It backs tests and the
// degraded mode the service falls into when redis is unreachable at boot.
type Memory struct {
	mu    sync.Mutex
	value []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.value == nil {
		return nil, commonErrors.ErrSnapshotMissing
	}
	value := make([]byte, len(m.value))
	copy(value, m.value)
	return value, nil
}

func (m *Memory) Save(_ context.Context, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = make([]byte, len(value))
	copy(m.value, value)
	return nil
}

func (m *Memory) Delete(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = nil
	return nil
}
