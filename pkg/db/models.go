package db

import (
	"context"
	"sync"
)

// Key names a persisted record.
type Key string

// These constants refer to the records persisted by the app.
const (
	KeyTasks            Key = "tasks"
	KeyDailyTemplates   Key = "daily_templates"
	KeyDailySeedDate    Key = "daily_seed_date"
	KeyPomodoroSettings Key = "pomodoro_settings"
)

// Memory is an in-process Store, used by tests and when no db file is wanted.
type Memory struct {
	mu     sync.RWMutex
	values map[Key][]byte
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: map[Key][]byte{}}
}

// Get returns a copy of the stored value.
func (m *Memory) Get(_ context.Context, key Key) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}

	return append([]byte(nil), value...), true, nil
}

// Set stores a copy of value.
func (m *Memory) Set(_ context.Context, key Key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)

	return nil
}
