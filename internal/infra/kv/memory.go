package kv

import (
	"context"
	"sync"
	"time"
)

// Memory is a process-local Store used when no Redis is configured.
type Memory struct {
	mu    sync.Mutex
	items map[string]entry
	now   func() time.Time
}

type entry struct {
	value   string
	expires time.Time
}

func NewMemory() *Memory {
	return &Memory{
		items: make(map[string]entry),
		now:   time.Now,
	}
}

func (m *Memory) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if e, ok := m.items[key]; ok && now.Before(e.expires) {
		return false, nil
	}
	m.items[key] = entry{value: value, expires: now.Add(ttl)}
	m.sweep(now)
	return true, nil
}

func (m *Memory) Del(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) DelIfValue(_ context.Context, key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok || e.value != value || !m.now().Before(e.expires) {
		return false, nil
	}
	delete(m.items, key)
	return true, nil
}

func (m *Memory) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		return false, nil
	}
	if !m.now().Before(e.expires) {
		delete(m.items, key)
		return false, nil
	}
	return true, nil
}

// sweep drops expired keys; caller holds mu.
func (m *Memory) sweep(now time.Time) {
	for k, e := range m.items {
		if !now.Before(e.expires) {
			delete(m.items, k)
		}
	}
}

var _ Store = (*Memory)(nil)
