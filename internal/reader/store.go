package reader

import (
	"context"
	"sync"
	"time"
)

// Backend persists encoded panel state. Get returns nil data and no error
// when the id is unknown or expired.
type Backend interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Set(ctx context.Context, id string, state []byte) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	state   []byte
	expires time.Time
}

// MemoryBackend keeps sessions in process. Entries idle for longer than
// ttl are dropped by a background sweep until Close is called.
type MemoryBackend struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration

	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewMemoryBackend(ttl, sweepEvery time.Duration) *MemoryBackend {
	m := &MemoryBackend{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanup(sweepEvery)

	return m
}

func (m *MemoryBackend) Get(_ context.Context, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.sessions[id]
	if !ok || time.Now().After(e.expires) {
		return nil, nil
	}
	return append([]byte(nil), e.state...), nil
}

func (m *MemoryBackend) Set(_ context.Context, id string, state []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[id] = memoryEntry{
		state:   append([]byte(nil), state...),
		expires: time.Now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the sweep goroutine. It is safe to call more than once.
func (m *MemoryBackend) Close() error {
	m.once.Do(func() { close(m.done) })
	m.wg.Wait()
	return nil
}

func (m *MemoryBackend) cleanup(every time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep(time.Now())
		}
	}
}

func (m *MemoryBackend) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, e := range m.sessions {
		if now.After(e.expires) {
			delete(m.sessions, id)
		}
	}
}
