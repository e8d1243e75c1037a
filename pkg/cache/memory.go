package cache

import (
	"context"
	"sync"
	"time"
)

const cleanupPeriod = time.Minute

type entry struct {
	value    []byte
	expireAt time.Time
}

// Memory - кэш в памяти процесса с TTL на каждую запись.
// Устаревшие записи удаляются лениво при чтении и фоновой чисткой
type Memory struct {
	mtx  sync.RWMutex
	data map[string]entry
	done chan struct{}
}

func NewMemory() *Memory {
	m := &Memory{
		data: make(map[string]entry),
		done: make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mtx.RLock()
	e, ok := m.data[key]
	m.mtx.RUnlock()

	if !ok {
		return nil, false
	}

	// Запись устарела - удаляем и отвечаем промахом
	if time.Now().After(e.expireAt) {
		m.mtx.Lock()
		delete(m.data, key)
		m.mtx.Unlock()
		return nil, false
	}

	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.mtx.Lock()
	m.data[key] = entry{
		value:    value,
		expireAt: time.Now().Add(ttl),
	}
	m.mtx.Unlock()
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.mtx.Lock()
	delete(m.data, key)
	m.mtx.Unlock()
}

// Close - останавливает фоновую чистку
func (m *Memory) Close() {
	close(m.done)
}

func (m *Memory) cleanupLoop() {
	ticker := time.NewTicker(cleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			m.mtx.Lock()
			for key, e := range m.data {
				if now.After(e.expireAt) {
					delete(m.data, key)
				}
			}
			m.mtx.Unlock()
		case <-m.done:
			return
		}
	}
}
