package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a Memory cache built with a non-positive cap.
const DefaultMaxEntries = 10_000

type memEntry struct {
	key     string
	val     []byte
	expires time.Time // zero means no expiry
}

// Memory is an in-process Cache holding at most max entries. Entries are kept
// in write order, which is also expiry order since every entry gets the same
// ttl: Set drops expired entries from the front and then evicts the oldest
// until the cap holds.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	order   *list.List // of *memEntry, oldest write first
	entries map[string]*list.Element
	now     func() time.Time
}

// NewMemory returns an empty Memory cache. A zero ttl keeps entries until
// they are evicted; maxEntries <= 0 selects DefaultMaxEntries.
func NewMemory(ttl time.Duration, maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Memory{
		ttl:     ttl,
		max:     maxEntries,
		order:   list.New(),
		entries: make(map[string]*list.Element),
		now:     time.Now,
	}
}

// Get implements Cache.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	e := el.Value.(*memEntry)
	if m.expired(e) {
		m.remove(el)
		return nil, false, nil
	}
	return append([]byte(nil), e.val...), true, nil
}

// Set implements Cache.
func (m *Memory) Set(_ context.Context, key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &memEntry{key: key, val: append([]byte(nil), val...)}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	if el, ok := m.entries[key]; ok {
		el.Value = e
		m.order.MoveToBack(el)
	} else {
		m.entries[key] = m.order.PushBack(e)
	}

	for front := m.order.Front(); front != nil && m.expired(front.Value.(*memEntry)); front = m.order.Front() {
		m.remove(front)
	}
	for m.order.Len() > m.max {
		m.remove(m.order.Front())
	}
	return nil
}

func (m *Memory) expired(e *memEntry) bool {
	return !e.expires.IsZero() && !m.now().Before(e.expires)
}

func (m *Memory) remove(el *list.Element) {
	delete(m.entries, el.Value.(*memEntry).key)
	m.order.Remove(el)
}

// Len returns the number of stored entries. Expired entries not yet swept
// are included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Close implements Cache.
func (m *Memory) Close() error { return nil }
