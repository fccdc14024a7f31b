package indicnorm

import "sync"

// memo is a compute-if-absent cache. Every value is built at most once, by
// the first caller asking for its key; concurrent callers for the same key
// wait for that build. Values must not be mutated afterwards.
type memo[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]func() V
}

func (m *memo[K, V]) get(key K, build func(K) V) V {
	m.mu.Lock()
	if m.entries == nil {
		m.entries = make(map[K]func() V)
	}
	entry, ok := m.entries[key]
	if !ok {
		entry = sync.OnceValue(func() V { return build(key) })
		m.entries[key] = entry
	}
	m.mu.Unlock()
	return entry()
}

// len returns the number of keys requested so far.
func (m *memo[K, V]) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
