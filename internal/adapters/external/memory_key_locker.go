package external

import (
	"context"
	"fmt"
	"sync"
)

// MemoryKeyLocker serializes callers holding the same key within one process.
// Entries are reference counted and dropped once no caller holds or waits on them.
type MemoryKeyLocker struct {
	mu      sync.Mutex
	entries map[string]*keyLockEntry
}

type keyLockEntry struct {
	sem  chan struct{}
	refs int
}

func NewMemoryKeyLocker() *MemoryKeyLocker {
	return &MemoryKeyLocker{entries: make(map[string]*keyLockEntry)}
}

func (l *MemoryKeyLocker) Lock(ctx context.Context, key string) (func(), error) {
	entry := l.acquireEntry(key)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.releaseEntry(key, entry)
		return nil, fmt.Errorf("acquire lock %q: %w", key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			l.releaseEntry(key, entry)
		})
	}, nil
}

func (l *MemoryKeyLocker) acquireEntry(key string) *keyLockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		entry = &keyLockEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = entry
	}
	entry.refs++
	return entry
}

func (l *MemoryKeyLocker) releaseEntry(key string, entry *keyLockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}

func (l *MemoryKeyLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
