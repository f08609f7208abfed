package emotion

import (
	"sort"
	"sync"
)

// keyedMutex serializes writers per character. The store gives no
// read-modify-write protection, so every path that computes an absolute
// vector from a stored one must hold the character's lock. Mutexes are kept
// for the process lifetime; the set is bounded by the character population.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	return lock
}

func (k *keyedMutex) Lock(key string) {
	k.get(key).Lock()
}

func (k *keyedMutex) Unlock(key string) {
	k.get(key).Unlock()
}

// LockAll acquires the locks for a set of keys in sorted order so two bulk
// chunks touching overlapping characters cannot deadlock. It returns the
// matching unlock function.
func (k *keyedMutex) LockAll(keys []string) func() {
	ordered := append([]string(nil), keys...)
	sort.Strings(ordered)
	for _, key := range ordered {
		k.Lock(key)
	}
	return func() {
		for i := len(ordered) - 1; i >= 0; i-- {
			k.Unlock(ordered[i])
		}
	}
}
