package cache

import "github.com/polyds/collections/container/list"

// LRU is an Interface implementation which caches elements and tracks least
// recently used items as candidates for eviction.
//
// The recency queue is a list.List ordered from most to least recently used,
// and the index stores the iterator positioned on each key's entry. Iterators
// remain valid until their entry is erased, so the index only needs updating
// when an entry moves to the front of the queue.
type LRU[K comparable, V any] struct {
	index map[K]list.Iterator[entry[K, V]]
	queue list.List[entry[K, V]]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

func (lru *LRU[K, V]) Len() int {
	return lru.queue.Len()
}

func (lru *LRU[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if lru.index == nil {
		lru.index = make(map[K]list.Iterator[entry[K, V]])
	}
	if it, ok := lru.index[key]; ok {
		e, _ := it.Value()
		previous, replaced = e.value, true
		lru.queue.Erase(it)
	}
	lru.queue.PushFront(entry[K, V]{key: key, value: value})
	lru.index[key] = lru.queue.Begin()
	return previous, replaced
}

func (lru *LRU[K, V]) Lookup(key K) (value V, found bool) {
	it, ok := lru.index[key]
	if ok {
		e, _ := it.Value()
		lru.queue.Erase(it)
		lru.queue.PushFront(e)
		lru.index[key] = lru.queue.Begin()
		value, found = e.value, true
	}
	return value, found
}

func (lru *LRU[K, V]) Delete(key K) (value V, deleted bool) {
	it, ok := lru.index[key]
	if ok {
		e, _ := it.Value()
		delete(lru.index, key)
		lru.queue.Erase(it)
		value, deleted = e.value, true
	}
	return value, deleted
}

func (lru *LRU[K, V]) Evict() (key K, value V, evicted bool) {
	if lru.queue.Len() > 0 {
		it := lru.queue.End().Prev()
		e, _ := it.Value()
		lru.queue.Erase(it)
		delete(lru.index, e.key)
		key, value, evicted = e.key, e.value, true
	}
	return key, value, evicted
}

// Range presents entries from most to least recently used.
func (lru *LRU[K, V]) Range(f func(K, V) bool) {
	lru.queue.Range(func(e entry[K, V]) bool {
		return f(e.key, e.value)
	})
}
