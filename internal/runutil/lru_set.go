// internal/runutil/lru_set.go
package runutil

import "container/list"

// DefaultLRUCap is the capacity NewLRUSet uses for a non-positive argument.
const DefaultLRUCap = 200_000

// LRUSet is a size-bounded set with O(1) hit/insert and least-recently-seen
// eviction. Add returns true if the key was already present. Not safe for
// concurrent use.
type LRUSet[K comparable] struct {
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity <= 0 {
		capacity = DefaultLRUCap
	}
	return &LRUSet[K]{cap: capacity, ll: list.New(), m: make(map[K]*list.Element, min(capacity, 1<<12))}
}

// Add inserts k; returns true if it was already present.
func (s *LRUSet[K]) Add(k K) bool {
	if e, ok := s.m[k]; ok {
		s.ll.MoveToFront(e)
		return true
	}
	s.m[k] = s.ll.PushFront(k)
	if s.ll.Len() > s.cap {
		if tail := s.ll.Back(); tail != nil {
			s.ll.Remove(tail)
			delete(s.m, tail.Value.(K))
		}
	}
	return false
}

// Len is the number of keys currently held.
func (s *LRUSet[K]) Len() int { return s.ll.Len() }
