package editor

import "fmt"

// IDAllocator issues unique, human-readable node identifiers per type.
// Counters only ever increase, so an id is never reused within a
// session even after the node carrying it is deleted.
type IDAllocator struct {
	counters map[string]int
}

// NewIDAllocator returns an allocator with all counters at zero.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{counters: make(map[string]int)}
}

// NextID increments the counter for typeTag and returns "{type}-{n}".
// The first id for a type is "{type}-1".
func (a *IDAllocator) NextID(typeTag string) string {
	a.counters[typeTag]++
	return fmt.Sprintf("%s-%d", typeTag, a.counters[typeTag])
}
