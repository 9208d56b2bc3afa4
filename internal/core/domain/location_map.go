package domain

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// LocationMap maps GAV keys to filesystem locations, preserving insertion order
// so that anything derived from it is reproducible.
type LocationMap struct {
	m *orderedmap.OrderedMap[GAV, string]
}

// NewLocationMap creates an empty LocationMap.
func NewLocationMap() *LocationMap {
	return &LocationMap{m: orderedmap.New[GAV, string]()}
}

// Get returns the location stored for the key of gav.
func (l *LocationMap) Get(gav GAV) (string, bool) {
	return l.m.Get(gav.Key())
}

// Put stores a location under the key of gav, keeping the original insertion position.
func (l *LocationMap) Put(gav GAV, location string) {
	l.m.Set(gav.Key(), location)
}

// Len returns the number of entries.
func (l *LocationMap) Len() int {
	return l.m.Len()
}

// All yields entries in insertion order.
func (l *LocationMap) All() iter.Seq2[GAV, string] {
	return func(yield func(GAV, string) bool) {
		for pair := l.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys yields the keys in insertion order.
func (l *LocationMap) Keys() iter.Seq[GAV] {
	return func(yield func(GAV) bool) {
		for k := range l.All() {
			if !yield(k) {
				return
			}
		}
	}
}
