// Package kv provides the ordered key-value sequence used throughout the module.
// A Pairs value keeps its entries in insertion order and never deduplicates keys.
package kv

import (
	"iter"
)

// Pair is a single key-value entry.
type Pair[K, V any] struct {
	// Key is the entry key.
	Key K
	// Value is the entry value.
	Value V
}

// Of creates a new pair from the given key and value.
func Of[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Pairs is an ordered sequence of key-value entries.
// Keys are not required to be unique and the order is meaningful.
type Pairs[K, V any] []Pair[K, V]

// Len returns the number of entries.
func (p Pairs[K, V]) Len() int {
	return len(p)
}

// All iterates over the entries in order, duplicates included.
func (p Pairs[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, pair := range p {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (p Pairs[K, V]) Keys() []K {
	keys := make([]K, 0, len(p))
	for _, pair := range p {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Values returns the values in order.
func (p Pairs[K, V]) Values() []V {
	values := make([]V, 0, len(p))
	for _, pair := range p {
		values = append(values, pair.Value)
	}

	return values
}
