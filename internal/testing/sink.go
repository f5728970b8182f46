// Package testing provides scripted implementations of the mapvec
// sink and source contracts for use in tests.
package testing

import (
	"fmt"

	"github.com/tarantool/go-mapvec/kv"
)

// MockSink is an implementation of the MapSink interface
// used for testing purposes. It records every call it receives.
type MockSink[K, V any] struct {
	// Calls is the sequence of received calls, e.g. "begin(2)", "entry(a)", "end".
	Calls []string
	// Length is the count passed to BeginMap.
	Length int
	// Entries are the entries passed to WriteEntry, in order.
	Entries kv.Pairs[K, V]
	// Ended reports whether EndMap was called.
	Ended bool

	entryErr   error
	entryErrAt int
}

// NewMockSink creates a MockSink that accepts everything.
func NewMockSink[K, V any]() *MockSink[K, V] {
	return &MockSink[K, V]{
		Calls:      []string{},
		Length:     0,
		Entries:    kv.Pairs[K, V]{},
		Ended:      false,
		entryErr:   nil,
		entryErrAt: -1,
	}
}

// FailEntry makes WriteEntry return err for the entry with the given index.
func (s *MockSink[K, V]) FailEntry(index int, err error) *MockSink[K, V] {
	s.entryErrAt = index
	s.entryErr = err

	return s
}

// BeginMap records the declared length.
func (s *MockSink[K, V]) BeginMap(n int) error {
	s.Calls = append(s.Calls, fmt.Sprintf("begin(%d)", n))
	s.Length = n

	return nil
}

// WriteEntry records the entry.
func (s *MockSink[K, V]) WriteEntry(key K, value V) error {
	s.Calls = append(s.Calls, fmt.Sprintf("entry(%v)", key))
	if s.entryErr != nil && len(s.Entries) == s.entryErrAt {
		return s.entryErr
	}

	s.Entries = append(s.Entries, kv.Of(key, value))

	return nil
}

// EndMap records the end of the map.
func (s *MockSink[K, V]) EndMap() error {
	s.Calls = append(s.Calls, "end")
	s.Ended = true

	return nil
}
