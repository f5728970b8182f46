package testing

import (
	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/kv"
)

type sourceKind int

const (
	sourceMap sourceKind = iota
	sourceUnit
	sourceNone
	sourceInvalid
	sourceSilent
)

// MockSource is an implementation of the MapSource and OptionSource
// interfaces used for testing purposes. It replays a scripted value.
type MockSource[K, V any] struct {
	// Visited is the name of the last visitor method called by the source.
	Visited string
	// Expecting is what the visitor described itself as.
	Expecting string
	// Reads is the number of Next calls served.
	Reads int

	kind    sourceKind
	got     string
	entries kv.Pairs[K, V]
	hint    int
	hasHint bool
	err     error
	errAt   int
	failErr error
}

func newMockSource[K, V any](kind sourceKind, entries kv.Pairs[K, V]) *MockSource[K, V] {
	return &MockSource[K, V]{
		Visited:   "",
		Expecting: "",
		Reads:     0,
		kind:      kind,
		got:       "",
		entries:   entries,
		hint:      0,
		hasHint:   false,
		err:       nil,
		errAt:     -1,
		failErr:   nil,
	}
}

// NewMapSource creates a source holding a map with the given entries.
func NewMapSource[K, V any](entries ...kv.Pair[K, V]) *MockSource[K, V] {
	return newMockSource(sourceMap, kv.Pairs[K, V](entries))
}

// NewUnitSource creates a source holding a unit value.
func NewUnitSource[K, V any]() *MockSource[K, V] {
	return newMockSource[K, V](sourceUnit, nil)
}

// NewNoneSource creates a source holding an absent value.
func NewNoneSource[K, V any]() *MockSource[K, V] {
	return newMockSource[K, V](sourceNone, nil)
}

// NewInvalidSource creates a source holding a value of the wrong type described by got.
func NewInvalidSource[K, V any](got string) *MockSource[K, V] {
	source := newMockSource[K, V](sourceInvalid, nil)
	source.got = got

	return source
}

// NewSilentSource creates a source that returns without visiting anything.
func NewSilentSource[K, V any]() *MockSource[K, V] {
	return newMockSource[K, V](sourceSilent, nil)
}

// WithSizeHint makes the source report n remaining entries.
func (s *MockSource[K, V]) WithSizeHint(n int) *MockSource[K, V] {
	s.hint = n
	s.hasHint = true

	return s
}

// FailAt makes reading the entry with the given index fail with err.
func (s *MockSource[K, V]) FailAt(index int, err error) *MockSource[K, V] {
	s.errAt = index
	s.err = err

	return s
}

// Fail makes the source fail with err before visiting anything.
func (s *MockSource[K, V]) Fail(err error) *MockSource[K, V] {
	s.failErr = err
	return s
}

// DecodeMap replays the scripted value into visitor.
func (s *MockSource[K, V]) DecodeMap(visitor mapvec.MapVisitor[K, V]) error {
	s.Expecting = visitor.Expecting()
	if s.failErr != nil {
		return s.failErr
	}

	switch s.kind {
	case sourceUnit, sourceNone:
		s.Visited = "unit"
		return visitor.VisitUnit()
	case sourceInvalid:
		return mapvec.NewInvalidTypeError(s.got, visitor)
	case sourceSilent:
		return nil
	case sourceMap:
	}

	s.Visited = "map"

	return visitor.VisitMap(&mockEntries[K, V]{source: s, index: 0})
}

// DecodeOption replays the scripted value into visitor.
func (s *MockSource[K, V]) DecodeOption(visitor mapvec.OptionVisitor[K, V]) error {
	s.Expecting = visitor.Expecting()
	if s.failErr != nil {
		return s.failErr
	}

	switch s.kind {
	case sourceNone:
		s.Visited = "none"
		return visitor.VisitNone()
	case sourceInvalid:
		return mapvec.NewInvalidTypeError(s.got, visitor)
	case sourceSilent:
		return nil
	case sourceMap, sourceUnit:
	}

	return visitor.VisitSome(s)
}

type mockEntries[K, V any] struct {
	source *MockSource[K, V]
	index  int
}

func (e *mockEntries[K, V]) SizeHint() (int, bool) {
	if !e.source.hasHint {
		return 0, false
	}

	return e.source.hint, true
}

func (e *mockEntries[K, V]) Next() (K, V, bool, error) {
	var (
		key   K
		value V
	)

	if e.index == e.source.errAt {
		return key, value, false, e.source.err
	}

	if e.index >= len(e.source.entries) {
		return key, value, false, nil
	}

	pair := e.source.entries[e.index]
	e.index++
	e.source.Reads++

	return pair.Key, pair.Value, true, nil
}
