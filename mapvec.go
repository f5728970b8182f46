package mapvec

// MapSink receives the entries of a single map, in order.
type MapSink[K, V any] interface {
	// BeginMap starts a map with n entries; a negative n means the count is unknown.
	BeginMap(n int) error
	// WriteEntry writes one key-value entry.
	WriteEntry(key K, value V) error
	// EndMap finalizes the map.
	EndMap() error
}

// EntryReader yields the entries of a map one at a time.
type EntryReader[K, V any] interface {
	// SizeHint returns the number of remaining entries, if the format knows it.
	// The value is a hint and may be arbitrarily large for malformed input.
	SizeHint() (int, bool)
	// Next returns the next entry. ok is false once the entries are exhausted.
	Next() (key K, value V, ok bool, err error)
}

// MapVisitor is called back by a MapSource depending on what the source finds.
type MapVisitor[K, V any] interface {
	// Expecting describes what the visitor accepts, for error messages.
	Expecting() string
	// VisitUnit handles a unit (null) value, which stands for a map without entries.
	VisitUnit() error
	// VisitMap handles a map.
	VisitMap(entries EntryReader[K, V]) error
}

// MapSource is a format positioned at a value expected to be a map.
// DecodeMap must call exactly one of the visitor methods VisitUnit or VisitMap,
// or return an error.
type MapSource[K, V any] interface {
	DecodeMap(visitor MapVisitor[K, V]) error
}

// OptionVisitor is called back by an OptionSource once presence is known.
type OptionVisitor[K, V any] interface {
	// Expecting describes what the visitor accepts, for error messages.
	Expecting() string
	// VisitNone handles an absent value.
	VisitNone() error
	// VisitSome handles a present value positioned at source.
	VisitSome(source MapSource[K, V]) error
}

// OptionSource is a format positioned at a value that may be absent.
type OptionSource[K, V any] interface {
	DecodeOption(visitor OptionVisitor[K, V]) error
}
