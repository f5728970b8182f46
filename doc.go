// Package mapvec serializes an ordered sequence of key-value pairs with the
// wire representation of an associative map, and reads it back without
// losing the order of entries.
//
// The package is format agnostic: [Encode], [Decode] and [DecodeOptional]
// talk to a format through the [MapSink], [MapSource] and [OptionSource]
// contracts. Bindings for concrete formats live in the format subpackages:
//
//   - [github.com/tarantool/go-mapvec/format/jsonfmt]
//   - [github.com/tarantool/go-mapvec/format/yamlfmt]
//   - [github.com/tarantool/go-mapvec/format/msgpackfmt]
//   - [github.com/tarantool/go-mapvec/format/cborfmt]
//
// Duplicate keys are never checked on encoding; what the output looks like
// then is up to the format. Decoding enumerates whatever entries the format
// exposes, repeated keys included.
package mapvec
