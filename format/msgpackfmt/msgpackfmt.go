// Package msgpackfmt binds mapvec to MessagePack maps using
// github.com/vmihailenco/msgpack/v5.
package msgpackfmt

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	mapvec "github.com/tarantool/go-mapvec"
)

const formatName = "msgpack"

// ErrUnknownLength is returned when a map is started without a known length.
// MessagePack maps always carry their length up front.
var ErrUnknownLength = errors.New("map length must be known in advance")

var (
	_ mapvec.MapSink[string, any]      = Sink[string, any]{}
	_ mapvec.MapSource[string, any]    = Source[string, any]{}
	_ mapvec.OptionSource[string, any] = Source[string, any]{}
)

// Sink writes a map to a MessagePack encoder.
type Sink[K, V any] struct {
	encoder *msgpack.Encoder
}

// NewSink creates a sink writing to encoder.
func NewSink[K, V any](encoder *msgpack.Encoder) Sink[K, V] {
	return Sink[K, V]{encoder: encoder}
}

// BeginMap writes the map header.
func (s Sink[K, V]) BeginMap(n int) error {
	if n < 0 {
		return NewEncodingError("map length", ErrUnknownLength)
	}

	return NewEncodingError("map length", s.encoder.EncodeMapLen(n))
}

// WriteEntry writes the key and then the value.
func (s Sink[K, V]) WriteEntry(key K, value V) error {
	err := s.encoder.Encode(key)
	if err != nil {
		return NewEncodingError("map key", err)
	}

	return NewEncodingError("map value", s.encoder.Encode(value))
}

// EndMap does nothing: a MessagePack map has no terminator.
func (s Sink[K, V]) EndMap() error {
	return nil
}

// Source reads a map from a MessagePack decoder.
type Source[K, V any] struct {
	decoder *msgpack.Decoder
}

// NewSource creates a source reading from decoder.
func NewSource[K, V any](decoder *msgpack.Decoder) Source[K, V] {
	return Source[K, V]{decoder: decoder}
}

// DecodeMap visits nil as unit and a map as a map.
func (s Source[K, V]) DecodeMap(visitor mapvec.MapVisitor[K, V]) error {
	code, err := s.decoder.PeekCode()
	if err != nil {
		return NewDecodingError("", err)
	}

	switch {
	case code == msgpcode.Nil:
		err = s.decoder.DecodeNil()
		if err != nil {
			return NewDecodingError("nil", err)
		}

		return visitor.VisitUnit()
	case isMap(code):
		length, err := s.decoder.DecodeMapLen()
		if err != nil {
			return NewDecodingError("map length", err)
		}

		return visitor.VisitMap(&entryReader[K, V]{
			decoder:   s.decoder,
			remaining: length,
			index:     0,
		})
	default:
		return mapvec.NewInvalidTypeError(describeCode(code), visitor)
	}
}

// DecodeOption visits nil as absent; anything else is handed over as present.
func (s Source[K, V]) DecodeOption(visitor mapvec.OptionVisitor[K, V]) error {
	code, err := s.decoder.PeekCode()
	if err != nil {
		return NewDecodingError("", err)
	}

	if code != msgpcode.Nil {
		return visitor.VisitSome(s)
	}

	err = s.decoder.DecodeNil()
	if err != nil {
		return NewDecodingError("nil", err)
	}

	return visitor.VisitNone()
}

type entryReader[K, V any] struct {
	decoder   *msgpack.Decoder
	remaining int
	index     int
}

func (r *entryReader[K, V]) SizeHint() (int, bool) {
	return r.remaining, true
}

func (r *entryReader[K, V]) Next() (K, V, bool, error) {
	var (
		key   K
		value V
	)

	if r.remaining <= 0 {
		return key, value, false, nil
	}

	err := r.decoder.Decode(&key)
	if err != nil {
		return key, value, false, NewDecodingError(fmt.Sprintf("key of entry %d", r.index), err)
	}

	err = r.decoder.Decode(&value)
	if err != nil {
		return key, value, false, NewDecodingError(fmt.Sprintf("value of entry %d", r.index), err)
	}

	r.remaining--
	r.index++

	return key, value, true, nil
}

func isMap(code byte) bool {
	return msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32
}

func describeCode(code byte) string {
	switch {
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		return "array"
	case msgpcode.IsString(code):
		return "string"
	case msgpcode.IsBin(code):
		return "binary"
	case code == msgpcode.True || code == msgpcode.False:
		return "boolean"
	case msgpcode.IsExt(code):
		return "extension"
	default:
		return fmt.Sprintf("number or code 0x%02x", code)
	}
}

// NewEncodingError returns a MessagePack encoding error, or nil if err is nil.
func NewEncodingError(text string, err error) error {
	return mapvec.NewEncodingError(formatName, text, err)
}

// NewDecodingError returns a MessagePack decoding error, or nil if err is nil.
func NewDecodingError(text string, err error) error {
	return mapvec.NewDecodingError(formatName, text, err)
}
