// Package cborfmt binds mapvec to CBOR maps using github.com/fxamacker/cbor/v2.
//
// Definite-length map heads are written and read directly (RFC 8949 §3);
// indefinite-length maps are started and ended through cbor.Encoder. Every
// key and value is encoded as a separate data item, so the entries keep their
// order even though the encoder is configured for deterministic output of
// nested Go maps.
package cborfmt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	mapvec "github.com/tarantool/go-mapvec"
)

const formatName = "cbor"

const (
	majorTypeShift = 5
	additionalMask = 0x1f

	majorUnsigned = 0
	majorNegative = 1
	majorBytes    = 2
	majorText     = 3
	majorArray    = 4
	majorMap      = 5
	majorTag      = 6
	majorSimple   = 7

	additionalUint8  = 24
	additionalUint16 = 25
	additionalUint32 = 26
	additionalUint64 = 27
	additionalIndef  = 31

	headNull      = 0xf6
	headUndefined = 0xf7
	headBreak     = 0xff
	headIndefMap  = majorMap<<majorTypeShift | additionalIndef
)

var (
	// ErrMalformedHead is returned for a data item head that cannot be parsed.
	ErrMalformedHead = errors.New("malformed data item head")
	// ErrUnexpectedBreak is returned for a break code outside an indefinite-length map.
	ErrUnexpectedBreak = errors.New("unexpected break code")
)

// encMode encodes keys and values with Core Deterministic Encoding.
// It only affects nested Go maps; the order of our own entries is never changed.
// Indefinite length is allowed for the streaming encoder of Sink.
var encMode cbor.EncMode //nolint:gochecknoglobals

// decMode decodes nested maps of any-typed values into map[string]any.
var decMode cbor.DecMode //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encOptions.IndefLength = cbor.IndefLengthAllowed

	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("cborfmt: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{ //nolint:exhaustruct
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("cborfmt: CBOR decoder initialization failed: " + err.Error())
	}
}

var (
	_ mapvec.MapSink[string, any]      = (*Sink[string, any])(nil)
	_ mapvec.MapSource[string, any]    = (*Source[string, any])(nil)
	_ mapvec.OptionSource[string, any] = (*Source[string, any])(nil)
)

// Sink writes a CBOR map to a writer.
type Sink[K, V any] struct {
	writer     io.Writer
	encoder    *cbor.Encoder
	indefinite bool
	written    int
}

// NewSink creates a sink writing to writer.
func NewSink[K, V any](writer io.Writer) *Sink[K, V] {
	return &Sink[K, V]{
		writer:     writer,
		encoder:    encMode.NewEncoder(writer),
		indefinite: false,
		written:    0,
	}
}

// BeginMap writes a definite-length map head, or starts an indefinite-length
// map when n is negative.
func (s *Sink[K, V]) BeginMap(n int) error {
	s.written = 0
	s.indefinite = n < 0

	if s.indefinite {
		return NewEncodingError("map head", s.encoder.StartIndefiniteMap())
	}

	_, err := s.writer.Write(appendHead(nil, majorMap, uint64(n)))

	return NewEncodingError("map head", err)
}

// WriteEntry writes the key item and then the value item.
func (s *Sink[K, V]) WriteEntry(key K, value V) error {
	err := s.encoder.Encode(key)
	if err != nil {
		return NewEncodingError(fmt.Sprintf("key of entry %d", s.written), err)
	}

	err = s.encoder.Encode(value)
	if err != nil {
		return NewEncodingError(fmt.Sprintf("value of entry %d", s.written), err)
	}

	s.written++

	return nil
}

// EndMap writes the break code of an indefinite-length map.
func (s *Sink[K, V]) EndMap() error {
	if !s.indefinite {
		return nil
	}

	return NewEncodingError("break", s.encoder.EndIndefinite())
}

// appendHead appends the head of a data item with the given major type and argument.
func appendHead(dst []byte, major byte, argument uint64) []byte {
	initial := major << majorTypeShift

	switch {
	case argument < additionalUint8:
		return append(dst, initial|byte(argument))
	case argument <= math.MaxUint8:
		return append(dst, initial|additionalUint8, byte(argument))
	case argument <= math.MaxUint16:
		return binary.BigEndian.AppendUint16(append(dst, initial|additionalUint16), uint16(argument))
	case argument <= math.MaxUint32:
		return binary.BigEndian.AppendUint32(append(dst, initial|additionalUint32), uint32(argument))
	default:
		return binary.BigEndian.AppendUint64(append(dst, initial|additionalUint64), argument)
	}
}

// readArgument parses the argument of the head at the start of data and
// returns it with the size of the head.
func readArgument(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}

	additional := data[0] & additionalMask

	var size int

	switch additional {
	case additionalUint8:
		size = 2
	case additionalUint16:
		size = 3
	case additionalUint32:
		size = 5
	case additionalUint64:
		size = 9
	default:
		if additional < additionalUint8 {
			return uint64(additional), 1, nil
		}

		return 0, 0, fmt.Errorf("%w: additional information %d", ErrMalformedHead, additional)
	}

	if len(data) < size {
		return 0, 0, io.ErrUnexpectedEOF
	}

	switch size {
	case 2:
		return uint64(data[1]), size, nil
	case 3:
		return uint64(binary.BigEndian.Uint16(data[1:size])), size, nil
	case 5:
		return uint64(binary.BigEndian.Uint32(data[1:size])), size, nil
	default:
		return binary.BigEndian.Uint64(data[1:size]), size, nil
	}
}

// Source reads a CBOR map from a byte slice. It consumes the data items it
// decodes; Rest returns what is left.
type Source[K, V any] struct {
	data []byte
}

// NewSource creates a source reading data.
func NewSource[K, V any](data []byte) *Source[K, V] {
	return &Source[K, V]{data: data}
}

// Rest returns the bytes that follow the decoded items.
func (s *Source[K, V]) Rest() []byte {
	return s.data
}

// DecodeMap visits null and undefined as unit and a map as a map.
func (s *Source[K, V]) DecodeMap(visitor mapvec.MapVisitor[K, V]) error {
	if len(s.data) == 0 {
		return NewDecodingError("", io.ErrUnexpectedEOF)
	}

	initial := s.data[0]

	switch {
	case initial == headNull || initial == headUndefined:
		s.data = s.data[1:]
		return visitor.VisitUnit()
	case initial == headIndefMap:
		s.data = s.data[1:]
		return visitor.VisitMap(&entryReader[K, V]{source: s, indefinite: true, remaining: 0, index: 0, done: false})
	case initial>>majorTypeShift == majorMap:
		length, size, err := readArgument(s.data)
		if err != nil {
			return NewDecodingError("map head", err)
		}

		s.data = s.data[size:]

		return visitor.VisitMap(&entryReader[K, V]{
			source:     s,
			indefinite: false,
			remaining:  length,
			index:      0,
			done:       false,
		})
	default:
		return mapvec.NewInvalidTypeError(describeHead(initial), visitor)
	}
}

// DecodeOption visits null and undefined as absent; anything else is handed
// over as present.
func (s *Source[K, V]) DecodeOption(visitor mapvec.OptionVisitor[K, V]) error {
	if len(s.data) == 0 {
		return NewDecodingError("", io.ErrUnexpectedEOF)
	}

	if s.data[0] == headNull || s.data[0] == headUndefined {
		s.data = s.data[1:]
		return visitor.VisitNone()
	}

	return visitor.VisitSome(s)
}

func (s *Source[K, V]) decodeItem(text string, out any) error {
	rest, err := decMode.UnmarshalFirst(s.data, out)
	if err != nil {
		return NewDecodingError(text, err)
	}

	s.data = rest

	return nil
}

type entryReader[K, V any] struct {
	source     *Source[K, V]
	indefinite bool
	remaining  uint64
	index      int
	done       bool
}

func (r *entryReader[K, V]) SizeHint() (int, bool) {
	if r.indefinite {
		return 0, false
	}

	return int(min(r.remaining, math.MaxInt)), true
}

func (r *entryReader[K, V]) Next() (K, V, bool, error) {
	var (
		key   K
		value V
	)

	if r.done {
		return key, value, false, nil
	}

	if r.indefinite {
		if len(r.source.data) > 0 && r.source.data[0] == headBreak {
			r.source.data = r.source.data[1:]
			r.done = true

			return key, value, false, nil
		}
	} else if r.remaining == 0 {
		r.done = true
		return key, value, false, nil
	}

	err := r.source.decodeItem(fmt.Sprintf("key of entry %d", r.index), &key)
	if err != nil {
		return key, value, false, err
	}

	if len(r.source.data) > 0 && r.source.data[0] == headBreak {
		return key, value, false, NewDecodingError(fmt.Sprintf("value of entry %d", r.index), ErrUnexpectedBreak)
	}

	err = r.source.decodeItem(fmt.Sprintf("value of entry %d", r.index), &value)
	if err != nil {
		return key, value, false, err
	}

	r.remaining--
	r.index++

	return key, value, true, nil
}

func describeHead(initial byte) string {
	switch initial >> majorTypeShift {
	case majorUnsigned, majorNegative:
		return "integer"
	case majorBytes:
		return "byte string"
	case majorText:
		return "text string"
	case majorArray:
		return "array"
	case majorTag:
		return "tag"
	case majorSimple:
		if initial == headBreak {
			return "break"
		}

		return "simple value or float"
	default:
		return fmt.Sprintf("initial byte 0x%02x", initial)
	}
}

// NewEncodingError returns a CBOR encoding error, or nil if err is nil.
func NewEncodingError(text string, err error) error {
	return mapvec.NewEncodingError(formatName, text, err)
}

// NewDecodingError returns a CBOR decoding error, or nil if err is nil.
func NewDecodingError(text string, err error) error {
	return mapvec.NewDecodingError(formatName, text, err)
}
