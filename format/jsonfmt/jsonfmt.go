// Package jsonfmt binds mapvec to JSON objects.
//
// Objects are written and read token by token, so the order of members is
// exactly the order of the pairs. JSON object keys are strings: keys of
// string kinds are used directly, encoding.TextMarshaler keys are marshaled,
// and integer keys are formatted as decimal strings, the same rules
// encoding/json applies to map keys.
package jsonfmt

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"

	mapvec "github.com/tarantool/go-mapvec"
)

const formatName = "json"

// ErrUnsupportedKey is returned for keys that cannot become a JSON object key.
var ErrUnsupportedKey = errors.New("unsupported key type")

var (
	_ mapvec.MapSink[string, any]      = (*Sink[string, any])(nil)
	_ mapvec.MapSource[string, any]    = Source[string, any]{}
	_ mapvec.OptionSource[string, any] = Source[string, any]{}
)

// Sink writes a JSON object to a writer.
type Sink[K, V any] struct {
	writer  io.Writer
	written int
}

// NewSink creates a sink writing to writer.
func NewSink[K, V any](writer io.Writer) *Sink[K, V] {
	return &Sink[K, V]{writer: writer, written: 0}
}

// BeginMap writes the opening brace; JSON objects carry no length.
func (s *Sink[K, V]) BeginMap(_ int) error {
	s.written = 0
	return s.write("object start", []byte{'{'})
}

// WriteEntry writes one object member.
func (s *Sink[K, V]) WriteEntry(key K, value V) error {
	name, err := encodeKey(key)
	if err != nil {
		return NewEncodingError(fmt.Sprintf("key of entry %d", s.written), err)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return NewEncodingError(fmt.Sprintf("value of entry %d", s.written), err)
	}

	member := make([]byte, 0, len(name)+len(data)+2)
	if s.written > 0 {
		member = append(member, ',')
	}

	member = append(member, name...)
	member = append(member, ':')
	member = append(member, data...)

	err = s.write(fmt.Sprintf("entry %d", s.written), member)
	if err != nil {
		return err
	}

	s.written++

	return nil
}

// EndMap writes the closing brace.
func (s *Sink[K, V]) EndMap() error {
	return s.write("object end", []byte{'}'})
}

func (s *Sink[K, V]) write(text string, data []byte) error {
	_, err := s.writer.Write(data)
	return NewEncodingError(text, err)
}

// encodeKey returns the quoted JSON object key for key.
func encodeKey(key any) ([]byte, error) {
	value := reflect.ValueOf(key)
	if !value.IsValid() {
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedKey)
	}

	if value.Kind() == reflect.String {
		return json.Marshal(value.String())
	}

	if marshaler, ok := key.(encoding.TextMarshaler); ok {
		// A nil pointer key is written as an empty name, as encoding/json does.
		if value.Kind() == reflect.Pointer && value.IsNil() {
			return []byte(`""`), nil
		}

		text, err := marshaler.MarshalText()
		if err != nil {
			return nil, err
		}

		return json.Marshal(string(text))
	}

	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return json.Marshal(strconv.FormatInt(value.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return json.Marshal(strconv.FormatUint(value.Uint(), 10))
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
}

// Source reads a JSON object from a token stream.
type Source[K, V any] struct {
	decoder *json.Decoder
}

// NewSource creates a source reading from decoder.
func NewSource[K, V any](decoder *json.Decoder) Source[K, V] {
	return Source[K, V]{decoder: decoder}
}

// DecodeMap visits null as unit and an object as a map.
func (s Source[K, V]) DecodeMap(visitor mapvec.MapVisitor[K, V]) error {
	token, err := s.decoder.Token()
	if err != nil {
		return NewDecodingError("", err)
	}

	switch value := token.(type) {
	case nil:
		return visitor.VisitUnit()
	case json.Delim:
		if value == '{' {
			return visitor.VisitMap(&entryReader[K, V]{decoder: s.decoder, index: 0, done: false})
		}

		return mapvec.NewInvalidTypeError("array", visitor)
	default:
		return mapvec.NewInvalidTypeError(describeToken(token), visitor)
	}
}

// DecodeOption visits null as absent; anything else is handed over as present.
func (s Source[K, V]) DecodeOption(visitor mapvec.OptionVisitor[K, V]) error {
	var raw json.RawMessage

	err := s.decoder.Decode(&raw)
	if err != nil {
		return NewDecodingError("", err)
	}

	if string(raw) == "null" {
		return visitor.VisitNone()
	}

	return visitor.VisitSome(NewSource[K, V](json.NewDecoder(bytes.NewReader(raw))))
}

type entryReader[K, V any] struct {
	decoder *json.Decoder
	index   int
	done    bool
}

// SizeHint reports nothing: a JSON object does not announce its size.
func (r *entryReader[K, V]) SizeHint() (int, bool) {
	return 0, false
}

func (r *entryReader[K, V]) Next() (K, V, bool, error) {
	var (
		key   K
		value V
	)

	if r.done {
		return key, value, false, nil
	}

	token, err := r.decoder.Token()
	if err != nil {
		return key, value, false, NewDecodingError(fmt.Sprintf("key of entry %d", r.index), err)
	}

	name, ok := token.(string)
	if !ok {
		// Token validates the syntax, so the only other token here is the closing brace.
		r.done = true
		return key, value, false, nil
	}

	key, err = decodeKey[K](name)
	if err != nil {
		return key, value, false, NewDecodingError(fmt.Sprintf("key of entry %d", r.index), err)
	}

	err = r.decoder.Decode(&value)
	if err != nil {
		return key, value, false, NewDecodingError(fmt.Sprintf("value of entry %d", r.index), err)
	}

	r.index++

	return key, value, true, nil
}

// decodeKey converts a JSON object key into K.
func decodeKey[K any](name string) (K, error) {
	var key K

	quoted, err := json.Marshal(name)
	if err != nil {
		return key, err
	}

	err = json.Unmarshal(quoted, &key)
	if err == nil {
		return key, nil
	}

	switch reflect.TypeFor[K]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		// Integer keys arrive as decimal strings.
		_, parseErr := strconv.ParseFloat(name, 64)
		if parseErr != nil {
			return key, err
		}

		return key, json.Unmarshal([]byte(name), &key)
	default:
		return key, err
	}
}

func describeToken(token json.Token) string {
	switch token.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", token)
	}
}

// NewEncodingError returns a JSON encoding error, or nil if err is nil.
func NewEncodingError(text string, err error) error {
	return mapvec.NewEncodingError(formatName, text, err)
}

// NewDecodingError returns a JSON decoding error, or nil if err is nil.
func NewDecodingError(text string, err error) error {
	return mapvec.NewDecodingError(formatName, text, err)
}
