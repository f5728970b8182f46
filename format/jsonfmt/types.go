package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/tarantool/go-option"
	"github.com/tidwall/jsonc"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/kv"
)

var (
	_ json.Marshaler   = Map[string, any]{}
	_ json.Unmarshaler = (*Map[string, any])(nil)
	_ json.Marshaler   = Optional[string, any]{} //nolint:exhaustruct
	_ json.Unmarshaler = (*Optional[string, any])(nil)
)

// Map is a pair sequence that is encoded as a JSON object.
// Use it as a struct field type to keep the order of an object-shaped field.
type Map[K, V any] kv.Pairs[K, V]

// MarshalJSON implements json.Marshaler.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	return Marshal(kv.Pairs[K, V](m))
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	pairs, err := Unmarshal[K, V](data)
	if err != nil {
		return err
	}

	*m = Map[K, V](pairs)

	return nil
}

// Optional is a pair sequence that may be absent. Absent is encoded as null.
type Optional[K, V any] struct {
	option.Generic[kv.Pairs[K, V]]
}

// NewOptional wraps value into Optional.
func NewOptional[K, V any](value option.Generic[kv.Pairs[K, V]]) Optional[K, V] {
	return Optional[K, V]{Generic: value}
}

// MarshalJSON implements json.Marshaler.
func (o Optional[K, V]) MarshalJSON() ([]byte, error) {
	return MarshalOptional(o.Generic)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[K, V]) UnmarshalJSON(data []byte) error {
	value, err := UnmarshalOptional[K, V](data)
	if err != nil {
		return err
	}

	o.Generic = value

	return nil
}

// Marshal encodes pairs as a JSON object.
func Marshal[K, V any](pairs kv.Pairs[K, V]) ([]byte, error) {
	var buf bytes.Buffer

	err := mapvec.Encode(pairs, NewSink[K, V](&buf))
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalOptional encodes an optional pair sequence; absent becomes null.
func MarshalOptional[K, V any](value option.Generic[kv.Pairs[K, V]]) ([]byte, error) {
	pairs, ok := value.Get()
	if !ok {
		return []byte("null"), nil
	}

	return Marshal(pairs)
}

// Unmarshal decodes a JSON object (or null) into pairs.
func Unmarshal[K, V any](data []byte, opts ...mapvec.DecodeOption) (kv.Pairs[K, V], error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	pairs, err := mapvec.Decode[K, V](NewSource[K, V](decoder), opts...)
	if err != nil {
		return nil, err
	}

	err = checkEOF(decoder)
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

// UnmarshalJSONC is like Unmarshal but accepts comments and trailing commas.
func UnmarshalJSONC[K, V any](data []byte, opts ...mapvec.DecodeOption) (kv.Pairs[K, V], error) {
	return Unmarshal[K, V](jsonc.ToJSON(data), opts...)
}

// UnmarshalOptional decodes null as absent and an object as present pairs.
func UnmarshalOptional[K, V any](
	data []byte,
	opts ...mapvec.DecodeOption,
) (option.Generic[kv.Pairs[K, V]], error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	value, err := mapvec.DecodeOptional[K, V](NewSource[K, V](decoder), opts...)
	if err != nil {
		return option.None[kv.Pairs[K, V]](), err
	}

	err = checkEOF(decoder)
	if err != nil {
		return option.None[kv.Pairs[K, V]](), err
	}

	return value, nil
}

// UnmarshalOptionalJSONC is like UnmarshalOptional but accepts comments and trailing commas.
func UnmarshalOptionalJSONC[K, V any](
	data []byte,
	opts ...mapvec.DecodeOption,
) (option.Generic[kv.Pairs[K, V]], error) {
	return UnmarshalOptional[K, V](jsonc.ToJSON(data), opts...)
}

func checkEOF(decoder *json.Decoder) error {
	_, err := decoder.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}

	return NewDecodingError("", mapvec.ErrTrailingData)
}
