package cborfmt

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"
	"github.com/tarantool/go-option"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/kv"
)

var (
	_ cbor.Marshaler   = Map[string, any]{}
	_ cbor.Unmarshaler = (*Map[string, any])(nil)
	_ cbor.Marshaler   = Optional[string, any]{} //nolint:exhaustruct
	_ cbor.Unmarshaler = (*Optional[string, any])(nil)
)

// Map is a pair sequence that is encoded as a CBOR map.
// Use it as a struct field type to keep the order of a map-shaped field.
type Map[K, V any] kv.Pairs[K, V]

// MarshalCBOR implements cbor.Marshaler.
func (m Map[K, V]) MarshalCBOR() ([]byte, error) {
	return Marshal(kv.Pairs[K, V](m))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (m *Map[K, V]) UnmarshalCBOR(data []byte) error {
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

// MarshalCBOR implements cbor.Marshaler.
func (o Optional[K, V]) MarshalCBOR() ([]byte, error) {
	return MarshalOptional(o.Generic)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (o *Optional[K, V]) UnmarshalCBOR(data []byte) error {
	value, err := UnmarshalOptional[K, V](data)
	if err != nil {
		return err
	}

	o.Generic = value

	return nil
}

// Marshal encodes pairs as a definite-length CBOR map.
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
		return []byte{headNull}, nil
	}

	return Marshal(pairs)
}

// Unmarshal decodes a CBOR map (or null) into pairs.
func Unmarshal[K, V any](data []byte, opts ...mapvec.DecodeOption) (kv.Pairs[K, V], error) {
	source := NewSource[K, V](data)

	pairs, err := mapvec.Decode[K, V](source, opts...)
	if err != nil {
		return nil, err
	}

	if len(source.Rest()) > 0 {
		return nil, NewDecodingError("", mapvec.ErrTrailingData)
	}

	return pairs, nil
}

// UnmarshalOptional decodes null as absent and a map as present pairs.
func UnmarshalOptional[K, V any](
	data []byte,
	opts ...mapvec.DecodeOption,
) (option.Generic[kv.Pairs[K, V]], error) {
	source := NewSource[K, V](data)

	value, err := mapvec.DecodeOptional[K, V](source, opts...)
	if err != nil {
		return option.None[kv.Pairs[K, V]](), err
	}

	if len(source.Rest()) > 0 {
		return option.None[kv.Pairs[K, V]](), NewDecodingError("", mapvec.ErrTrailingData)
	}

	return value, nil
}
