package msgpackfmt

import (
	"bytes"

	"github.com/tarantool/go-option"
	"github.com/vmihailenco/msgpack/v5"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/kv"
)

var (
	_ msgpack.CustomEncoder = Map[string, any]{}
	_ msgpack.CustomDecoder = (*Map[string, any])(nil)
	_ msgpack.CustomEncoder = Optional[string, any]{} //nolint:exhaustruct
	_ msgpack.CustomDecoder = (*Optional[string, any])(nil)
)

// Map is a pair sequence that is encoded as a MessagePack map.
// Use it as a struct field type to keep the order of a map-shaped field.
type Map[K, V any] kv.Pairs[K, V]

// EncodeMsgpack implements msgpack.CustomEncoder.
func (m Map[K, V]) EncodeMsgpack(encoder *msgpack.Encoder) error {
	return mapvec.Encode(kv.Pairs[K, V](m), NewSink[K, V](encoder))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (m *Map[K, V]) DecodeMsgpack(decoder *msgpack.Decoder) error {
	pairs, err := mapvec.Decode[K, V](NewSource[K, V](decoder))
	if err != nil {
		return err
	}

	*m = Map[K, V](pairs)

	return nil
}

// Optional is a pair sequence that may be absent. Absent is encoded as nil.
type Optional[K, V any] struct {
	option.Generic[kv.Pairs[K, V]]
}

// NewOptional wraps value into Optional.
func NewOptional[K, V any](value option.Generic[kv.Pairs[K, V]]) Optional[K, V] {
	return Optional[K, V]{Generic: value}
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (o Optional[K, V]) EncodeMsgpack(encoder *msgpack.Encoder) error {
	pairs, ok := o.Get()
	if !ok {
		return NewEncodingError("nil", encoder.EncodeNil())
	}

	return mapvec.Encode(pairs, NewSink[K, V](encoder))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (o *Optional[K, V]) DecodeMsgpack(decoder *msgpack.Decoder) error {
	value, err := mapvec.DecodeOptional[K, V](NewSource[K, V](decoder))
	if err != nil {
		return err
	}

	o.Generic = value

	return nil
}

// Marshal encodes pairs as a MessagePack map.
func Marshal[K, V any](pairs kv.Pairs[K, V]) ([]byte, error) {
	var buf bytes.Buffer

	err := mapvec.Encode(pairs, NewSink[K, V](msgpack.NewEncoder(&buf)))
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// MarshalOptional encodes an optional pair sequence; absent becomes nil.
func MarshalOptional[K, V any](value option.Generic[kv.Pairs[K, V]]) ([]byte, error) {
	var buf bytes.Buffer

	err := NewOptional(value).EncodeMsgpack(msgpack.NewEncoder(&buf))
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a MessagePack map (or nil) into pairs.
func Unmarshal[K, V any](data []byte, opts ...mapvec.DecodeOption) (kv.Pairs[K, V], error) {
	reader := bytes.NewReader(data)

	pairs, err := mapvec.Decode[K, V](NewSource[K, V](msgpack.NewDecoder(reader)), opts...)
	if err != nil {
		return nil, err
	}

	if reader.Len() > 0 {
		return nil, NewDecodingError("", mapvec.ErrTrailingData)
	}

	return pairs, nil
}

// UnmarshalOptional decodes nil as absent and a map as present pairs.
func UnmarshalOptional[K, V any](
	data []byte,
	opts ...mapvec.DecodeOption,
) (option.Generic[kv.Pairs[K, V]], error) {
	reader := bytes.NewReader(data)

	value, err := mapvec.DecodeOptional[K, V](NewSource[K, V](msgpack.NewDecoder(reader)), opts...)
	if err != nil {
		return option.None[kv.Pairs[K, V]](), err
	}

	if reader.Len() > 0 {
		return option.None[kv.Pairs[K, V]](), NewDecodingError("", mapvec.ErrTrailingData)
	}

	return value, nil
}
