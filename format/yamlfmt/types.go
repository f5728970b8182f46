package yamlfmt

import (
	"github.com/tarantool/go-option"
	"gopkg.in/yaml.v3"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/kv"
)

var (
	_ yaml.Marshaler   = Map[string, any]{}
	_ yaml.Unmarshaler = (*Map[string, any])(nil)
	_ yaml.Marshaler   = Optional[string, any]{} //nolint:exhaustruct
	_ yaml.Unmarshaler = (*Optional[string, any])(nil)
)

// Map is a pair sequence that is encoded as a YAML mapping.
// Use it as a struct field type to keep the order of a mapping field.
//
// yaml.v3 does not call UnmarshalYAML for a null value: a null field is set
// to a nil Map, not to an empty one.
type Map[K, V any] kv.Pairs[K, V]

// MarshalYAML implements yaml.Marshaler.
func (m Map[K, V]) MarshalYAML() (any, error) {
	return encodeNode(kv.Pairs[K, V](m))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Map[K, V]) UnmarshalYAML(value *yaml.Node) error {
	pairs, err := mapvec.Decode[K, V](NewSource[K, V](value))
	if err != nil {
		return err
	}

	*m = Map[K, V](pairs)

	return nil
}

// Optional is a pair sequence that may be absent. Absent is encoded as null.
//
// yaml.v3 does not call UnmarshalYAML for a null value, so a null field leaves
// an Optional unchanged. Decode into a zero value, or use a *Optional field,
// which yaml.v3 resets to nil on null.
type Optional[K, V any] struct {
	option.Generic[kv.Pairs[K, V]]
}

// NewOptional wraps value into Optional.
func NewOptional[K, V any](value option.Generic[kv.Pairs[K, V]]) Optional[K, V] {
	return Optional[K, V]{Generic: value}
}

// MarshalYAML implements yaml.Marshaler.
func (o Optional[K, V]) MarshalYAML() (any, error) {
	pairs, ok := o.Get()
	if !ok {
		return nil, nil //nolint:nilnil
	}

	return encodeNode(pairs)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Optional[K, V]) UnmarshalYAML(value *yaml.Node) error {
	decoded, err := mapvec.DecodeOptional[K, V](NewSource[K, V](value))
	if err != nil {
		return err
	}

	o.Generic = decoded

	return nil
}

func encodeNode[K, V any](pairs kv.Pairs[K, V]) (*yaml.Node, error) {
	sink := NewSink[K, V]()

	err := mapvec.Encode(pairs, sink)
	if err != nil {
		return nil, err
	}

	return sink.Node()
}

// Marshal encodes pairs as a YAML mapping document.
func Marshal[K, V any](pairs kv.Pairs[K, V]) ([]byte, error) {
	node, err := encodeNode(pairs)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, NewEncodingError("document", err)
	}

	return data, nil
}

// MarshalOptional encodes an optional pair sequence; absent becomes null.
func MarshalOptional[K, V any](value option.Generic[kv.Pairs[K, V]]) ([]byte, error) {
	data, err := yaml.Marshal(NewOptional(value))
	if err != nil {
		return nil, NewEncodingError("document", err)
	}

	return data, nil
}

func parse(data []byte) (*yaml.Node, error) {
	var document yaml.Node

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, NewDecodingError("document", err)
	}

	return &document, nil
}

// Unmarshal decodes the first YAML document as a mapping (or null) into pairs.
// An empty document decodes to an empty sequence.
func Unmarshal[K, V any](data []byte, opts ...mapvec.DecodeOption) (kv.Pairs[K, V], error) {
	document, err := parse(data)
	if err != nil {
		return nil, err
	}

	return mapvec.Decode[K, V](NewSource[K, V](document), opts...)
}

// UnmarshalOptional decodes null or an empty document as absent and a
// mapping as present pairs.
func UnmarshalOptional[K, V any](
	data []byte,
	opts ...mapvec.DecodeOption,
) (option.Generic[kv.Pairs[K, V]], error) {
	document, err := parse(data)
	if err != nil {
		return option.None[kv.Pairs[K, V]](), err
	}

	return mapvec.DecodeOptional[K, V](NewSource[K, V](document), opts...)
}
