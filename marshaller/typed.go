package marshaller

import (
	"fmt"

	"github.com/tarantool/go-option"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/kv"
)

var (
	_ TypedMarshaller[kv.Pairs[string, any]]                 = PairsMarshaller[string, any]{}    //nolint:exhaustruct
	_ TypedMarshaller[option.Generic[kv.Pairs[string, any]]] = OptionalMarshaller[string, any]{} //nolint:exhaustruct
)

// PairsMarshaller marshals ordered maps as whole documents of one format.
type PairsMarshaller[K, V any] struct {
	format Format
	codec  codec[K, V]
	opts   []mapvec.DecodeOption
}

// NewPairsMarshaller creates a marshaller for format. The options are passed
// to every Unmarshal call.
func NewPairsMarshaller[K, V any](format Format, opts ...mapvec.DecodeOption) (PairsMarshaller[K, V], error) {
	codec, err := codecFor[K, V](format)
	if err != nil {
		return PairsMarshaller[K, V]{}, fmt.Errorf("%w: %q", err, format) //nolint:exhaustruct
	}

	return PairsMarshaller[K, V]{format: format, codec: codec, opts: opts}, nil
}

// Format returns the format of the marshaller.
func (m PairsMarshaller[K, V]) Format() Format {
	return m.format
}

// Marshal serializes pairs into a document.
func (m PairsMarshaller[K, V]) Marshal(data kv.Pairs[K, V]) ([]byte, error) {
	marshalled, err := m.codec.marshal(data)
	if err != nil {
		return nil, errMarshal(m.format, err)
	}

	return marshalled, nil
}

// Unmarshal deserializes a document into pairs in document order.
func (m PairsMarshaller[K, V]) Unmarshal(data []byte) (kv.Pairs[K, V], error) {
	pairs, err := m.codec.unmarshal(data, m.opts...)
	if err != nil {
		return nil, errUnmarshal(m.format, err)
	}

	return pairs, nil
}

// OptionalMarshaller marshals ordered maps that may be absent. Absent is the
// format's null value.
type OptionalMarshaller[K, V any] struct {
	format Format
	codec  codec[K, V]
	opts   []mapvec.DecodeOption
}

// NewOptionalMarshaller creates a marshaller of optional maps for format.
func NewOptionalMarshaller[K, V any](format Format, opts ...mapvec.DecodeOption) (OptionalMarshaller[K, V], error) {
	codec, err := codecFor[K, V](format)
	if err != nil {
		return OptionalMarshaller[K, V]{}, fmt.Errorf("%w: %q", err, format) //nolint:exhaustruct
	}

	return OptionalMarshaller[K, V]{format: format, codec: codec, opts: opts}, nil
}

// Format returns the format of the marshaller.
func (m OptionalMarshaller[K, V]) Format() Format {
	return m.format
}

// Marshal serializes an optional map into a document.
func (m OptionalMarshaller[K, V]) Marshal(data option.Generic[kv.Pairs[K, V]]) ([]byte, error) {
	marshalled, err := m.codec.marshalOptional(data)
	if err != nil {
		return nil, errMarshal(m.format, err)
	}

	return marshalled, nil
}

// Unmarshal deserializes a document into an optional map.
func (m OptionalMarshaller[K, V]) Unmarshal(data []byte) (option.Generic[kv.Pairs[K, V]], error) {
	value, err := m.codec.unmarshalOptional(data, m.opts...)
	if err != nil {
		return option.None[kv.Pairs[K, V]](), errUnmarshal(m.format, err)
	}

	return value, nil
}
