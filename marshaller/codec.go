package marshaller

import (
	"github.com/tarantool/go-option"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/format/cborfmt"
	"github.com/tarantool/go-mapvec/format/jsonfmt"
	"github.com/tarantool/go-mapvec/format/msgpackfmt"
	"github.com/tarantool/go-mapvec/format/yamlfmt"
	"github.com/tarantool/go-mapvec/kv"
)

// codec is the set of document functions a format package provides.
type codec[K, V any] struct {
	marshal           func(kv.Pairs[K, V]) ([]byte, error)
	unmarshal         func([]byte, ...mapvec.DecodeOption) (kv.Pairs[K, V], error)
	marshalOptional   func(option.Generic[kv.Pairs[K, V]]) ([]byte, error)
	unmarshalOptional func([]byte, ...mapvec.DecodeOption) (option.Generic[kv.Pairs[K, V]], error)
}

func codecFor[K, V any](format Format) (codec[K, V], error) {
	switch format {
	case FormatJSON:
		return codec[K, V]{
			marshal:           jsonfmt.Marshal[K, V],
			unmarshal:         jsonfmt.Unmarshal[K, V],
			marshalOptional:   jsonfmt.MarshalOptional[K, V],
			unmarshalOptional: jsonfmt.UnmarshalOptional[K, V],
		}, nil
	case FormatJSONC:
		return codec[K, V]{
			marshal:           jsonfmt.Marshal[K, V],
			unmarshal:         jsonfmt.UnmarshalJSONC[K, V],
			marshalOptional:   jsonfmt.MarshalOptional[K, V],
			unmarshalOptional: jsonfmt.UnmarshalOptionalJSONC[K, V],
		}, nil
	case FormatYAML:
		return codec[K, V]{
			marshal:           yamlfmt.Marshal[K, V],
			unmarshal:         yamlfmt.Unmarshal[K, V],
			marshalOptional:   yamlfmt.MarshalOptional[K, V],
			unmarshalOptional: yamlfmt.UnmarshalOptional[K, V],
		}, nil
	case FormatMsgpack:
		return codec[K, V]{
			marshal:           msgpackfmt.Marshal[K, V],
			unmarshal:         msgpackfmt.Unmarshal[K, V],
			marshalOptional:   msgpackfmt.MarshalOptional[K, V],
			unmarshalOptional: msgpackfmt.UnmarshalOptional[K, V],
		}, nil
	case FormatCBOR:
		return codec[K, V]{
			marshal:           cborfmt.Marshal[K, V],
			unmarshal:         cborfmt.Unmarshal[K, V],
			marshalOptional:   cborfmt.MarshalOptional[K, V],
			unmarshalOptional: cborfmt.UnmarshalOptional[K, V],
		}, nil
	default:
		return codec[K, V]{}, ErrUnknownFormat //nolint:exhaustruct
	}
}
