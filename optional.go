package mapvec

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-mapvec/kv"
)

// optionalVisitor dispatches on presence and delegates present values to pairsVisitor.
type optionalVisitor[K, V any] struct {
	opts    decodeOptions
	result  option.Generic[kv.Pairs[K, V]]
	visited bool
}

func (v *optionalVisitor[K, V]) Expecting() string {
	return "null or a map"
}

func (v *optionalVisitor[K, V]) VisitNone() error {
	v.result = option.None[kv.Pairs[K, V]]()
	v.visited = true

	return nil
}

func (v *optionalVisitor[K, V]) VisitSome(source MapSource[K, V]) error {
	pairs, err := newPairsVisitor[K, V](v.opts).decode(source)
	if err != nil {
		return err
	}

	v.result = option.Some(pairs)
	v.visited = true

	return nil
}

// DecodeOptional reads a value that is either absent or a map.
//
// An absent value yields option.None, which is distinct from a present map
// without entries. A present value is decoded exactly as Decode does.
func DecodeOptional[K, V any](
	source OptionSource[K, V],
	opts ...DecodeOption,
) (option.Generic[kv.Pairs[K, V]], error) {
	visitor := &optionalVisitor[K, V]{
		opts:    newDecodeOptions(opts),
		result:  option.None[kv.Pairs[K, V]](),
		visited: false,
	}

	err := source.DecodeOption(visitor)
	if err != nil {
		return option.None[kv.Pairs[K, V]](), err
	}

	if !visitor.visited {
		return option.None[kv.Pairs[K, V]](), ErrNoValue
	}

	return visitor.result, nil
}
