package mapvec

import (
	"github.com/tarantool/go-mapvec/internal/options"
	"github.com/tarantool/go-mapvec/kv"
)

// DefaultCapacityLimit is the largest number of entries Decode reserves
// up front, whatever size hint the source reports.
const DefaultCapacityLimit = 4096

type decodeOptions struct {
	capacityLimit int
}

func defaultDecodeOptions() decodeOptions {
	return decodeOptions{
		capacityLimit: DefaultCapacityLimit,
	}
}

// DecodeOption is a function that configures decoding.
type DecodeOption func(*decodeOptions)

// WithCapacityLimit sets the largest number of entries reserved from a size hint.
// A limit of zero disables preallocation. The result still grows past the
// limit when the source yields more entries.
func WithCapacityLimit(limit int) DecodeOption {
	return func(opts *decodeOptions) {
		opts.capacityLimit = max(limit, 0)
	}
}

func newDecodeOptions(opts []DecodeOption) decodeOptions {
	return options.ApplyOptions(defaultDecodeOptions, options.Convert[decodeOptions](opts))
}

// pairsVisitor collects map entries into kv.Pairs.
type pairsVisitor[K, V any] struct {
	opts    decodeOptions
	result  kv.Pairs[K, V]
	visited bool
}

func newPairsVisitor[K, V any](opts decodeOptions) *pairsVisitor[K, V] {
	return &pairsVisitor[K, V]{
		opts:    opts,
		result:  nil,
		visited: false,
	}
}

func (v *pairsVisitor[K, V]) Expecting() string {
	return "a map"
}

func (v *pairsVisitor[K, V]) VisitUnit() error {
	v.result = kv.Pairs[K, V]{}
	v.visited = true

	return nil
}

func (v *pairsVisitor[K, V]) VisitMap(entries EntryReader[K, V]) error {
	hint, _ := entries.SizeHint()
	values := make(kv.Pairs[K, V], 0, min(max(hint, 0), v.opts.capacityLimit))

	for {
		key, value, ok, err := entries.Next()
		if err != nil {
			return err
		}

		if !ok {
			break
		}

		values = append(values, kv.Pair[K, V]{Key: key, Value: value})
	}

	v.result = values
	v.visited = true

	return nil
}

func (v *pairsVisitor[K, V]) decode(source MapSource[K, V]) (kv.Pairs[K, V], error) {
	err := source.DecodeMap(v)
	if err != nil {
		return nil, err
	}

	if !v.visited {
		return nil, ErrNoValue
	}

	return v.result, nil
}

// Decode reads a map from source into pairs, keeping the order in which the
// source yields entries. Repeated keys are kept.
//
// A unit value decodes to an empty, non-nil sequence. Any error from the
// source is returned unchanged and no partial result is returned.
func Decode[K, V any](source MapSource[K, V], opts ...DecodeOption) (kv.Pairs[K, V], error) {
	return newPairsVisitor[K, V](newDecodeOptions(opts)).decode(source)
}
