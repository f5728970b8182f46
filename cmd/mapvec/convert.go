package main

import (
	"fmt"

	"go.uber.org/zap"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/marshaller"
)

// convert decodes a document of format from and encodes its entries in
// format to, in the same order.
func convert(
	input []byte,
	from, to marshaller.Format,
	logger *zap.Logger,
	opts ...mapvec.DecodeOption,
) ([]byte, error) {
	decoder, err := marshaller.NewPairsMarshaller[string, any](from, opts...)
	if err != nil {
		return nil, err
	}

	encoder, err := marshaller.NewPairsMarshaller[string, any](to)
	if err != nil {
		return nil, err
	}

	pairs, err := decoder.Unmarshal(input)
	if err != nil {
		return nil, err
	}

	for i := range pairs {
		pairs[i].Value = normalize(pairs[i].Value)
	}

	logger.Debug("document decoded",
		zap.Stringer("format", from),
		zap.Int("entries", pairs.Len()),
		zap.Strings("keys", pairs.Keys()),
	)

	output, err := encoder.Marshal(pairs)
	if err != nil {
		return nil, err
	}

	logger.Debug("document encoded", zap.Stringer("format", to), zap.Int("bytes", len(output)))

	return output, nil
}

// normalize rewrites nested maps with non-string keys, as yaml.v3 decodes
// them, into map[string]any so every output format can write them.
// Keys are formatted with fmt.Sprint.
func normalize(value any) any {
	switch typed := value.(type) {
	case map[any]any:
		result := make(map[string]any, len(typed))
		for key, item := range typed {
			result[fmt.Sprint(key)] = normalize(item)
		}

		return result
	case map[string]any:
		for key, item := range typed {
			typed[key] = normalize(item)
		}

		return typed
	case []any:
		for i, item := range typed {
			typed[i] = normalize(item)
		}

		return typed
	default:
		return value
	}
}
