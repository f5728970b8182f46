package mapvec

import (
	"github.com/tarantool/go-mapvec/kv"
)

// Encode writes pairs into sink as a single map, in the order they are given.
//
// Keys are not checked for uniqueness; the behavior for duplicate keys is
// defined by the sink. Errors returned by the sink are returned as is.
func Encode[K, V any](pairs kv.Pairs[K, V], sink MapSink[K, V]) error {
	err := sink.BeginMap(len(pairs))
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		err = sink.WriteEntry(pair.Key, pair.Value)
		if err != nil {
			return err
		}
	}

	return sink.EndMap()
}
