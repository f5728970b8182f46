package cborfmt_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/format/cborfmt"
	"github.com/tarantool/go-mapvec/kv"
)

func TestMarshal_Bytes(t *testing.T) {
	t.Parallel()

	data, err := cborfmt.Marshal(kv.Pairs[string, int]{kv.Of("b", 2), kv.Of("a", 1)})
	require.NoError(t, err)

	// map(2), "b", 2, "a", 1. Not sorted even though the encoder is deterministic.
	assert.Equal(t, []byte{0xa2, 0x61, 'b', 0x02, 0x61, 'a', 0x01}, data)
}

func TestMarshal_LongMapHead(t *testing.T) {
	t.Parallel()

	pairs := make(kv.Pairs[int, bool], 0, 300)
	for i := range 300 {
		pairs = append(pairs, kv.Of(i, true))
	}

	data, err := cborfmt.Marshal(pairs)
	require.NoError(t, err)

	// map with a two-byte length of 300.
	assert.Equal(t, []byte{0xb9, 0x01, 0x2c}, data[:3])

	result, err := cborfmt.Unmarshal[int, bool](data)
	require.NoError(t, err)
	assert.Equal(t, pairs, result)
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected kv.Pairs[string, int]
	}{
		{
			name:     "null is empty",
			data:     []byte{0xf6},
			expected: kv.Pairs[string, int]{},
		},
		{
			name:     "undefined is empty",
			data:     []byte{0xf7},
			expected: kv.Pairs[string, int]{},
		},
		{
			name:     "empty map",
			data:     []byte{0xa0},
			expected: kv.Pairs[string, int]{},
		},
		{
			name:     "does not sort",
			data:     []byte{0xa2, 0x61, 'b', 0x02, 0x61, 'a', 0x01},
			expected: kv.Pairs[string, int]{kv.Of("b", 2), kv.Of("a", 1)},
		},
		{
			name:     "keeps duplicate keys",
			data:     []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'a', 0x02},
			expected: kv.Pairs[string, int]{kv.Of("a", 1), kv.Of("a", 2)},
		},
		{
			name:     "indefinite length",
			data:     []byte{0xbf, 0x61, 'z', 0x01, 0x61, 'y', 0x02, 0xff},
			expected: kv.Pairs[string, int]{kv.Of("z", 1), kv.Of("y", 2)},
		},
		{
			name:     "one byte length",
			data:     []byte{0xb8, 0x01, 0x61, 'k', 0x18, 0x64},
			expected: kv.Pairs[string, int]{kv.Of("k", 100)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := cborfmt.Unmarshal[string, int](tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		contains string
	}{
		{
			name:     "empty input",
			data:     []byte{},
			contains: "failed to decode cbor map: unexpected EOF",
		},
		{
			name:     "array",
			data:     []byte{0x82, 0x01, 0x02},
			contains: "invalid type: array, expected a map",
		},
		{
			name:     "text",
			data:     []byte{0x61, 'a'},
			contains: "invalid type: text string, expected a map",
		},
		{
			name:     "truncated head",
			data:     []byte{0xb9, 0x01},
			contains: "map head",
		},
		{
			name:     "reserved additional information",
			data:     []byte{0xbc},
			contains: cborfmt.ErrMalformedHead.Error(),
		},
		{
			name:     "truncated second value",
			data:     []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'b'},
			contains: "value of entry 1",
		},
		{
			name:     "value type mismatch",
			data:     []byte{0xa1, 0x61, 'a', 0x61, 'x'},
			contains: "value of entry 0",
		},
		{
			name:     "missing break",
			data:     []byte{0xbf, 0x61, 'a', 0x01},
			contains: "key of entry 1",
		},
		{
			name:     "break instead of value",
			data:     []byte{0xbf, 0x61, 'a', 0xff},
			contains: cborfmt.ErrUnexpectedBreak.Error(),
		},
		{
			name:     "huge length hint",
			data:     []byte{0xbb, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			contains: "key of entry 0",
		},
		{
			name:     "trailing data",
			data:     []byte{0xa0, 0x00},
			contains: mapvec.ErrTrailingData.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := cborfmt.Unmarshal[string, int](tt.data)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSink_IndefiniteLength(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	sink := cborfmt.NewSink[string, int](&buf)

	require.NoError(t, sink.BeginMap(-1))
	require.NoError(t, sink.WriteEntry("x", 1))
	require.NoError(t, sink.EndMap())

	assert.Equal(t, []byte{0xbf, 0x61, 'x', 0x01, 0xff}, buf.Bytes())

	result, err := cborfmt.Unmarshal[string, int](buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, kv.Pairs[string, int]{kv.Of("x", 1)}, result)
}

func TestSink_IndefiniteNestedValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	sink := cborfmt.NewSink[string, map[string]int](&buf)

	require.NoError(t, sink.BeginMap(-1))
	require.NoError(t, sink.WriteEntry("m", map[string]int{"b": 2, "a": 1}))
	require.NoError(t, sink.EndMap())

	// Nested Go maps are sorted, the outer map is streamed.
	assert.Equal(t, []byte{0xbf, 0x61, 'm', 0xa2, 0x61, 'a', 0x01, 0x61, 'b', 0x02, 0xff}, buf.Bytes())
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestSink_WriterErrors(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("disk full")

	t.Run("indefinite head", func(t *testing.T) {
		t.Parallel()

		sink := cborfmt.NewSink[string, int](failingWriter{err: writeErr})

		err := sink.BeginMap(-1)
		require.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), "map head")

		// The map was never started, so there is nothing to break.
		require.Error(t, sink.EndMap())
	})

	t.Run("definite head", func(t *testing.T) {
		t.Parallel()

		sink := cborfmt.NewSink[string, int](failingWriter{err: writeErr})

		err := sink.BeginMap(1)
		require.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), "map head")
	})

	t.Run("entry", func(t *testing.T) {
		t.Parallel()

		sink := cborfmt.NewSink[string, int](failingWriter{err: writeErr})

		err := sink.WriteEntry("k", 1)
		require.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), "key of entry 0")
	})
}

func TestOptional(t *testing.T) {
	t.Parallel()

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		data, err := cborfmt.MarshalOptional(option.None[kv.Pairs[string, int]]())
		require.NoError(t, err)
		assert.Equal(t, []byte{0xf6}, data)

		result, err := cborfmt.UnmarshalOptional[string, int](data)
		require.NoError(t, err)
		assert.False(t, result.IsSome())
	})

	t.Run("present empty", func(t *testing.T) {
		t.Parallel()

		data, err := cborfmt.MarshalOptional(option.Some(kv.Pairs[string, int]{}))
		require.NoError(t, err)
		assert.Equal(t, []byte{0xa0}, data)

		result, err := cborfmt.UnmarshalOptional[string, int](data)
		require.NoError(t, err)
		assert.True(t, result.IsSome())
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		pairs := kv.Pairs[string, int]{kv.Of("k", 1)}

		data, err := cborfmt.MarshalOptional(option.Some(pairs))
		require.NoError(t, err)

		result, err := cborfmt.UnmarshalOptional[string, int](data)
		require.NoError(t, err)
		assert.Equal(t, option.Some(pairs), result)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := cborfmt.UnmarshalOptional[string, int]([]byte{0xf5})
		require.EqualError(t, err, "invalid type: simple value or float, expected a map")
	})
}

type record struct {
	ID     uint64                           `cbor:"id"`
	Tags   cborfmt.Map[string, string]      `cbor:"tags"`
	Scores cborfmt.Optional[string, int64]  `cbor:"scores"`
	Extra  cborfmt.Optional[string, string] `cbor:"extra"`
}

func TestStructFields(t *testing.T) {
	t.Parallel()

	original := record{
		ID:     7,
		Tags:   cborfmt.Map[string, string]{kv.Of("zone", "eu"), kv.Of("app", "db")},
		Scores: cborfmt.NewOptional(option.Some(kv.Pairs[string, int64]{kv.Of("z", int64(-1)), kv.Of("a", int64(10))})),
		Extra:  cborfmt.NewOptional(option.None[kv.Pairs[string, string]]()),
	}

	data, err := cbor.Marshal(original)
	require.NoError(t, err)

	var decoded record

	err = cbor.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
