package marshaller_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/format/jsonfmt"
	"github.com/tarantool/go-mapvec/kv"
	"github.com/tarantool/go-mapvec/marshaller"
)

func TestNewPairsMarshaller_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := marshaller.NewPairsMarshaller[string, int]("toml")
	require.ErrorIs(t, err, marshaller.ErrUnknownFormat)

	_, err = marshaller.NewOptionalMarshaller[string, int]("")
	require.ErrorIs(t, err, marshaller.ErrUnknownFormat)
}

func TestPairsMarshaller_RoundTrip(t *testing.T) {
	t.Parallel()

	original := kv.Pairs[string, int]{kv.Of("zeta", 26), kv.Of("alpha", 1), kv.Of("mu", 12)}

	for _, format := range marshaller.Formats() {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			marsh, err := marshaller.NewPairsMarshaller[string, int](format)
			require.NoError(t, err)
			assert.Equal(t, format, marsh.Format())

			data, err := marsh.Marshal(original)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			decoded, err := marsh.Unmarshal(data)
			require.NoError(t, err)

			if diff := cmp.Diff(original, decoded); diff != "" {
				t.Errorf("round trip changed pairs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPairsMarshaller_Marshal(t *testing.T) {
	t.Parallel()

	pairs := kv.Pairs[string, int]{kv.Of("b", 2), kv.Of("a", 1)}

	tests := []struct {
		format   marshaller.Format
		expected string
	}{
		{format: marshaller.FormatJSON, expected: `{"b":2,"a":1}`},
		{format: marshaller.FormatJSONC, expected: `{"b":2,"a":1}`},
		{format: marshaller.FormatYAML, expected: "b: 2\na: 1\n"},
		{format: marshaller.FormatMsgpack, expected: "\x82\xa1b\x02\xa1a\x01"},
		{format: marshaller.FormatCBOR, expected: "\xa2\x61b\x02\x61a\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			t.Parallel()

			marsh, err := marshaller.NewPairsMarshaller[string, int](tt.format)
			require.NoError(t, err)

			data, err := marsh.Marshal(pairs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestPairsMarshaller_MarshalError(t *testing.T) {
	t.Parallel()

	marsh, err := marshaller.NewPairsMarshaller[float64, int](marshaller.FormatJSON)
	require.NoError(t, err)

	_, err = marsh.Marshal(kv.Pairs[float64, int]{kv.Of(0.5, 1)})
	require.ErrorIs(t, err, jsonfmt.ErrUnsupportedKey)

	var marshalErr marshaller.MarshalError
	require.ErrorAs(t, err, &marshalErr)
	assert.Equal(t, marshaller.FormatJSON, marshalErr.Format)
}

func TestPairsMarshaller_UnmarshalJSONC(t *testing.T) {
	t.Parallel()

	data := []byte(`{
	// keep the order
	"second": 2,
	"first": 1, /* trailing comma */
}`)

	marsh, err := marshaller.NewPairsMarshaller[string, int](marshaller.FormatJSONC)
	require.NoError(t, err)

	result, err := marsh.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, kv.Pairs[string, int]{kv.Of("second", 2), kv.Of("first", 1)}, result)

	plain, err := marshaller.NewPairsMarshaller[string, int](marshaller.FormatJSON)
	require.NoError(t, err)

	_, err = plain.Unmarshal(data)
	require.Error(t, err)
}

func TestPairsMarshaller_UnmarshalError(t *testing.T) {
	t.Parallel()

	marsh, err := marshaller.NewPairsMarshaller[string, int](marshaller.FormatYAML)
	require.NoError(t, err)

	result, err := marsh.Unmarshal([]byte("- item1\n- item2\n"))
	require.Error(t, err)
	assert.Nil(t, result)
	require.Contains(t, err.Error(), "Failed to unmarshal yaml")

	var invalidType mapvec.InvalidTypeError
	require.ErrorAs(t, err, &invalidType)
	assert.Equal(t, "a map", invalidType.Expected)
}

func TestPairsMarshaller_DecodeOptions(t *testing.T) {
	t.Parallel()

	marsh, err := marshaller.NewPairsMarshaller[string, int](marshaller.FormatJSON, mapvec.WithCapacityLimit(0))
	require.NoError(t, err)

	result, err := marsh.Unmarshal([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	assert.Equal(t, kv.Pairs[string, int]{kv.Of("a", 1), kv.Of("b", 2)}, result)
}

func TestOptionalMarshaller(t *testing.T) {
	t.Parallel()

	for _, format := range marshaller.Formats() {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			marsh, err := marshaller.NewOptionalMarshaller[string, string](format)
			require.NoError(t, err)
			assert.Equal(t, format, marsh.Format())

			absent, err := marsh.Marshal(option.None[kv.Pairs[string, string]]())
			require.NoError(t, err)

			decoded, err := marsh.Unmarshal(absent)
			require.NoError(t, err)
			assert.False(t, decoded.IsSome())

			empty, err := marsh.Marshal(option.Some(kv.Pairs[string, string]{}))
			require.NoError(t, err)

			decoded, err = marsh.Unmarshal(empty)
			require.NoError(t, err)
			require.True(t, decoded.IsSome())

			pairs, _ := decoded.Get()
			assert.Empty(t, pairs)

			present := kv.Pairs[string, string]{kv.Of("host", "db1"), kv.Of("app", "api")}

			data, err := marsh.Marshal(option.Some(present))
			require.NoError(t, err)

			decoded, err = marsh.Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, option.Some(present), decoded)
		})
	}
}

func TestOptionalMarshaller_UnmarshalError(t *testing.T) {
	t.Parallel()

	marsh, err := marshaller.NewOptionalMarshaller[string, int](marshaller.FormatJSON)
	require.NoError(t, err)

	decoded, err := marsh.Unmarshal([]byte(`[1, 2]`))
	require.Error(t, err)
	assert.False(t, decoded.IsSome())

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
	assert.Equal(t, marshaller.FormatJSON, unmarshalErr.Format)
}
