package kv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-mapvec/kv"
)

func TestOf(t *testing.T) {
	t.Parallel()

	pair := kv.Of("key", 42)
	assert.Equal(t, kv.Pair[string, int]{Key: "key", Value: 42}, pair)
}

func TestPairs_KeysValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		pairs          kv.Pairs[string, int]
		expectedKeys   []string
		expectedValues []int
	}{
		{
			name:           "nil",
			pairs:          nil,
			expectedKeys:   []string{},
			expectedValues: []int{},
		},
		{
			name:           "keeps order",
			pairs:          kv.Pairs[string, int]{kv.Of("b", 2), kv.Of("a", 1)},
			expectedKeys:   []string{"b", "a"},
			expectedValues: []int{2, 1},
		},
		{
			name:           "keeps duplicates",
			pairs:          kv.Pairs[string, int]{kv.Of("a", 1), kv.Of("a", 2)},
			expectedKeys:   []string{"a", "a"},
			expectedValues: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, len(tt.expectedKeys), tt.pairs.Len())
			assert.Equal(t, tt.expectedKeys, tt.pairs.Keys())
			assert.Equal(t, tt.expectedValues, tt.pairs.Values())
		})
	}
}

func TestPairs_All(t *testing.T) {
	t.Parallel()

	pairs := kv.Pairs[string, int]{kv.Of("z", 26), kv.Of("a", 1), kv.Of("z", 0)}

	var got kv.Pairs[string, int]
	for key, value := range pairs.All() {
		got = append(got, kv.Of(key, value))
	}

	assert.Equal(t, pairs, got)
}

func TestPairs_All_Break(t *testing.T) {
	t.Parallel()

	pairs := kv.Pairs[string, int]{kv.Of("a", 1), kv.Of("b", 2), kv.Of("c", 3)}

	var keys []string
	for key := range pairs.All() {
		if key == "b" {
			break
		}

		keys = append(keys, key)
	}

	assert.Equal(t, []string{"a"}, keys)
}
