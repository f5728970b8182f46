package yamlfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"
	"gopkg.in/yaml.v3"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/format/yamlfmt"
	"github.com/tarantool/go-mapvec/kv"
)

func TestMarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pairs    kv.Pairs[string, int]
		expected string
	}{
		{
			name:     "empty",
			pairs:    nil,
			expected: "{}\n",
		},
		{
			name:     "keeps order",
			pairs:    kv.Pairs[string, int]{kv.Of("zeta", 3), kv.Of("alpha", 1), kv.Of("mid", 2)},
			expected: "zeta: 3\nalpha: 1\nmid: 2\n",
		},
		{
			name:     "duplicate keys are written as is",
			pairs:    kv.Pairs[string, int]{kv.Of("a", 1), kv.Of("a", 2)},
			expected: "a: 1\na: 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := yamlfmt.Marshal(tt.pairs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected kv.Pairs[string, int]
	}{
		{
			name:     "empty document",
			data:     "",
			expected: kv.Pairs[string, int]{},
		},
		{
			name:     "null",
			data:     "~\n",
			expected: kv.Pairs[string, int]{},
		},
		{
			name:     "empty flow mapping",
			data:     "{}\n",
			expected: kv.Pairs[string, int]{},
		},
		{
			name:     "keeps order",
			data:     "x: 1\ny: 2\nz: 3\n",
			expected: kv.Pairs[string, int]{kv.Of("x", 1), kv.Of("y", 2), kv.Of("z", 3)},
		},
		{
			name:     "does not sort",
			data:     "{b: 2, a: 1}\n",
			expected: kv.Pairs[string, int]{kv.Of("b", 2), kv.Of("a", 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := yamlfmt.Unmarshal[string, int]([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestUnmarshal_Alias(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		Base  yamlfmt.Map[string, int] `yaml:"base"`
		Other yamlfmt.Map[string, int] `yaml:"other"`
	}

	var decoded wrapper

	err := yaml.Unmarshal([]byte("base: &base {q: 1, p: 2}\nother: *base\n"), &decoded)
	require.NoError(t, err)

	expected := yamlfmt.Map[string, int]{kv.Of("q", 1), kv.Of("p", 2)}
	assert.Equal(t, expected, decoded.Base)
	assert.Equal(t, expected, decoded.Other)
}

func TestUnmarshal_DuplicateKeys(t *testing.T) {
	t.Parallel()

	// yaml.v3 rejects duplicate keys only when decoding into Go maps and structs.
	result, err := yamlfmt.Unmarshal[string, int]([]byte("a: 1\na: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, kv.Pairs[string, int]{kv.Of("a", 1), kv.Of("a", 2)}, result)
}

func TestUnmarshal_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		contains string
	}{
		{
			name:     "syntax",
			data:     "a: [1, 2\n",
			contains: "failed to decode yaml map, document",
		},
		{
			name:     "sequence",
			data:     "- 1\n- 2\n",
			contains: "invalid type: sequence, expected a map",
		},
		{
			name:     "scalar",
			data:     "hello\n",
			contains: "invalid type: scalar !!str, expected a map",
		},
		{
			name:     "second value has wrong type",
			data:     "a: 1\nb: two\n",
			contains: "value of entry 1 at line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := yamlfmt.Unmarshal[string, int]([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestUnmarshal_CapacityLimit(t *testing.T) {
	t.Parallel()

	result, err := yamlfmt.Unmarshal[string, int]([]byte("a: 1\nb: 2\nc: 3\n"), mapvec.WithCapacityLimit(1))
	require.NoError(t, err)
	assert.Len(t, result, 3)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		data, err := yamlfmt.MarshalOptional(option.None[kv.Pairs[string, int]]())
		require.NoError(t, err)
		assert.Equal(t, "null\n", string(data))

		result, err := yamlfmt.UnmarshalOptional[string, int](data)
		require.NoError(t, err)
		assert.False(t, result.IsSome())
	})

	t.Run("present empty", func(t *testing.T) {
		t.Parallel()

		data, err := yamlfmt.MarshalOptional(option.Some(kv.Pairs[string, int]{}))
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(data))

		result, err := yamlfmt.UnmarshalOptional[string, int](data)
		require.NoError(t, err)
		assert.True(t, result.IsSome())
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		result, err := yamlfmt.UnmarshalOptional[string, int]([]byte("k: 1\nj: 2\n"))
		require.NoError(t, err)
		assert.Equal(t, option.Some(kv.Pairs[string, int]{kv.Of("k", 1), kv.Of("j", 2)}), result)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := yamlfmt.UnmarshalOptional[string, int]([]byte("- 1\n"))
		require.EqualError(t, err, "invalid type: sequence, expected a map")
	})
}

type service struct {
	Name   string                           `yaml:"name"`
	Env    yamlfmt.Map[string, string]      `yaml:"env"`
	Ports  yamlfmt.Optional[string, int]    `yaml:"ports"`
	Labels yamlfmt.Optional[string, string] `yaml:"labels"`
}

func TestStructFields(t *testing.T) {
	t.Parallel()

	original := service{
		Name: "api",
		Env: yamlfmt.Map[string, string]{
			kv.Of("PATH", "/bin"),
			kv.Of("HOME", "/root"),
		},
		Ports:  yamlfmt.NewOptional(option.Some(kv.Pairs[string, int]{kv.Of("http", 80), kv.Of("admin", 8081)})),
		Labels: yamlfmt.NewOptional(option.None[kv.Pairs[string, string]]()),
	}

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	expected := `name: api
env:
    PATH: /bin
    HOME: /root
ports:
    http: 80
    admin: 8081
labels: null
`
	assert.Equal(t, expected, string(data))

	var decoded service

	err = yaml.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestStructFields_NullIntoPopulated(t *testing.T) {
	t.Parallel()

	target := service{
		Name:   "api",
		Env:    yamlfmt.Map[string, string]{kv.Of("PATH", "/bin")},
		Ports:  yamlfmt.NewOptional(option.Some(kv.Pairs[string, int]{kv.Of("http", 80)})),
		Labels: yamlfmt.NewOptional(option.Some(kv.Pairs[string, string]{kv.Of("team", "db")})),
	}

	err := yaml.Unmarshal([]byte("env: null\nports: null\nlabels: {}\n"), &target)
	require.NoError(t, err)

	// yaml.v3 resolves null fields without UnmarshalYAML.
	assert.Nil(t, target.Env)
	assert.True(t, target.Ports.IsSome())

	labels, ok := target.Labels.Get()
	assert.True(t, ok)
	assert.Empty(t, labels)
	assert.Equal(t, "api", target.Name)
}

type pointerService struct {
	Ports *yamlfmt.Optional[string, int] `yaml:"ports"`
}

func TestStructFields_NullPointerOptional(t *testing.T) {
	t.Parallel()

	ports := yamlfmt.NewOptional(option.Some(kv.Pairs[string, int]{kv.Of("http", 80)}))
	target := pointerService{Ports: &ports}

	err := yaml.Unmarshal([]byte("ports: null\n"), &target)
	require.NoError(t, err)
	assert.Nil(t, target.Ports)

	err = yaml.Unmarshal([]byte("ports:\n    admin: 8081\n"), &target)
	require.NoError(t, err)
	require.NotNil(t, target.Ports)
	assert.Equal(t, option.Some(kv.Pairs[string, int]{kv.Of("admin", 8081)}), target.Ports.Generic)
}

func TestSink_NodeBeforeBegin(t *testing.T) {
	t.Parallel()

	sink := yamlfmt.NewSink[string, int]()

	_, err := sink.Node()
	require.ErrorIs(t, err, yamlfmt.ErrNoNode)

	err = sink.WriteEntry("a", 1)
	require.ErrorIs(t, err, yamlfmt.ErrNoNode)
}
