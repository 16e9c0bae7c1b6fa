package plugs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	t.Run("Params And Kwargs", func(t *testing.T) {
		a := Params(1, "two")
		assert.Equal(t, 2, a.Len())
		assert.Nil(t, a.Named)

		k := Kwargs(map[string]any{"x": 1})
		assert.Equal(t, 0, k.Len())
		v, ok := k.Get("x")
		assert.True(t, ok)
		assert.Equal(t, 1, v)

		assert.True(t, Args{}.IsEmpty())
		assert.False(t, a.IsEmpty())
		assert.False(t, k.IsEmpty())
	})

	t.Run("With Copies", func(t *testing.T) {
		base := Args{Positional: []any{1}, Named: map[string]any{"a": 1}}
		derived := base.With("b", 2)

		assert.Equal(t, map[string]any{"a": 1}, base.Named)
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, derived.Named)

		derived.Positional[0] = 99
		assert.Equal(t, 1, base.Positional[0])
	})

	t.Run("At Bounds", func(t *testing.T) {
		a := Params("x")
		_, ok := a.At(-1)
		assert.False(t, ok)
		_, ok = a.At(1)
		assert.False(t, ok)
		v, ok := a.At(0)
		assert.True(t, ok)
		assert.Equal(t, "x", v)
	})
}

func TestArg(t *testing.T) {
	a := Params(3, "s", nil)

	n, err := Arg[int](a, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Arg[int](a, 1)
	assert.True(t, errors.Is(err, ErrArgumentType))

	_, err = Arg[int](a, 5)
	assert.True(t, errors.Is(err, ErrMissingArgument))

	v, err := Arg[any](a, 2)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = Arg[string](a, 2)
	assert.True(t, errors.Is(err, ErrArgumentType))

	var iface error
	iface, err = Arg[error](a, 2)
	require.NoError(t, err)
	assert.Nil(t, iface)
}

func TestKwarg(t *testing.T) {
	a := Kwargs(map[string]any{"name": "ada", "age": 36})

	name, err := Kwarg[string](a, "name")
	require.NoError(t, err)
	assert.Equal(t, "ada", name)

	_, err = Kwarg[string](a, "age")
	assert.ErrorIs(t, err, ErrArgumentType)

	_, err = Kwarg[string](a, "missing")
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Contains(t, err.Error(), `"missing"`)

	assert.Equal(t, 36, KwargOr(a, "age", 0))
	assert.Equal(t, 7, KwargOr(a, "missing", 7))
	assert.Equal(t, "fallback", KwargOr(a, "age", "fallback"))
}
