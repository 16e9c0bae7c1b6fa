package plugs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	in := Params("in").With("k", "v")

	t.Run("None", func(t *testing.T) {
		for _, r := range []Result{None(), {}} {
			assert.Equal(t, KindNone, r.Kind())
			assert.True(t, r.IsNone())
			assert.Nil(t, r.Value())
			assert.Equal(t, in, r.Forward(in))
			assert.Equal(t, "None", r.String())
		}
	})

	t.Run("Single", func(t *testing.T) {
		r := Single(0)
		assert.Equal(t, KindSingle, r.Kind())
		assert.False(t, r.IsNone())
		assert.Equal(t, 0, r.Value())
		assert.Equal(t, Args{Positional: []any{0}}, r.Forward(in))
		assert.Equal(t, "Single(0)", r.String())

		nilSingle := Single(nil)
		assert.False(t, nilSingle.IsNone())
		assert.Equal(t, Args{Positional: []any{nil}}, nilSingle.Forward(in))
	})

	t.Run("Named", func(t *testing.T) {
		m := map[string]any{"a": 1}
		r := Named(m)
		assert.Equal(t, KindNamed, r.Kind())
		assert.Equal(t, m, r.Value())
		assert.Equal(t, m, r.Map())
		assert.Equal(t, Args{Named: m}, r.Forward(in))
	})

	t.Run("Positional", func(t *testing.T) {
		r := Positional([]any{1, 2}, map[string]any{"k": 3})
		assert.Equal(t, KindPositional, r.Kind())
		want := Args{Positional: []any{1, 2}, Named: map[string]any{"k": 3}}
		assert.Equal(t, want, r.Value())
		assert.Equal(t, want, r.Forward(in))
		assert.Equal(t, map[string]any{"k": 3}, r.Map())
	})

	t.Run("Unwrap", func(t *testing.T) {
		s, err := Unwrap[string](Single("x"))
		require.NoError(t, err)
		assert.Equal(t, "x", s)

		_, err = Unwrap[int](Single("x"))
		assert.ErrorIs(t, err, ErrArgumentType)

		_, err = Unwrap[int](Named(nil))
		assert.ErrorIs(t, err, ErrArgumentType)
		assert.Contains(t, err.Error(), "named")
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "single", KindSingle.String())
	assert.Equal(t, "named", KindNamed.String())
	assert.Equal(t, "positional", KindPositional.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
