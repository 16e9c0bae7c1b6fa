package plugs

import (
	"fmt"
	"maps"
	"slices"
)

// Args holds the arguments of a stage call: an ordered list of positional
// values and a set of named values. Either part may be empty.
//
// Stages should treat Args as read-only. Use With to derive a copy with an
// extra named value.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Params builds Args from positional values only.
func Params(positional ...any) Args {
	return Args{Positional: positional}
}

// Kwargs builds Args from named values only.
func Kwargs(named map[string]any) Args {
	return Args{Named: named}
}

// With returns a copy of a with name set to value.
// The receiver is left untouched.
func (a Args) With(name string, value any) Args {
	named := make(map[string]any, len(a.Named)+1)
	maps.Copy(named, a.Named)
	named[name] = value
	return Args{
		Positional: slices.Clone(a.Positional),
		Named:      named,
	}
}

// Len returns the number of positional values.
func (a Args) Len() int {
	return len(a.Positional)
}

// At returns the positional value at index i.
func (a Args) At(i int) (any, bool) {
	if i < 0 || i >= len(a.Positional) {
		return nil, false
	}
	return a.Positional[i], true
}

// Get returns the named value for name.
func (a Args) Get(name string) (any, bool) {
	v, ok := a.Named[name]
	return v, ok
}

// IsEmpty reports whether a carries no positional and no named values.
func (a Args) IsEmpty() bool {
	return len(a.Positional) == 0 && len(a.Named) == 0
}

// Arg returns the positional value at index i as a T.
//
// A missing position yields ErrMissingArgument; a value of another type
// yields ErrArgumentType. A nil value is accepted only when T is an
// interface type.
func Arg[T any](a Args, i int) (T, error) {
	var zero T
	v, ok := a.At(i)
	if !ok {
		return zero, fmt.Errorf("%w: position %d (have %d)", ErrMissingArgument, i, a.Len())
	}
	return as[T](v, fmt.Sprintf("position %d", i))
}

// Kwarg returns the named value for name as a T.
// Errors follow the same rules as Arg.
func Kwarg[T any](a Args, name string) (T, error) {
	var zero T
	v, ok := a.Get(name)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrMissingArgument, name)
	}
	return as[T](v, fmt.Sprintf("%q", name))
}

// KwargOr returns the named value for name as a T, or fallback when the name
// is absent or holds another type.
func KwargOr[T any](a Args, name string, fallback T) T {
	v, err := Kwarg[T](a, name)
	if err != nil {
		return fallback
	}
	return v
}

func as[T any](v any, where string) (T, error) {
	var zero T
	if v == nil {
		// Only interface types hold nil without a concrete type.
		if any(zero) == nil {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: %s is nil, want %T", ErrArgumentType, where, zero)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, want %T", ErrArgumentType, where, v, zero)
	}
	return t, nil
}
