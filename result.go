package plugs

import "fmt"

// Kind identifies which variant a Result holds.
type Kind uint8

// Result variants.
const (
	KindNone Kind = iota
	KindSingle
	KindNamed
	KindPositional
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSingle:
		return "single"
	case KindNamed:
		return "named"
	case KindPositional:
		return "positional"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Result is what a stage returns. It is a tagged union with four variants,
// each selecting how the next stage is called:
//
//	None()                  next stage receives the current stage's inputs
//	Single(v)               next stage receives v as its only positional value
//	Named(m)                next stage receives m as named values
//	Positional(pos, named)  next stage receives pos and named
//
// The zero Result is None. The variant is always explicit: a Single holding
// a slice or a map is forwarded as one value and never unpacked.
type Result struct {
	value any
	args  Args
	kind  Kind
}

// None returns the "no value" result.
func None() Result {
	return Result{}
}

// Single returns a result forwarding v as one positional value.
// Falsy values such as 0, "", false and nil are still single values.
func Single(v any) Result {
	return Result{kind: KindSingle, value: v}
}

// Named returns a result forwarding named values only.
func Named(named map[string]any) Result {
	return Result{kind: KindNamed, args: Args{Named: named}}
}

// Positional returns a result forwarding positional and named values.
func Positional(positional []any, named map[string]any) Result {
	return Result{kind: KindPositional, args: Args{Positional: positional, Named: named}}
}

// Kind reports the variant.
func (r Result) Kind() Kind {
	return r.kind
}

// IsNone reports whether r is the "no value" result.
func (r Result) IsNone() bool {
	return r.kind == KindNone
}

// Value returns the payload: the single value for Single, the named map for
// Named, the Args for Positional and nil for None.
func (r Result) Value() any {
	switch r.kind {
	case KindSingle:
		return r.value
	case KindNamed:
		return r.args.Named
	case KindPositional:
		return r.args
	default:
		return nil
	}
}

// Map returns the named values of a Named or Positional result.
func (r Result) Map() map[string]any {
	return r.args.Named
}

// Forward returns the arguments the next stage is called with, given the
// arguments in that produced r.
func (r Result) Forward(in Args) Args {
	switch r.kind {
	case KindSingle:
		return Args{Positional: []any{r.value}}
	case KindNamed, KindPositional:
		return r.args
	default:
		return in
	}
}

// String implements fmt.Stringer for debugging output.
func (r Result) String() string {
	switch r.kind {
	case KindSingle:
		return fmt.Sprintf("Single(%v)", r.value)
	case KindNamed:
		return fmt.Sprintf("Named(%v)", r.args.Named)
	case KindPositional:
		return fmt.Sprintf("Positional(%v, %v)", r.args.Positional, r.args.Named)
	default:
		return "None"
	}
}

// Unwrap returns the Single payload of r as a T.
// Any other variant yields ErrArgumentType.
func Unwrap[T any](r Result) (T, error) {
	var zero T
	if r.kind != KindSingle {
		return zero, fmt.Errorf("%w: result is %s, want single %T", ErrArgumentType, r.kind, zero)
	}
	return as[T](r.value, "result")
}
