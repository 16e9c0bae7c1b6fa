package plugs

import (
	"context"
	"maps"
)

// Transform lifts a function of one typed value into a stage.
// The stage reads its first positional argument as In and forwards the
// function's result as a Single value. Transform is the adapter to reach for
// when the step always succeeds.
//
// Example:
//
//	double := plugs.Transform(func(_ context.Context, n int) int {
//	    return n * 2
//	})
//
// A missing or mistyped argument fails the call with ErrMissingArgument or
// ErrArgumentType.
func Transform[In, Out any](fn func(context.Context, In) Out) Func {
	return func(ctx context.Context, in Args) (Result, error) {
		v, err := Arg[In](in, 0)
		if err != nil {
			return Result{}, err
		}
		return Single(fn(ctx, v)), nil
	}
}

// Apply lifts a function of one typed value that may fail into a stage.
// Errors returned by fn are passed through untouched.
//
// Example:
//
//	parse := plugs.Apply(func(_ context.Context, s string) (int, error) {
//	    return strconv.Atoi(s)
//	})
func Apply[In, Out any](fn func(context.Context, In) (Out, error)) Func {
	return func(ctx context.Context, in Args) (Result, error) {
		v, err := Arg[In](in, 0)
		if err != nil {
			return Result{}, err
		}
		out, err := fn(ctx, v)
		if err != nil {
			return Result{}, err
		}
		return Single(out), nil
	}
}

// Effect creates a stage for validation and side effects. It inspects the
// arguments, never changes them, and returns None so the next stage receives
// the same inputs. A returned error stops the call.
//
// Example:
//
//	requireUser := plugs.Effect(func(_ context.Context, in plugs.Args) error {
//	    if _, ok := in.Get("user"); !ok {
//	        return errors.New("user is required")
//	    }
//	    return nil
//	})
func Effect(fn func(context.Context, Args) error) Func {
	return func(ctx context.Context, in Args) (Result, error) {
		if err := fn(ctx, in); err != nil {
			return Result{}, err
		}
		return None(), nil
	}
}

// Merge creates a stage that accumulates named state. fn computes new named
// values from the call's arguments; they are merged over the incoming named
// values and forwarded as a Named result. The incoming map is not modified.
//
// Example:
//
//	addTotal := plugs.Merge(func(_ context.Context, in plugs.Args) (map[string]any, error) {
//	    price := plugs.KwargOr(in, "price", 0.0)
//	    qty := plugs.KwargOr(in, "qty", 0)
//	    return map[string]any{"total": price * float64(qty)}, nil
//	})
func Merge(fn func(context.Context, Args) (map[string]any, error)) Func {
	return func(ctx context.Context, in Args) (Result, error) {
		add, err := fn(ctx, in)
		if err != nil {
			return Result{}, err
		}
		named := make(map[string]any, len(in.Named)+len(add))
		maps.Copy(named, in.Named)
		maps.Copy(named, add)
		return Named(named), nil
	}
}

// Mutate runs fn only when condition holds. Otherwise the stage returns None
// and the next stage receives the same inputs.
func Mutate(condition func(context.Context, Args) bool, fn Func) Func {
	if fn == nil {
		panic("plugs: Mutate called with a nil Func")
	}
	return func(ctx context.Context, in Args) (Result, error) {
		if !condition(ctx, in) {
			return None(), nil
		}
		return fn(ctx, in)
	}
}

// Spread creates a stage with full control over forwarding: fn returns the
// positional and named values the next stage is called with.
func Spread(fn func(context.Context, Args) ([]any, map[string]any, error)) Func {
	return func(ctx context.Context, in Args) (Result, error) {
		positional, named, err := fn(ctx, in)
		if err != nil {
			return Result{}, err
		}
		return Positional(positional, named), nil
	}
}

// Constant creates a stage that ignores its arguments and forwards v.
func Constant(v any) Func {
	return func(context.Context, Args) (Result, error) {
		return Single(v), nil
	}
}
