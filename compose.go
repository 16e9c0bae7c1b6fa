package plugs

import (
	"context"
	"slices"
)

// ComposeTwo returns a Func that runs g, then calls f with g's result
// forwarded according to its variant:
//
//   - Positional(pos, named): f receives pos and named
//   - Named(m): f receives m as named values
//   - None: f receives the inputs the composed Func was called with
//   - Single(v): f receives v as its only positional value
//
// f's result and error are returned unchanged. An error from g stops the
// call before f runs and is returned unchanged as well.
//
// Example:
//
//	double := func(_ context.Context, in plugs.Args) (plugs.Result, error) {
//	    n, err := plugs.Arg[int](in, 0)
//	    return plugs.Single(n * 2), err
//	}
//	five := func(context.Context, plugs.Args) (plugs.Result, error) {
//	    return plugs.Single(5), nil
//	}
//	r, _ := plugs.ComposeTwo(double, five)(ctx, plugs.Args{}) // Single(10)
func ComposeTwo(f, g Func) Func {
	if f == nil || g == nil {
		panic("plugs: ComposeTwo called with a nil Func")
	}
	return func(ctx context.Context, in Args) (Result, error) {
		ret, err := g(ctx, in)
		if err != nil {
			return Result{}, err
		}
		return f(ctx, ret.Forward(in))
	}
}

// Compose folds fns into one Func. Composition reads like mathematical
// function composition: the last Func runs first and the first Func runs
// last, producing the overall result.
//
//	Compose(f1, f2, f3)  ==  ComposeTwo(f1, ComposeTwo(f2, f3))
//
// A single Func is returned as is. With no Funcs, Compose returns Identity.
// Compose panics if any Func is nil.
func Compose(fns ...Func) Func {
	for _, fn := range fns {
		if fn == nil {
			panic("plugs: Compose called with a nil Func")
		}
	}
	if len(fns) == 0 {
		return Identity
	}
	composed := fns[len(fns)-1]
	for i := len(fns) - 2; i >= 0; i-- {
		composed = ComposeTwo(fns[i], composed)
	}
	return composed
}

// Sequence is Compose with fns in execution order: the first Func runs
// first and the last Func produces the overall result.
func Sequence(fns ...Func) Func {
	reversed := slices.Clone(fns)
	slices.Reverse(reversed)
	return Compose(reversed...)
}
