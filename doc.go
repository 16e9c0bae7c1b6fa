// Package plugs chains plain functions into a single callable pipe.
//
// # Overview
//
// Every stage has the same shape:
//
//	type Func func(ctx context.Context, in Args) (Result, error)
//
// Args carries positional and named values. Result tells the composer what
// the next stage receives, through one explicit variant:
//
//	None()                  the inputs this stage received, unchanged
//	Single(v)               v as the only positional value
//	Named(m)                m as named values
//	Positional(pos, named)  pos and named
//
// This lets validators (None), transformers (Single), aggregators of named
// state (Named) and stages that need full control (Positional) share one
// pipeline without agreeing on a common data type.
//
// # Composition
//
// Compose reads like function composition: the last stage runs first.
//
//	double := plugs.Transform(func(_ context.Context, n int) int { return n * 2 })
//	five := plugs.Constant(5)
//
//	r, err := plugs.Compose(double, five)(ctx, plugs.Args{})
//	// r: Single(10)
//
// Sequence takes the same stages in execution order:
//
//	plugs.Sequence(five, double)
//
// Stage errors are never wrapped: the error a stage returns is the error
// the caller sees.
//
// # Pipes
//
// A Pipe names a composition and makes it chainable:
//
//	validate := plugs.NewPipe("validate", checkRequired)
//	enrich := plugs.NewPipe("enrich", addTotals, addCustomer)
//
//	flow, err := validate.Then(enrich)   // validate runs first
//	same, err := enrich.PrecededBy(validate)
//
//	r, err := flow.Call(ctx, plugs.Kwargs(map[string]any{"user": "ada"}))
//
// Then and PrecededBy accept another *Pipe or a Func. Any other operand
// fails with ErrInvalidOperand. Pipes never change after construction.
//
// # Adapters
//
// Transform, Apply, Effect, Merge, Mutate, Spread and Constant lift ordinary
// Go functions into stages. Arg and Kwarg read typed values out of Args.
//
// # Observability
//
// Each Pipe exposes a metricz registry, a tracez tracer and hookz events.
// See Pipe for the keys.
package plugs
