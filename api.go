package plugs

import "context"

// Name is a type alias for pipe names.
// Using this type encourages storing names as constants rather than
// using inline strings throughout your code.
//
// Example:
//
//	const (
//	    NormalizeName Name = "normalize"
//	    ScoreName     Name = "score"
//	)
//
//	normalize := plugs.NewPipe(NormalizeName, trim, lower)
type Name = string

// Func is a single pipeline stage.
//
// A stage receives the arguments of the call as Args and reports what the
// next stage should receive by returning one Result variant:
//
//   - None: forward the inputs this stage received, unchanged
//   - Single: forward one positional value
//   - Named: forward named values only
//   - Positional: forward positional and named values
//
// Any error aborts the whole call and is returned to the caller as is.
type Func func(ctx context.Context, in Args) (Result, error)

// Identity returns its inputs as a Positional result.
// Compose with no arguments returns Identity.
func Identity(_ context.Context, in Args) (Result, error) {
	return Positional(in.Positional, in.Named), nil
}
