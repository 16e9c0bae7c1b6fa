package plugs

import "errors"

// Chaining and argument errors.
var (
	// ErrInvalidOperand is returned by Then and PrecededBy when the operand
	// is neither a *Pipe nor a stage function.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrMissingArgument is returned by Arg and Kwarg when the requested
	// position or name is absent.
	ErrMissingArgument = errors.New("missing argument")

	// ErrArgumentType is returned by Arg and Kwarg when the value does not
	// have the requested type.
	ErrArgumentType = errors.New("argument has wrong type")
)
