package plugs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for Pipe.
const (
	// Metrics.
	PipeCallsTotal     = metricz.Key("pipe.calls.total")
	PipeSuccessesTotal = metricz.Key("pipe.successes.total")
	PipeFailuresTotal  = metricz.Key("pipe.failures.total")
	PipeStages         = metricz.Key("pipe.stages")
	PipeDurationMs     = metricz.Key("pipe.duration.ms")

	// Spans.
	PipeCallSpan = tracez.Key("pipe.call")

	// Tags.
	PipeTagName       = tracez.Tag("pipe.name")
	PipeTagCallID     = tracez.Tag("pipe.call_id")
	PipeTagStageCount = tracez.Tag("pipe.stage_count")
	PipeTagResultKind = tracez.Tag("pipe.result_kind")
	PipeTagSuccess    = tracez.Tag("pipe.success")
	PipeTagError      = tracez.Tag("pipe.error")

	// Hook event keys.
	PipeEventCallComplete = hookz.Key("pipe.call_complete")
)

// funcName names a plain Func operand when it is chained onto a Pipe.
const funcName Name = "func"

// PipeEvent describes one completed Pipe call.
// It is emitted via hookz after every call, successful or not.
type PipeEvent struct {
	CallID    string        // Unique per call, matches the span's pipe.call_id tag
	Name      Name          // Pipe name
	Stages    int           // Number of stages in the pipe
	Kind      Kind          // Variant of the result (KindNone on failure)
	Success   bool          // Whether the call returned without error
	Error     error         // The stage error, unchanged
	Duration  time.Duration // How long the call took
	Timestamp time.Time     // When the call finished
}

// Pipe wraps a composed chain of stages as a single named, reusable value.
//
// A Pipe is immutable: Then and PrecededBy never modify the receiver, they
// return a new Pipe wrapping the extended composition. Calling a Pipe is
// exactly calling its composed Func; results and stage errors are returned
// unchanged.
//
// Stage order follows Compose: the last transformation runs first.
//
//	double := plugs.Transform(func(_ context.Context, n int) int { return n * 2 })
//	inc := plugs.Transform(func(_ context.Context, n int) int { return n + 1 })
//
//	p := plugs.NewPipe("double-after-inc", double, inc)
//	r, _ := p.Invoke(ctx, 3) // Single(8)
//
// # Observability
//
// Metrics:
//   - pipe.calls.total: Counter of calls
//   - pipe.successes.total: Counter of calls that returned no error
//   - pipe.failures.total: Counter of calls that returned an error or panicked
//   - pipe.stages: Gauge of the number of stages
//   - pipe.duration.ms: Gauge of the last call's duration
//
// Traces:
//   - pipe.call: Span for each call, tagged with a unique pipe.call_id
//
// Events (via hooks):
//   - pipe.call_complete: Fired after every call
//
// Chained pipes get their own metrics, tracer and hooks.
type Pipe struct {
	composed Func
	clock    clockz.Clock
	metrics  *metricz.Registry
	tracer   *tracez.Tracer
	hooks    *hookz.Hooks[PipeEvent]
	name     Name
	stages   int
}

// NewPipe composes transformations with Compose and wraps the result.
// With no transformations the pipe behaves as Identity.
func NewPipe(name Name, transformations ...Func) *Pipe {
	return newPipe(name, Compose(transformations...), len(transformations), clockz.RealClock)
}

func newPipe(name Name, composed Func, stages int, clock clockz.Clock) *Pipe {
	metrics := metricz.New()
	metrics.Counter(PipeCallsTotal)
	metrics.Counter(PipeSuccessesTotal)
	metrics.Counter(PipeFailuresTotal)
	metrics.Gauge(PipeStages).Set(float64(stages))
	metrics.Gauge(PipeDurationMs)

	return &Pipe{
		name:     name,
		composed: composed,
		stages:   stages,
		clock:    clock,
		metrics:  metrics,
		tracer:   tracez.New(),
		hooks:    hookz.New[PipeEvent](),
	}
}

// Call invokes the composed stages with in and returns their result.
// A nil context is replaced with context.Background().
func (p *Pipe) Call(ctx context.Context, in Args) (result Result, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	p.metrics.Counter(PipeCallsTotal).Inc()
	start := p.clock.Now()

	callID := uuid.NewString()
	ctx, span := p.tracer.StartSpan(ctx, PipeCallSpan)
	span.SetTag(PipeTagCallID, callID)
	span.SetTag(PipeTagName, p.name)
	span.SetTag(PipeTagStageCount, strconv.Itoa(p.stages))

	returned := false
	defer func() {
		elapsed := p.clock.Since(start)
		p.metrics.Gauge(PipeDurationMs).Set(float64(elapsed.Milliseconds()))

		success := returned && err == nil
		if success {
			span.SetTag(PipeTagSuccess, "true")
			span.SetTag(PipeTagResultKind, result.Kind().String())
			p.metrics.Counter(PipeSuccessesTotal).Inc()
		} else {
			span.SetTag(PipeTagSuccess, "false")
			p.metrics.Counter(PipeFailuresTotal).Inc()
			if err != nil {
				span.SetTag(PipeTagError, err.Error())
			} else {
				span.SetTag(PipeTagError, "panic")
			}
		}
		span.Finish()

		event := PipeEvent{
			CallID:    callID,
			Name:      p.name,
			Stages:    p.stages,
			Success:   success,
			Error:     err,
			Duration:  elapsed,
			Timestamp: p.clock.Now(),
		}
		if success {
			event.Kind = result.Kind()
		}
		_ = p.hooks.Emit(ctx, PipeEventCallComplete, event) //nolint:errcheck
	}()

	result, err = p.composed(ctx, in)
	returned = true
	return result, err
}

// Invoke calls the pipe with positional arguments only.
func (p *Pipe) Invoke(ctx context.Context, positional ...any) (Result, error) {
	return p.Call(ctx, Params(positional...))
}

// Then returns a new Pipe that runs p first and forwards its result into
// other. other must be a *Pipe, a Func or a
// func(context.Context, Args) (Result, error); anything else, including a
// nil value, yields ErrInvalidOperand.
//
//	normalize.Then(score) // normalize runs, then score
func (p *Pipe) Then(other any) (*Pipe, error) {
	fn, name, stages, err := operand("Then", other)
	if err != nil {
		return nil, err
	}
	return newPipe(p.name+"|"+name, Compose(fn, p.composed), p.stages+stages, p.clock), nil
}

// PrecededBy returns a new Pipe that runs other first and forwards its
// result into p. It accepts the same operands as Then, so
// q.PrecededBy(p) behaves like p.Then(q).
func (p *Pipe) PrecededBy(other any) (*Pipe, error) {
	fn, name, stages, err := operand("PrecededBy", other)
	if err != nil {
		return nil, err
	}
	return newPipe(name+"|"+p.name, Compose(p.composed, fn), stages+p.stages, p.clock), nil
}

func operand(op string, other any) (Func, Name, int, error) {
	switch o := other.(type) {
	case *Pipe:
		if o != nil {
			return o.composed, o.name, o.stages, nil
		}
	case Func:
		if o != nil {
			return o, funcName, 1, nil
		}
	case func(context.Context, Args) (Result, error):
		if o != nil {
			return o, funcName, 1, nil
		}
	}
	return nil, "", 0, fmt.Errorf("%w: %s accepts a *Pipe or a Func, got %T", ErrInvalidOperand, op, other)
}

// Func returns the composed stages so the pipe can be used as a stage of
// another composition.
func (p *Pipe) Func() Func {
	return p.composed
}

// Name returns the name of the pipe. Chained pipes are named after their
// parts in execution order, joined by "|".
func (p *Pipe) Name() Name {
	return p.name
}

// Stages returns the number of stages composed into the pipe.
func (p *Pipe) Stages() int {
	return p.stages
}

// WithClock returns a copy of p that measures call durations with clock.
// The copy shares p's composition, metrics, tracer and hooks.
func (p *Pipe) WithClock(clock clockz.Clock) *Pipe {
	cp := *p
	cp.clock = clock
	return &cp
}

// Metrics returns the metrics registry for this pipe.
func (p *Pipe) Metrics() *metricz.Registry {
	return p.metrics
}

// Tracer returns the tracer for this pipe.
func (p *Pipe) Tracer() *tracez.Tracer {
	return p.tracer
}

// Close gracefully shuts down observability components.
func (p *Pipe) Close() error {
	if p.tracer != nil {
		p.tracer.Close()
	}
	p.hooks.Close()
	return nil
}

// OnCall registers a handler for completed calls.
// The handler is called asynchronously after each call.
func (p *Pipe) OnCall(handler func(context.Context, PipeEvent) error) error {
	_, err := p.hooks.Hook(PipeEventCallComplete, handler)
	return err
}
