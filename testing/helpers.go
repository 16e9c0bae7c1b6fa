// Package testing provides test utilities and helpers for plugs-based code.
//
// It includes a configurable mock stage that records every call, assertion
// helpers built on top of it, and small helpers for concurrent tests.
//
// Example usage:
//
//	func TestCheckout(t *testing.T) {
//		mock := plugstest.NewMockStage(t, "pricing").
//			WithReturn(plugs.Named(map[string]any{"total": 42}), nil)
//
//		pipe := plugs.NewPipe("checkout", submit, mock.Func())
//		_, err := pipe.Call(context.Background(), plugs.Kwargs(order))
//
//		require.NoError(t, err)
//		plugstest.AssertCalled(t, mock, 1)
//	}
package testing

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sametrica/plugs"
	"github.com/stretchr/testify/assert"
)

// MockStage provides a configurable mock pipeline stage.
// It tracks calls, allows configuring the returned Result, error and delay,
// and provides the state needed by the assertion helpers.
type MockStage struct { //nolint:govet // fieldalignment: Test helper struct optimized for functionality over memory efficiency
	t           *testing.T
	name        string
	callCount   int64
	lastArgs    plugs.Args
	returnVal   plugs.Result
	returnErr   error
	delay       time.Duration
	panicMsg    string
	mu          sync.RWMutex
	callHistory []MockCall
	maxHistory  int
}

// MockCall represents a single call to the mock stage.
type MockCall struct {
	Args      plugs.Args
	Timestamp time.Time
	Context   context.Context
}

// NewMockStage creates a new mock stage for testing.
// Until configured otherwise it returns None, so the next stage receives
// the same arguments.
func NewMockStage(t *testing.T, name string) *MockStage {
	return &MockStage{
		t:          t,
		name:       name,
		maxHistory: 100, // Keep last 100 calls by default
	}
}

// WithReturn configures the mock to return specific values.
// The mock will return these values for all subsequent calls.
func (m *MockStage) WithReturn(result plugs.Result, err error) *MockStage {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnVal = result
	m.returnErr = err
	return m
}

// WithDelay configures the mock to delay execution.
// The delay is cut short when the call's context is done.
func (m *MockStage) WithDelay(d time.Duration) *MockStage {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
	return m
}

// WithPanic configures the mock to panic with a specific message.
func (m *MockStage) WithPanic(msg string) *MockStage {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panicMsg = msg
	return m
}

// WithHistorySize configures how many calls to keep in history.
// Set to 0 to disable history tracking.
func (m *MockStage) WithHistorySize(size int) *MockStage {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxHistory = size
	if size == 0 {
		m.callHistory = nil
	} else if len(m.callHistory) > size {
		m.callHistory = m.callHistory[len(m.callHistory)-size:]
	}
	return m
}

// Name returns the name of the mock stage.
func (m *MockStage) Name() plugs.Name {
	return m.name
}

// Func returns the mock as a plugs.Func.
func (m *MockStage) Func() plugs.Func {
	return m.Call
}

// Call implements plugs.Func. It records the call and returns the configured
// values, potentially after a delay or panic.
func (m *MockStage) Call(ctx context.Context, in plugs.Args) (plugs.Result, error) {
	atomic.AddInt64(&m.callCount, 1)

	m.mu.Lock()
	m.lastArgs = in
	if m.maxHistory > 0 {
		m.callHistory = append(m.callHistory, MockCall{
			Args:      in,
			Timestamp: time.Now(),
			Context:   ctx,
		})
		if len(m.callHistory) > m.maxHistory {
			m.callHistory = m.callHistory[1:] // Remove oldest
		}
	}

	delay := m.delay
	returnVal := m.returnVal
	returnErr := m.returnErr
	panicMsg := m.panicMsg
	m.mu.Unlock()

	if panicMsg != "" {
		panic(panicMsg)
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return plugs.Result{}, ctx.Err()
		}
	}

	return returnVal, returnErr
}

// CallCount returns the number of times the stage has been called.
func (m *MockStage) CallCount() int {
	return int(atomic.LoadInt64(&m.callCount))
}

// LastArgs returns the arguments of the most recent call.
func (m *MockStage) LastArgs() plugs.Args {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastArgs
}

// CallHistory returns a copy of all recorded calls.
// Returns nil if history tracking is disabled.
func (m *MockStage) CallHistory() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.maxHistory == 0 {
		return nil
	}
	history := make([]MockCall, len(m.callHistory))
	copy(history, m.callHistory)
	return history
}

// Reset clears all call tracking.
func (m *MockStage) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	atomic.StoreInt64(&m.callCount, 0)
	m.lastArgs = plugs.Args{}
	m.callHistory = nil
}

// Assertion Helpers

// AssertCalled verifies that a mock stage was called exactly n times.
func AssertCalled(t *testing.T, mock *MockStage, expectedCalls int) {
	t.Helper()
	actualCalls := mock.CallCount()
	if actualCalls != expectedCalls {
		t.Errorf("expected mock stage %s to be called %d times, but was called %d times",
			mock.name, expectedCalls, actualCalls)
	}
}

// AssertNotCalled verifies that a mock stage was never called.
func AssertNotCalled(t *testing.T, mock *MockStage) {
	t.Helper()
	AssertCalled(t, mock, 0)
}

// AssertCalledWith verifies that the most recent call received args.
// Positional and named values are compared deeply; a nil and an empty
// collection are treated as equal.
func AssertCalledWith(t *testing.T, mock *MockStage, expected plugs.Args) {
	t.Helper()
	if mock.CallCount() == 0 {
		t.Errorf("expected mock stage %s to be called with %v, but it was never called",
			mock.name, expected)
		return
	}

	actual := mock.LastArgs()
	if !argsEqual(actual, expected) {
		t.Errorf("expected mock stage %s to be called with %s, but was called with %s",
			mock.name, formatArgs(expected), formatArgs(actual))
	}
}

func argsEqual(a, b plugs.Args) bool {
	if len(a.Positional) != len(b.Positional) || len(a.Named) != len(b.Named) {
		return false
	}
	if len(a.Positional) > 0 && !assert.ObjectsAreEqual(a.Positional, b.Positional) {
		return false
	}
	if len(a.Named) > 0 && !assert.ObjectsAreEqual(a.Named, b.Named) {
		return false
	}
	return true
}

func formatArgs(a plugs.Args) string {
	return fmt.Sprintf("(%v, %v)", a.Positional, a.Named)
}

// Helper Functions

// WaitForCalls waits for a mock stage to be called at least n times,
// with a timeout. Returns true if the expected calls were reached.
func WaitForCalls(mock *MockStage, expectedCalls int, timeout time.Duration) bool {
	start := time.Now()
	for time.Since(start) < timeout {
		if mock.CallCount() >= expectedCalls {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// ParallelTest runs a test function in parallel with multiple goroutines.
// Useful for testing that a pipe can be called concurrently.
func ParallelTest(t *testing.T, goroutines int, testFunc func(int)) {
	t.Helper()

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			testFunc(id)
		}(i)
	}

	wg.Wait()
}
