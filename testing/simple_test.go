package testing

import (
	"context"
	"testing"

	"github.com/sametrica/plugs"
)

// Simple test to verify the testing infrastructure works.
func TestSimpleInfrastructure(t *testing.T) {
	ctx := context.Background()

	double := plugs.Transform(func(_ context.Context, n int) int { return n * 2 })
	add10 := plugs.Transform(func(_ context.Context, n int) int { return n + 10 })

	result, err := double(ctx, plugs.Params(21))
	if err != nil {
		t.Fatalf("stage failed: %v", err)
	}
	if result.Value() != 42 {
		t.Errorf("expected 42, got %v", result)
	}

	pipe := plugs.NewPipe("simple", double, add10)
	defer pipe.Close()

	result, err = pipe.Invoke(ctx, 1)
	if err != nil {
		t.Fatalf("pipe failed: %v", err)
	}

	n, err := plugs.Unwrap[int](result)
	if err != nil {
		t.Fatalf("unwrap failed: %v", err)
	}
	expected := 22 // (1 + 10) * 2
	if n != expected {
		t.Errorf("expected %d, got %d", expected, n)
	}
}

func TestHelpers(t *testing.T) {
	ctx := context.Background()

	mock := NewMockStage(t, "mock-test").WithReturn(plugs.Single("mocked"), nil)
	pipe := plugs.NewPipe("wrapped", mock.Func())
	defer pipe.Close()

	result, err := pipe.Invoke(ctx, "input")
	if err != nil {
		t.Fatalf("mock failed: %v", err)
	}
	if result.Value() != "mocked" {
		t.Errorf("expected 'mocked', got %v", result)
	}

	AssertCalled(t, mock, 1)
	AssertCalledWith(t, mock, plugs.Params("input"))
}
