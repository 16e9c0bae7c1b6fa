package plugs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/sametrica/plugs"
)

var benchInc = plugs.Transform(func(_ context.Context, n int) int { return n + 1 })

// BenchmarkComposeTwo_Dispatch measures each result variant crossing one
// composition boundary.
func BenchmarkComposeTwo_Dispatch(b *testing.B) {
	ctx := context.Background()
	in := plugs.Params(1)

	variants := map[string]plugs.Func{
		"None":       plugs.Effect(func(context.Context, plugs.Args) error { return nil }),
		"Single":     plugs.Constant(1),
		"Named":      func(context.Context, plugs.Args) (plugs.Result, error) { return plugs.Named(map[string]any{"x": 1}), nil },
		"Positional": func(context.Context, plugs.Args) (plugs.Result, error) { return plugs.Positional([]any{1}, nil), nil },
	}

	for name, g := range variants {
		fn := plugs.ComposeTwo(plugs.Identity, g)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = fn(ctx, in) //nolint:errcheck // benchmark ignores errors
			}
		})
	}
}

// BenchmarkCompose_Depth measures composition depth.
func BenchmarkCompose_Depth(b *testing.B) {
	ctx := context.Background()

	for _, depth := range []int{1, 5, 10, 50} {
		fns := make([]plugs.Func, depth)
		for i := range fns {
			fns[i] = benchInc
		}
		fn := plugs.Compose(fns...)

		b.Run("depth-"+strconv.Itoa(depth), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = fn(ctx, plugs.Params(0)) //nolint:errcheck // benchmark ignores errors
			}
		})
	}
}

// BenchmarkPipe_Call measures the overhead a Pipe adds around its stages.
func BenchmarkPipe_Call(b *testing.B) {
	ctx := context.Background()

	b.Run("Raw", func(b *testing.B) {
		fn := plugs.Compose(benchInc, benchInc)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = fn(ctx, plugs.Params(i)) //nolint:errcheck // benchmark ignores errors
		}
	})

	b.Run("Pipe", func(b *testing.B) {
		p := plugs.NewPipe("bench", benchInc, benchInc)
		defer p.Close()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = p.Invoke(ctx, i) //nolint:errcheck // benchmark ignores errors
		}
	})

	b.Run("Error", func(b *testing.B) {
		errBench := errors.New("bench")
		p := plugs.NewPipe("bench", benchInc, plugs.Effect(func(context.Context, plugs.Args) error { return errBench }))
		defer p.Close()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = p.Invoke(ctx, i) //nolint:errcheck // benchmark ignores errors
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		p := plugs.NewPipe("bench", benchInc, benchInc)
		defer p.Close()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _ = p.Invoke(ctx, 1) //nolint:errcheck // benchmark ignores errors
			}
		})
	})
}
