package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sametrica/plugs"
)

// Demo is a named pipe with a default input.
type Demo struct {
	Name        string
	Description string
	Input       plugs.Args
	Build       func() (*plugs.Pipe, error)
}

var errInvalidOrder = errors.New("invalid order")

// getAllDemos returns all registered demos in a consistent order.
func getAllDemos() []Demo {
	return []Demo{
		{
			Name:        "hello",
			Description: "String composition: the last stage runs first",
			Input:       plugs.Params("hello"),
			Build: func() (*plugs.Pipe, error) {
				return plugs.NewPipe("hello", suffix("!"), suffix(" world")), nil
			},
		},
		{
			Name:        "arithmetic",
			Description: "Single values flow through square(double(inc(x)))",
			Input:       plugs.Params(3),
			Build: func() (*plugs.Pipe, error) {
				return plugs.NewPipe("arithmetic", square, double, inc), nil
			},
		},
		{
			Name:        "accumulate",
			Description: "Named results accumulate keys across stages",
			Input:       plugs.Args{},
			Build: func() (*plugs.Pipe, error) {
				return plugs.NewPipe("accumulate", setKey("b", 2), setKey("a", 1)), nil
			},
		},
		{
			Name:        "order",
			Description: "Validate an order, then price it from named arguments",
			Input:       plugs.Kwargs(map[string]any{"amount": 10, "qty": 3}),
			Build: func() (*plugs.Pipe, error) {
				return plugs.NewPipe("order", priceOrder, validateOrder), nil
			},
		},
		{
			Name:        "chained",
			Description: "Two pipes joined with Then",
			Input:       plugs.Params(2),
			Build: func() (*plugs.Pipe, error) {
				first := plugs.NewPipe("inc-double", double, inc)
				second := plugs.NewPipe("square", square)
				return first.Then(second)
			},
		},
	}
}

// getDemoByName returns a specific demo by name.
func getDemoByName(name string) (Demo, bool) {
	for _, d := range getAllDemos() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

func demoNames() []string {
	demos := getAllDemos()
	names := make([]string, 0, len(demos))
	for _, d := range demos {
		names = append(names, d.Name)
	}
	return names
}

var (
	inc    = plugs.Transform(func(_ context.Context, n int) int { return n + 1 })
	double = plugs.Transform(func(_ context.Context, n int) int { return n * 2 })
	square = plugs.Transform(func(_ context.Context, n int) int { return n * n })
)

func suffix(s string) plugs.Func {
	return plugs.Transform(func(_ context.Context, in string) string { return in + s })
}

func setKey(key string, value any) plugs.Func {
	return plugs.Merge(func(context.Context, plugs.Args) (map[string]any, error) {
		return map[string]any{key: value}, nil
	})
}

var validateOrder = plugs.Effect(func(_ context.Context, in plugs.Args) error {
	amount, err := plugs.Kwarg[int](in, "amount")
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", errInvalidOrder, amount)
	}
	return nil
})

var priceOrder = plugs.Merge(func(_ context.Context, in plugs.Args) (map[string]any, error) {
	amount, err := plugs.Kwarg[int](in, "amount")
	if err != nil {
		return nil, err
	}
	qty := plugs.KwargOr(in, "qty", 1)
	currency := strings.ToUpper(plugs.KwargOr(in, "currency", "usd"))
	return map[string]any{"total": amount * qty, "currency": currency}, nil
})
