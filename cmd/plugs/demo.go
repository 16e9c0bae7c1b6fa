package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sametrica/plugs"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[37m"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [name]",
		Short: "Run demonstration pipes",
		Long: `Run demonstration pipes with their built-in inputs.

When run without arguments, runs every demo in order.
When run with a demo name, runs that specific demo.

Run 'plugs list' to see available demos.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}

			var completions []string
			for _, name := range demoNames() {
				if strings.HasPrefix(name, toComplete) {
					completions = append(completions, name)
				}
			}
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				for _, d := range getAllDemos() {
					if err := s.runDemo(cmd.Context(), d, d.Input); err != nil {
						return err
					}
				}
				return nil
			}

			d, ok := getDemoByName(args[0])
			if !ok {
				return fmt.Errorf("unknown demo: %s\n\nRun 'plugs list' to see available demos", args[0])
			}
			return s.runDemo(cmd.Context(), d, d.Input)
		},
	}
}

// session carries what every command needs to run and report on a demo.
type session struct {
	p       printer
	logger  zerolog.Logger
	verbose bool
}

func newSession(cmd *cobra.Command) (session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return session{}, err
	}
	return session{
		p:       printer{out: cmd.OutOrStdout(), color: !cfg.NoColor},
		logger:  newLogger(cmd.ErrOrStderr(), cfg),
		verbose: cfg.Verbose,
	}, nil
}

// runDemo builds the demo pipe, calls it with in and prints the outcome.
// A stage error is printed, not returned.
func (s session) runDemo(ctx context.Context, d Demo, in plugs.Args) error {
	pipe, err := d.Build()
	if err != nil {
		return fmt.Errorf("building %s: %w", d.Name, err)
	}
	defer pipe.Close()

	var events chan plugs.PipeEvent
	if s.verbose {
		events = make(chan plugs.PipeEvent, 1)
		if err := pipe.OnCall(func(_ context.Context, e plugs.PipeEvent) error {
			events <- e
			return nil
		}); err != nil {
			return fmt.Errorf("watching %s: %w", d.Name, err)
		}
	}
	p := s.p

	if ctx == nil {
		ctx = context.Background()
	}

	p.line(colorCyan, "═══ %s ═══", strings.ToUpper(d.Name))
	p.line(colorGray, "%s", d.Description)
	p.line("", "pipe:   %s (%d stages)", pipe.Name(), pipe.Stages())
	p.line("", "input:  %s", formatArgs(in))

	result, err := pipe.Call(ctx, in)
	if err != nil {
		p.line(colorRed, "error:  %v", err)
	} else {
		p.line(colorGreen, "result: %s", result)
	}

	if events != nil {
		select {
		case e := <-events:
			logCall(s.logger, e)
		case <-time.After(time.Second):
			s.logger.Warn().Str("pipe", pipe.Name()).Msg("no call event received")
		}
	}

	m := pipe.Metrics()
	p.line(colorYellow, "calls=%.0f successes=%.0f failures=%.0f duration=%.0fms",
		m.Counter(plugs.PipeCallsTotal).Value(),
		m.Counter(plugs.PipeSuccessesTotal).Value(),
		m.Counter(plugs.PipeFailuresTotal).Value(),
		m.Gauge(plugs.PipeDurationMs).Value(),
	)
	p.line("", "")
	return nil
}

type printer struct {
	out   io.Writer
	color bool
}

func (p printer) line(color, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if p.color && color != "" {
		text = color + text + colorReset
	}
	fmt.Fprintln(p.out, text)
}

func formatArgs(a plugs.Args) string {
	return fmt.Sprintf("(%v, %v)", a.Positional, a.Named)
}
