package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sametrica/plugs"
)

func newRunCmd() *cobra.Command {
	var inputs []string

	cmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Run a demo pipe with your own arguments",
		Long: `Run a demo pipe with arguments given on the command line.

Each --input is one argument. KEY=VALUE becomes a named argument, anything
else is positional. Values are parsed as int, float or bool when possible
and kept as strings otherwise. Without --input the demo's own input is used.

Examples:
  plugs run arithmetic --input 5
  plugs run order --input amount=7 --input qty=2 --input currency=eur`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := getDemoByName(args[0])
			if !ok {
				return fmt.Errorf("unknown demo: %s\n\nRun 'plugs list' to see available demos", args[0])
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			in := d.Input
			if len(inputs) > 0 {
				in = parseInputs(inputs)
			}
			return s.runDemo(cmd.Context(), d, in)
		},
	}

	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "Argument to pass; KEY=VALUE for a named argument")
	return cmd
}

// parseInputs turns command line inputs into Args.
func parseInputs(inputs []string) plugs.Args {
	var in plugs.Args
	for _, raw := range inputs {
		if key, value, ok := strings.Cut(raw, "="); ok && key != "" {
			in = in.With(key, parseValue(value))
			continue
		}
		in.Positional = append(in.Positional, parseValue(raw))
	}
	return in
}

func parseValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
