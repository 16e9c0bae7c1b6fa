package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plugs",
		Short: "Pluggable function composition demos",
		Long: `plugs is a CLI tool for exploring pluggable function composition
through small demonstration pipes.

Each demo is a Pipe built from plugs stages. List them, run them with their
built-in inputs, or feed them your own arguments.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	addConfigFlags(rootCmd)

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newRunCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available demos",
		Long:  "Display a list of all available demo pipes with descriptions.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available demos:")
			fmt.Fprintln(out)
			for _, d := range getAllDemos() {
				fmt.Fprintf(out, "  %-12s %s\n", d.Name, d.Description)
			}
		},
	}
}
