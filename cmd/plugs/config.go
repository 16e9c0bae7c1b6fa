package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Each is a persistent flag on the root command and
// can be set through a PLUGS_ prefixed environment variable.
const (
	keyNoColor   = "no-color"
	keyVerbose   = "verbose"
	keyLogFormat = "log-format"
	keyEnvFile   = "env-file"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// Config holds settings shared by all commands.
type Config struct {
	NoColor   bool
	Verbose   bool
	LogFormat string
}

func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.Bool(keyNoColor, false, "Disable colored output")
	flags.Bool(keyVerbose, false, "Log every pipe call")
	flags.String(keyLogFormat, logFormatConsole, "Log format: console or json")
	flags.String(keyEnvFile, "", "Load environment variables from this file first")
}

// loadConfig resolves flags, environment and an optional env file.
// Explicit flags win over the environment, which wins over defaults.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PLUGS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	if path := v.GetString(keyEnvFile); path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("loading env file %s: %w", path, err)
		}
	}

	cfg := Config{
		NoColor:   v.GetBool(keyNoColor),
		Verbose:   v.GetBool(keyVerbose),
		LogFormat: strings.ToLower(v.GetString(keyLogFormat)),
	}
	switch cfg.LogFormat {
	case logFormatConsole, logFormatJSON:
	default:
		return Config{}, fmt.Errorf("unknown log format %q, want %s or %s", cfg.LogFormat, logFormatConsole, logFormatJSON)
	}
	return cfg, nil
}
