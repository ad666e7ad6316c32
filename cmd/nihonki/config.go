package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jovid18/nihonki/internal/drill"
	"github.com/jovid18/nihonki/internal/model"
	"github.com/jovid18/nihonki/internal/validate"
)

// cliConfig holds the TUI configuration.
type cliConfig struct {
	Source         string            `mapstructure:"source" validate:"required"`
	Lesson         string            `mapstructure:"lesson"`
	Seed           uint64            `mapstructure:"seed"`
	RequestTimeout time.Duration     `mapstructure:"request-timeout" validate:"gt=0"`
	LogLevel       string            `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogFile        string            `mapstructure:"log-file"`
	Keys           drill.KeyBindings `mapstructure:"keys"`
	ConfigPath     string            `mapstructure:"-"` // not from config file
}

// newFlagSet declares the command-line flags. Flags that share a name
// with a config key override it.
func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("nihonki", pflag.ContinueOnError)
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/nihonki/config.yml)")
	flags.StringP("source", "s", "", "lesson directory or http(s) URL of a lesson server")
	flags.StringP("lesson", "l", "", "start drilling this lesson immediately")
	flags.Uint64("seed", 0, "shuffle seed for reproducible sessions (0 = random)")
	flags.Duration("request-timeout", 0, "timeout for each lesson fetch")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "log file (default is $HOME/.local/state/nihonki/nihonki.log)")
	flags.BoolP("version", "v", false, "print version information")
	flags.BoolP("help", "h", false, "show help")
	return flags
}

var boundFlags = []string{"source", "lesson", "seed", "request-timeout", "log-level", "log-file"}

func loadCLIConfig(flags *pflag.FlagSet) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("NIHONKI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	keys := drill.DefaultKeyBindings()
	v.SetDefault("source", model.DefaultDataDir)
	v.SetDefault("lesson", "")
	v.SetDefault("seed", 0)
	v.SetDefault("request-timeout", model.DefaultRequestTimeout)
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-file", "")
	v.SetDefault("keys.reveal", keys.Reveal)
	v.SetDefault("keys.wrong", keys.Wrong)
	v.SetDefault("keys.correct", keys.Correct)

	for _, name := range boundFlags {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return cfg, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	configPath, _ := flags.GetString("config")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "nihonki", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if _, err := os.Stat(v.ConfigFileUsed()); err == nil {
		cfg.ConfigPath = v.ConfigFileUsed()
	}

	// Expand ~ in paths
	cfg.Source = expandHome(cfg.Source, home)
	cfg.LogFile = expandHome(cfg.LogFile, home)

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
