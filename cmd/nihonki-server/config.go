package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jovid18/nihonki/internal/model"
	"github.com/jovid18/nihonki/internal/validate"
)

// serverConfig is the runtime configuration of the lesson server.
type serverConfig struct {
	DataDir         string        `mapstructure:"data-dir" validate:"required"`
	APIAddr         string        `mapstructure:"api-addr" validate:"required,hostname_port"`
	LogLevel        string        `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogFile         string        `mapstructure:"log-file"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" validate:"gt=0"`
	ConfigPath      string        `mapstructure:"-"` // not from config file
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("nihonki-server", pflag.ContinueOnError)
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/nihonki/server.yml)")
	flags.StringP("data-dir", "d", "", "directory of lesson files to serve")
	flags.StringP("api-addr", "a", "", "listen address")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "log file (default is stderr)")
	flags.Duration("shutdown-timeout", 0, "how long to wait for in-flight requests on shutdown")
	flags.BoolP("version", "v", false, "print version information")
	flags.BoolP("help", "h", false, "show help")
	return flags
}

var boundFlags = []string{"data-dir", "api-addr", "log-level", "log-file", "shutdown-timeout"}

func loadConfig(flags *pflag.FlagSet) (serverConfig, error) {
	var cfg serverConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("NIHONKI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("data-dir", model.DefaultDataDir)
	v.SetDefault("api-addr", net.JoinHostPort(model.DefaultBindHost, strconv.Itoa(model.DefaultAPIPort)))
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-file", "")
	v.SetDefault("shutdown-timeout", model.DefaultShutdownTimeout)

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
		v.SetConfigFile(filepath.Join(home, ".config", "nihonki", "server.yml"))
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
	if strings.HasPrefix(cfg.DataDir, "~/") {
		cfg.DataDir = filepath.Join(home, cfg.DataDir[2:])
	}
	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
