package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/pulse/internal/model"
)

const (
	defaultAPIHost = model.DefaultAPIHost
	defaultAPIPort = model.DefaultAPIPort
)

// appConfig is the web server's runtime configuration.
type appConfig struct {
	APIHost    string `mapstructure:"api-host"`
	APIPort    int    `mapstructure:"api-port"`
	APIAddr    string `mapstructure:"api-addr"`
	ConfigPath string `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PULSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-host", defaultAPIHost)
	v.SetDefault("api-port", defaultAPIPort)
	v.SetDefault("api-addr", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "pulse", "config.yml"))
	}

	configLoaded := true
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
		configLoaded = false
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if configLoaded {
		cfg.ConfigPath = v.ConfigFileUsed()
	}
	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return cfg, fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}

	if cfg.APIAddr == "" {
		cfg.APIAddr = net.JoinHostPort(cfg.APIHost, strconv.Itoa(cfg.APIPort))
	}

	return cfg, nil
}
