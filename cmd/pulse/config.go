package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/pulse/internal/model"
)

const (
	defaultSkin      = model.DefaultSkin
	defaultFrameRate = model.DefaultFrameRate
	maxFrameRate     = 120
)

// cliConfig holds the terminal dashboard configuration.
type cliConfig struct {
	Skin               string `mapstructure:"skin"`
	Animations         bool   `mapstructure:"animations"`
	FrameRate          int    `mapstructure:"frame-rate"`
	ReverseScrollWheel bool   `mapstructure:"reverse-scroll-wheel"`
	DebugLog           string `mapstructure:"debug-log"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PULSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("skin", defaultSkin)
	v.SetDefault("animations", true)
	v.SetDefault("frame-rate", defaultFrameRate)
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("debug-log", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "pulse", "config.yml"))
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
	if cfg.FrameRate <= 0 || cfg.FrameRate > maxFrameRate {
		return cfg, fmt.Errorf("invalid frame-rate: %d", cfg.FrameRate)
	}
	if strings.HasPrefix(cfg.DebugLog, "~/") {
		cfg.DebugLog = filepath.Join(home, cfg.DebugLog[2:])
	}

	return cfg, nil
}
