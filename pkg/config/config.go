// Package config loads runtime settings from TWINPANE_* environment variables.
// Command-line flags override them in main.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/datatug/twinpane/pkg/fsutils"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

const envPrefix = "TWINPANE"

type Config struct {
	StartDir   string `envconfig:"DIR" default:"~"`
	LogFile    string `envconfig:"LOG_FILE"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	Mouse      bool   `envconfig:"MOUSE" default:"true"`
	CPUProfile string `envconfig:"CPU_PROFILE"`
	MemProfile string `envconfig:"MEM_PROFILE"`
	PprofAddr  string `envconfig:"PPROF"`
}

// Load reads the environment. It does not validate.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func Default() *Config {
	return &Config{
		StartDir: "~",
		LogLevel: "info",
		Mouse:    true,
	}
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Normalize expands ~ in paths, makes StartDir absolute and checks it is a directory.
func (c *Config) Normalize() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	c.LogFile = fsutils.ExpandHome(c.LogFile)
	c.CPUProfile = fsutils.ExpandHome(c.CPUProfile)
	c.MemProfile = fsutils.ExpandHome(c.MemProfile)

	dir, err := filepath.Abs(fsutils.ExpandHome(c.StartDir))
	if err != nil {
		return fmt.Errorf("failed to resolve start directory %q: %w", c.StartDir, err)
	}
	exists, err := fsutils.DirExists(dir)
	if err != nil {
		return fmt.Errorf("failed to check start directory %q: %w", dir, err)
	}
	if !exists {
		return fmt.Errorf("start directory %q does not exist or is not a directory", dir)
	}
	c.StartDir = dir
	return nil
}
