package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config mirrors config.yaml. Every key is optional.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Console ConsoleConfig `yaml:"console"`
	Server  ServerConfig  `yaml:"server"`
}

type CatalogConfig struct {
	// Source is empty for the bundled manifest, a .yaml/.json file path, or an http(s) URL.
	Source  string        `yaml:"source"`
	Timeout time.Duration `yaml:"timeout"`
}

type ConsoleConfig struct {
	DefaultPath          string        `yaml:"default_path"`
	HistoryLimit         int           `yaml:"history_limit"`
	SkipStartupAnimation bool          `yaml:"skip_startup_animation"`
	BlinkInterval        time.Duration `yaml:"blink_interval"`
	FrameInterval        time.Duration `yaml:"frame_interval"`
	Prompt               string        `yaml:"prompt"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{Timeout: 5 * time.Second},
		Console: ConsoleConfig{
			DefaultPath:          "C:/desktop",
			HistoryLimit:         50,
			SkipStartupAnimation: true,
			BlinkInterval:        500 * time.Millisecond,
			FrameInterval:        16 * time.Millisecond,
			Prompt:               "~$ ",
		},
		Server: ServerConfig{Addr: "127.0.0.1:8787"},
	}
}

// Path returns the config.yaml location.
func Path() (string, error) { return File("config.yaml") }

// Load reads config.yaml on top of Default. A missing file yields the defaults.
func Load() (Config, error) {
	cfg := Default()
	p, err := Path()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", p, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", p, err)
	}
	cfg.fill()
	return cfg, nil
}

// Save writes cfg to config.yaml, creating the directory if needed.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// fill restores defaults for values a partial file zeroed out.
func (c *Config) fill() {
	d := Default()
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = d.Catalog.Timeout
	}
	if c.Console.DefaultPath == "" {
		c.Console.DefaultPath = d.Console.DefaultPath
	}
	if c.Console.HistoryLimit <= 0 {
		c.Console.HistoryLimit = d.Console.HistoryLimit
	}
	if c.Console.BlinkInterval <= 0 {
		c.Console.BlinkInterval = d.Console.BlinkInterval
	}
	if c.Console.FrameInterval <= 0 {
		c.Console.FrameInterval = d.Console.FrameInterval
	}
	if c.Console.Prompt == "" {
		c.Console.Prompt = d.Console.Prompt
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
}
