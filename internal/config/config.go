package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/jh3/class-schedule/internal/clipboard"
	"github.com/jh3/class-schedule/internal/schedule"
	"github.com/jh3/class-schedule/internal/session"
	"github.com/jh3/class-schedule/internal/state"
	"github.com/jh3/class-schedule/internal/tmux"
)

const appName = "class-schedule"

// Tmux contains tmux-related configuration
type Tmux struct {
	Window string `yaml:"window"`
}

// Config holds all configuration options
type Config struct {
	Theme        string   `yaml:"theme,omitempty"`
	Sort         string   `yaml:"sort,omitempty"`
	Days         []string `yaml:"days,omitempty"`
	ScheduleFile string   `yaml:"schedule_file,omitempty"`
	Clipboard    string   `yaml:"clipboard,omitempty"`
	Collation    string   `yaml:"collation,omitempty"`
	LogFile      string   `yaml:"log_file,omitempty"`
	Tmux         Tmux     `yaml:"tmux"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:     string(state.DefaultTheme),
		Sort:      string(schedule.SortTime),
		Clipboard: clipboard.BackendAuto,
		Collation: "und",
		Tmux: Tmux{
			Window: tmux.DefaultWindow,
		},
	}
}

// configPath returns the path to the config file
func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, "config.yaml")
}

// Load loads config from the default path, falling back to defaults
func Load() *Config {
	cfg, err := LoadFile(configPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("ignoring config file", "path", configPath(), "error", err)
		}
		return DefaultConfig()
	}
	return cfg
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Path returns the config file path (for help text)
func Path() string {
	return configPath()
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	if _, err := c.ThemeValue(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if _, err := c.SortValue(); err != nil {
		return fmt.Errorf("sort: %w", err)
	}
	if _, err := c.DaySet(); err != nil {
		return fmt.Errorf("days: %w", err)
	}
	if _, err := c.Language(); err != nil {
		return fmt.Errorf("collation: %w", err)
	}
	if c.Clipboard != "" && !slices.Contains(clipboard.Backends, c.Clipboard) {
		return fmt.Errorf("clipboard: unknown backend %q", c.Clipboard)
	}
	return nil
}

func (c *Config) ThemeValue() (state.Theme, error) {
	return state.ParseTheme(c.Theme)
}

func (c *Config) SortValue() (schedule.SortOption, error) {
	return schedule.ParseSortOption(c.Sort)
}

// DaySet converts the day list. A missing list selects the whole week.
func (c *Config) DaySet() (session.DaySet, error) {
	if c.Days == nil {
		return session.AllDays(), nil
	}
	var set session.DaySet
	for _, name := range c.Days {
		d, err := session.ParseDay(name)
		if err != nil {
			return 0, err
		}
		set = set.With(d)
	}
	return set, nil
}

// Language is the collation language for title and teacher sorting.
func (c *Config) Language() (language.Tag, error) {
	if c.Collation == "" {
		return language.Und, nil
	}
	return language.Parse(c.Collation)
}

// StatePath returns the default log file location.
func StatePath(name string) string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, name)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", appName, name)
}
