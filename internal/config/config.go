package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Foreign positioning strategies for lists that order their own items.
const (
	ForeignNone         = ""
	ForeignAlphabetical = "alphabetical"
	ForeignAppend       = "append"
)

// Commit modes decide what happens to the lists when a drop is accepted.
const (
	CommitMove  = "move"
	CommitCopy  = "copy"
	CommitAsync = "async"
)

type Config struct {
	LogFile    string        `yaml:"log_file"`
	AsyncDelay time.Duration `yaml:"async_delay"`
	Lists      []ListConfig  `yaml:"lists"`
}

type ListConfig struct {
	Title      string   `yaml:"title"`
	Group      string   `yaml:"group"`
	Horizontal bool     `yaml:"horizontal"`
	RTL        bool     `yaml:"rtl"`
	Handle     bool     `yaml:"handle"`
	SourceOnly bool     `yaml:"source_only"`
	Disabled   bool     `yaml:"disabled"`
	Foreign    string   `yaml:"foreign"`
	Commit     string   `yaml:"commit"`
	Items      []string `yaml:"items"`
}

// Default returns the board shown when no config file is given.
func Default() *Config {
	return &Config{
		AsyncDelay: 2 * time.Second,
		Lists: []ListConfig{
			{Title: "Simple", Group: "simple", Commit: CommitMove, Items: []string{"Foo", "Bar", "Baz", "Quux"}},
			{Title: "Simple too", Group: "simple", Commit: CommitMove, Items: []string{"Zomg", "Lol"}},
			{Title: "Sorted", Group: "foreign", Foreign: ForeignAlphabetical, Commit: CommitMove, Items: []string{"Bar", "Baz", "Foo", "Quux"}},
			{Title: "Anything goes", Group: "foreign", Commit: CommitMove, Items: []string{"Zomg", "Lol"}},
			{Title: "Palette", Group: "copies", SourceOnly: true, Commit: CommitCopy, Items: []string{"Foo", "Bar", "Baz"}},
			{Title: "Canvas", Group: "copies", Handle: true, Commit: CommitMove, Items: []string{"Quux"}},
			{Title: "Saved remotely", Group: "async", Commit: CommitAsync, Items: []string{"Foo", "Bar", "Baz", "Quux"}},
			{Title: "Row", Group: "row", Horizontal: true, Commit: CommitMove, Items: []string{"Foo", "Bar", "Baz", "Quux", "Zomg", "Lol"}},
			{Title: "RTL row", Group: "row", Horizontal: true, RTL: true, Commit: CommitMove, Items: []string{"Alef", "Bet", "Gimel", "Dalet"}},
		},
	}
}

// Load reads a YAML board description from path. Fields the file leaves out
// keep their defaults; a file that lists boards replaces the default lists.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	cfg.Lists = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Lists) == 0 {
		cfg.Lists = Default().Lists
	}
	for i := range cfg.Lists {
		if cfg.Lists[i].Commit == "" {
			cfg.Lists[i].Commit = CommitMove
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

var ErrNoLists = errors.New("no lists configured")

// Validate checks that every list can be bound to a drop zone.
func (c *Config) Validate() error {
	if len(c.Lists) == 0 {
		return ErrNoLists
	}
	if c.AsyncDelay < 0 {
		return fmt.Errorf("async_delay must not be negative, got %s", c.AsyncDelay)
	}

	seen := make(map[string]bool)
	for i, l := range c.Lists {
		if l.Title == "" {
			return fmt.Errorf("list %d: missing title", i)
		}
		if seen[l.Title] {
			return fmt.Errorf("list %q: duplicate title", l.Title)
		}
		seen[l.Title] = true

		if l.Group == "" {
			return fmt.Errorf("list %q: missing group", l.Title)
		}
		switch l.Foreign {
		case ForeignNone, ForeignAlphabetical, ForeignAppend:
		default:
			return fmt.Errorf("list %q: unknown foreign positioning %q", l.Title, l.Foreign)
		}
		switch l.Commit {
		case CommitMove, CommitCopy, CommitAsync:
		default:
			return fmt.Errorf("list %q: unknown commit mode %q", l.Title, l.Commit)
		}
		if l.RTL && !l.Horizontal {
			return fmt.Errorf("list %q: rtl requires horizontal", l.Title)
		}
	}
	return nil
}

// Groups returns the distinct groups in the order they first appear.
func (c *Config) Groups() []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range c.Lists {
		if !seen[l.Group] {
			seen[l.Group] = true
			out = append(out, l.Group)
		}
	}
	return out
}
