// Package config loads the document collection and display settings from a
// YAML file, with NOTEDECK_* environment variables layered on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/errors"
	"github.com/notedeck/notedeck/internal/logger"
	"github.com/notedeck/notedeck/internal/sandbox"
)

// EnvPrefix marks environment overrides: NOTEDECK_THEME -> theme.
const EnvPrefix = "NOTEDECK_"

// DefaultSandbox is the capability set applied when the config names none.
const DefaultSandbox = sandbox.TokenAllowScripts + " " + sandbox.TokenAllowSameOrigin

// Document is one entry of the documents list. Exactly one of Content,
// File and URL is set.
type Document struct {
	ID      string `yaml:"id" koanf:"id"`
	Name    string `yaml:"name,omitempty" koanf:"name"`
	Content string `yaml:"content,omitempty" koanf:"content"`
	File    string `yaml:"file,omitempty" koanf:"file"`
	URL     string `yaml:"url,omitempty" koanf:"url"`
	Format  string `yaml:"format,omitempty" koanf:"format"`
}

// Config is the notedeck configuration file.
type Config struct {
	Title     string     `yaml:"title" koanf:"title"`
	Theme     string     `yaml:"theme" koanf:"theme"`
	Sandbox   string     `yaml:"sandbox" koanf:"sandbox"`
	Initial   string     `yaml:"initial,omitempty" koanf:"initial"`
	Timeout   string     `yaml:"timeout" koanf:"timeout"`
	Notify    bool       `yaml:"notify,omitempty" koanf:"notify"`
	Documents []Document `yaml:"documents,omitempty" koanf:"documents"`

	path string
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Title:   "notedeck",
		Theme:   "dark-purple",
		Sandbox: DefaultSandbox,
		Timeout: "15s",
	}
}

// DefaultPath returns ~/.notedeck/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".notedeck", "config.yaml"), nil
}

// Load reads the configuration from path, then overlays environment
// variable overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()
	cfg.path = path

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.ConfigLoadFailed(path, err)
	} else {
		logger.Debug("Config: %s not found, using defaults", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.ConfigLoadFailed(path, fmt.Errorf("loading env overrides: %w", err))
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.ComponentLogger("config").Info("config loaded",
		"path", path,
		"documents", len(cfg.Documents),
		"sandbox", cfg.Sandbox,
	)
	return cfg, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// BaseDir is the directory relative file locators resolve against.
func (c *Config) BaseDir() string {
	if c.path == "" {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(c.path)
}

// Validate checks that the configuration describes a usable collection.
func (c *Config) Validate() error {
	if _, err := sandbox.Parse(c.Sandbox); err != nil {
		return err
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("invalid timeout %q", c.Timeout))
		}
		if d <= 0 {
			return errors.ConfigInvalid("timeout must be positive")
		}
	}

	seen := make(map[string]bool, len(c.Documents))
	for i, d := range c.Documents {
		if strings.TrimSpace(d.ID) == "" {
			return errors.MissingDocumentID(i)
		}
		if seen[d.ID] {
			return errors.DuplicateDocument(d.ID)
		}
		seen[d.ID] = true

		sources := 0
		for _, s := range []string{d.Content, d.File, d.URL} {
			if s != "" {
				sources++
			}
		}
		if sources != 1 {
			return errors.ConfigInvalid(fmt.Sprintf("document %q must set exactly one of content, file or url", d.ID))
		}

		if _, err := document.ParseFormat(d.Format); err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("document %q: %v", d.ID, err))
		}
	}

	return nil
}

// Policy returns the parsed sandbox capability set.
func (c *Config) Policy() sandbox.Policy {
	p, err := sandbox.Parse(c.Sandbox)
	if err != nil {
		return sandbox.Strict()
	}
	return p
}

// LoadTimeout returns the per-load timeout, zero meaning the default.
func (c *Config) LoadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Collection builds the document collection. An empty documents list
// yields the built-in pages.
func (c *Config) Collection() (*document.Collection, error) {
	if len(c.Documents) == 0 {
		return document.Builtin(), nil
	}

	entries := make([]document.Entry, 0, len(c.Documents))
	for _, d := range c.Documents {
		entries = append(entries, document.Entry{
			ID:      d.ID,
			Name:    d.Name,
			Content: d.content(),
		})
	}
	return document.NewCollection(entries...)
}

func (d Document) content() document.Content {
	switch {
	case d.Content != "":
		f, _ := document.ParseFormat(d.Format)
		return document.Inline(d.Content, f)
	case d.File != "":
		return document.Locate(d.File, d.format(d.File))
	default:
		return document.Locate(d.URL, d.format(d.URL))
	}
}

// format honours an explicit format and otherwise guesses from the locator.
func (d Document) format(locator string) document.Format {
	if d.Format != "" {
		f, _ := document.ParseFormat(d.Format)
		return f
	}
	return document.DetectFormat(locator)
}

// Save writes the configuration to path as YAML, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	c.path = path
	return nil
}

// Starter returns the config written by `notedeck init`: one document of
// each kind so the file doubles as documentation.
func Starter() *Config {
	cfg := DefaultConfig()
	cfg.Documents = []Document{
		{
			ID:      "welcome",
			Name:    "Welcome",
			Content: "<h1>Welcome to notedeck</h1>\n<p>Edit this file to list your own documents.</p>\n",
			Format:  "html",
		},
		{
			ID:   "readme",
			Name: "README",
			File: "README.md",
		},
		{
			ID:   "go",
			Name: "The Go Programming Language",
			URL:  "https://go.dev/",
		},
	}
	return cfg
}
