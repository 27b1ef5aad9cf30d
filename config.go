package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultHistoryFile = "/tmp/.smorth_history"
	defaultPrompt      = "#> "
)

// Config holds command settings, as loaded from a YAML file given by -config;
// any flag given explicitly overrides its file counterpart.
type Config struct {
	// History is the REPL history file.
	History string `yaml:"history"`

	// Prompt follows the stack listing in the REPL prompt.
	Prompt string `yaml:"prompt"`

	MaxDepth         int  `yaml:"max_depth"`
	FlatConditionals bool `yaml:"flat_conditionals"`
	Trace            bool `yaml:"trace"`

	// Prelude lists source files evaluated before any others.
	Prelude []string `yaml:"prelude"`
}

func defaultConfig() Config {
	return Config{
		History:  defaultHistoryFile,
		Prompt:   defaultPrompt,
		MaxDepth: defaultMaxDepth,
	}
}

// Load decodes YAML from r over any current values; unknown keys are an
// error, while an empty document changes nothing.
func (cfg *Config) Load(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadFile is like Load, reading the named file.
func (cfg *Config) LoadFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := cfg.Load(f); err != nil {
		return fmt.Errorf("failed to load config %v: %w", name, err)
	}
	return nil
}

func (cfg Config) vmOptions() []VMOption {
	opts := []VMOption{WithMaxDepth(cfg.MaxDepth)}
	if cfg.FlatConditionals {
		opts = append(opts, WithFlatConditionals())
	}
	return opts
}
