package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Config holds the harness configuration.
type Config struct {
	// Root is the directory to list.
	Root string `json:"root"`

	// Arena configuration
	ReserveMB     int  `json:"reserve_mb"`
	CommitChunkKB int  `json:"commit_chunk_kb"`
	TrackTail     bool `json:"track_tail"`

	// Variants to run, in order: slice, heap, arena.
	Variants []string `json:"variants"`

	LogLevel string `json:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Root:      ".",
		ReserveMB: 1024,
		Variants:  []string{"slice", "heap", "arena"},
		LogLevel:  "warn",
	}
}

// LoadConfig loads configuration from a JSON file. Fields missing from
// the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadConfigFromReader(f)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("config: empty root")
	}
	if c.ReserveMB <= 0 {
		return fmt.Errorf("config: reserve_mb must be positive, got %d", c.ReserveMB)
	}
	if c.CommitChunkKB < 0 {
		return fmt.Errorf("config: commit_chunk_kb must not be negative, got %d", c.CommitChunkKB)
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("config: no variants")
	}
	for _, v := range c.Variants {
		if _, ok := variants[v]; !ok {
			return fmt.Errorf("config: unknown variant %q", v)
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func splitVariants(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
