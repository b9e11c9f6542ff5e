// Package config loads named generator streams from YAML.
//
//	streams:
//	  - name: loot
//	    seed: 1234
//	  - name: legacy
//	    seed: 1234
//	    preset: minstd
//	  - name: tuned
//	    seed: 4321
//	    multiplier: 86284
//	    increment: 2
//	    modulus: 7263957720
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/zxfonline/microrand/random"
)

const (
	PresetMMIX   = "mmix"
	PresetMinStd = "minstd"
)

var (
	ErrUnknownStream = errors.New("config: unknown stream")
	ErrInvalidStream = errors.New("config: invalid stream")
)

// Stream describes one generator. Setting any of Multiplier, Increment or
// Modulus makes it a custom generator and Preset must then be empty.
type Stream struct {
	Name       string `yaml:"name"`
	Seed       int64  `yaml:"seed"`
	Preset     string `yaml:"preset,omitempty"`
	Multiplier *int64 `yaml:"multiplier,omitempty"`
	Increment  *int64 `yaml:"increment,omitempty"`
	Modulus    *int64 `yaml:"modulus,omitempty"`
}

type Config struct {
	Streams []Stream `yaml:"streams"`

	byName map[string]int
}

func (s *Stream) custom() bool {
	return s.Multiplier != nil || s.Increment != nil || s.Modulus != nil
}

func (s *Stream) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidStream)
	}
	if s.custom() {
		if s.Preset != "" {
			return fmt.Errorf("%w: %s: preset %q with custom parameters", ErrInvalidStream, s.Name, s.Preset)
		}
		if s.Multiplier == nil || s.Modulus == nil {
			return fmt.Errorf("%w: %s: custom stream needs multiplier and modulus", ErrInvalidStream, s.Name)
		}
		return nil
	}
	switch s.Preset {
	case "", PresetMMIX, PresetMinStd:
		return nil
	}
	return fmt.Errorf("%w: %s: unknown preset %q", ErrInvalidStream, s.Name, s.Preset)
}

// Generator builds a fresh generator for the stream.
func (s *Stream) Generator() (*random.Generator, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.custom() {
		var c int64
		if s.Increment != nil {
			c = *s.Increment
		}
		g, err := random.NewCustom(s.Seed, *s.Multiplier, c, *s.Modulus)
		if err != nil {
			return nil, fmt.Errorf("stream %s: %w", s.Name, err)
		}
		return g, nil
	}
	if s.Preset == PresetMinStd {
		return random.NewMinStd(s.Seed), nil
	}
	return random.New(s.Seed), nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.byName = make(map[string]int, len(cfg.Streams))
	for i := range cfg.Streams {
		s := &cfg.Streams[i]
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, ok := cfg.byName[s.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidStream, s.Name)
		}
		cfg.byName[s.Name] = i
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

func (c *Config) Stream(name string) (*Stream, error) {
	i, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStream, name)
	}
	return &c.Streams[i], nil
}

// Names returns the stream names in file order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Streams))
	for _, s := range c.Streams {
		names = append(names, s.Name)
	}
	return names
}
