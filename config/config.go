// Package config provides configuration loading and access for the maze
// simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Maze  MazeConfig  `yaml:"maze"`
	Robot RobotConfig `yaml:"robot"`
	Eval  EvalConfig  `yaml:"eval"`
}

// MazeConfig holds maze generation parameters.
type MazeConfig struct {
	Size     int `yaml:"size"`     // Side length, even, >= 4
	Attempts int `yaml:"attempts"` // Proposal budget per wall insertion
}

// RobotConfig holds navigation parameters.
type RobotConfig struct {
	MaxMove    int `yaml:"max_move"`    // Cells traversable in one command; also the flood look-ahead
	Program    int `yaml:"program"`     // Exploration program id after first center arrival
	MoveBudget int `yaml:"move_budget"` // Commands allowed before a run counts as failed
}

// EvalConfig holds evaluation harness parameters.
type EvalConfig struct {
	Iterations int `yaml:"iterations"` // Simulations per maze and program
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Maze.Size < 4 || c.Maze.Size%2 != 0 {
		return fmt.Errorf("maze.size %d must be an even number >= 4", c.Maze.Size)
	}
	if c.Maze.Attempts < 1 {
		return fmt.Errorf("maze.attempts %d must be positive", c.Maze.Attempts)
	}
	if c.Robot.MaxMove < 1 {
		return fmt.Errorf("robot.max_move %d must be positive", c.Robot.MaxMove)
	}
	if c.Robot.MoveBudget < 1 {
		return fmt.Errorf("robot.move_budget %d must be positive", c.Robot.MoveBudget)
	}
	if c.Eval.Iterations < 1 {
		return fmt.Errorf("eval.iterations %d must be positive", c.Eval.Iterations)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
