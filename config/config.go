// Package config loads and validates maze configuration files before the
// core is invoked. Two formats are recognized: KEY=VALUE files parsed with
// godotenv, and YAML files (.yaml/.yml). Unrecognized keys are ignored.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Point is a row,col coordinate supplied by configuration.
type Point struct {
	Row int
	Col int
}

// Config holds the maze parameters read from a configuration file.
type Config struct {
	Width      int    // Number of columns, required
	Height     int    // Number of rows, required
	Entry      *Point // Entrance cell, defaults to the top-left corner
	Exit       *Point // Exit cell, defaults to the bottom-right corner
	Seed       *int64 // Generation seed, absent means non-deterministic
	Algorithm  string // "backtracker" or "prim"
	Perfect    bool   // Perfect maze (spanning tree) when true
	Pattern    bool   // Stamp the "42" pattern
	OutputFile string // Destination for the hex maze file
}

// Load reads, parses and validates the configuration file at path.
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		cfg, err = loadKeyValue(path)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Options translates the configuration into core generation arguments.
func (c *Config) Options() maze.GenerateOptions {
	opts := maze.GenerateOptions{
		Width:     c.Width,
		Height:    c.Height,
		Seed:      c.Seed,
		Algorithm: maze.Algorithm(c.Algorithm),
		Perfect:   c.Perfect,
		Pattern:   c.Pattern,
	}
	if c.Entry != nil {
		opts.Entrance = &maze.CellPosition{Row: c.Entry.Row, Col: c.Entry.Col}
	}
	if c.Exit != nil {
		opts.Exit = &maze.CellPosition{Row: c.Exit.Row, Col: c.Exit.Col}
	}
	return opts
}

// loadKeyValue parses a KEY=VALUE configuration file.
func loadKeyValue(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaults()
	for key, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, fmt.Errorf("config key %s cannot be empty", key)
		}

		switch strings.ToUpper(key) {
		case "WIDTH":
			cfg.Width, err = parseInt(key, raw)
		case "HEIGHT":
			cfg.Height, err = parseInt(key, raw)
		case "ENTRY":
			cfg.Entry, err = parsePoint(key, raw)
		case "EXIT":
			cfg.Exit, err = parsePoint(key, raw)
		case "SEED":
			var seed int64
			seed, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				err = fmt.Errorf("config key SEED must be an integer, got %q", raw)
				break
			}
			cfg.Seed = &seed
		case "ALGORITHM":
			cfg.Algorithm = strings.ToLower(raw)
		case "PERFECT":
			cfg.Perfect, err = parseBool(key, raw)
		case "PATTERN":
			cfg.Pattern, err = parseBool(key, raw)
		case "OUTPUT_FILE":
			cfg.OutputFile = raw
		default:
			// Unrecognized keys are ignored.
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// yamlConfig mirrors Config for YAML decoding; optional values are pointers
// so absence is distinguishable from zero.
type yamlConfig struct {
	Width      *int   `yaml:"width"`
	Height     *int   `yaml:"height"`
	Entry      string `yaml:"entry"`
	Exit       string `yaml:"exit"`
	Seed       *int64 `yaml:"seed"`
	Algorithm  string `yaml:"algorithm"`
	Perfect    *bool  `yaml:"perfect"`
	Pattern    *bool  `yaml:"pattern"`
	OutputFile string `yaml:"output_file"`
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg := defaults()
	if raw.Width != nil {
		cfg.Width = *raw.Width
	}
	if raw.Height != nil {
		cfg.Height = *raw.Height
	}
	if raw.Entry != "" {
		if cfg.Entry, err = parsePoint("entry", raw.Entry); err != nil {
			return nil, err
		}
	}
	if raw.Exit != "" {
		if cfg.Exit, err = parsePoint("exit", raw.Exit); err != nil {
			return nil, err
		}
	}
	cfg.Seed = raw.Seed
	if raw.Algorithm != "" {
		cfg.Algorithm = strings.ToLower(raw.Algorithm)
	}
	if raw.Perfect != nil {
		cfg.Perfect = *raw.Perfect
	}
	if raw.Pattern != nil {
		cfg.Pattern = *raw.Pattern
	}
	if raw.OutputFile != "" {
		cfg.OutputFile = raw.OutputFile
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Algorithm:  string(maze.Backtracker),
		Perfect:    true,
		OutputFile: "maze.txt",
	}
}

// validate checks the parameters the same way the core will, so errors
// surface to the caller before generation starts.
func (c *Config) validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("config keys WIDTH and HEIGHT are required")
	}
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("WIDTH and HEIGHT must both be at least 2, got %dx%d", c.Width, c.Height)
	}

	inBounds := func(p *Point) bool {
		return p.Row >= 0 && p.Row < c.Height && p.Col >= 0 && p.Col < c.Width
	}
	if c.Entry != nil && !inBounds(c.Entry) {
		return fmt.Errorf("ENTRY %d,%d is outside maze bounds", c.Entry.Row, c.Entry.Col)
	}
	if c.Exit != nil && !inBounds(c.Exit) {
		return fmt.Errorf("EXIT %d,%d is outside maze bounds", c.Exit.Row, c.Exit.Col)
	}
	entry, exit := c.entryOrDefault(), c.exitOrDefault()
	if entry == exit {
		return fmt.Errorf("ENTRY and EXIT cannot be the same")
	}

	switch c.Algorithm {
	case string(maze.Backtracker), string(maze.Prim):
	case "backtracking": // original spelling
		c.Algorithm = string(maze.Backtracker)
	case "prims": // original spelling
		c.Algorithm = string(maze.Prim)
	default:
		return fmt.Errorf("ALGORITHM must be %q or %q, got %q", maze.Backtracker, maze.Prim, c.Algorithm)
	}

	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("OUTPUT_FILE must be a non-empty path")
	}
	return nil
}

func (c *Config) entryOrDefault() Point {
	if c.Entry != nil {
		return *c.Entry
	}
	return Point{Row: 0, Col: 0}
}

func (c *Config) exitOrDefault() Point {
	if c.Exit != nil {
		return *c.Exit
	}
	return Point{Row: c.Height - 1, Col: c.Width - 1}
}

func parseInt(key, raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config key %s must be an integer, got %q", strings.ToUpper(key), raw)
	}
	return value, nil
}

func parseBool(key, raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("config key %s must be true or false, got %q", strings.ToUpper(key), raw)
	}
}

func parsePoint(key, raw string) (*Point, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("config key %s must be in row,col format, got %q", strings.ToUpper(key), raw)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("config key %s coordinates must be integers, got %q", strings.ToUpper(key), raw)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("config key %s coordinates must be integers, got %q", strings.ToUpper(key), raw)
	}
	return &Point{Row: row, Col: col}, nil
}
