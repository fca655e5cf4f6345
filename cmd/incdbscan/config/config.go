// Package config loads the YAML configuration consumed by the incdbscan
// command line driver. The engine itself takes no configuration file; this
// package only maps a user-facing document onto incdbscan.Options.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nnstream/incdbscan/metric"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Engine  Engine  `yaml:"engine"`
	Logging Logging `yaml:"logging"`
	Output  Output  `yaml:"output"`
}

type Engine struct {
	Eps        float64 `yaml:"eps"`
	MinPts     int     `yaml:"min_pts"`
	Metric     string  `yaml:"metric"`
	MinkowskiP float64 `yaml:"minkowski_p"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Output struct {
	Format string `yaml:"format"`
}

// ResolveConfigPath finds the config file: explicit path, else ./config.yaml,
// else the embedded default.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml", nil
	}

	return "", nil
}

// Load reads path, or falls back to the embedded default when path is empty.
func Load(path string) (*Config, error) {
	data := DefaultConfigYAML
	if path != "" {
		read, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		data = read
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Engine: Engine{
			Eps:        1.5,
			MinPts:     4,
			Metric:     "euclidean",
			MinkowskiP: 3,
		},
		Logging: Logging{Level: "info", Format: "text"},
		Output:  Output{Format: "text"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// MetricOptions translates the config's metric section into metric.Options.
func (c *Config) MetricOptions() (metric.Options, error) {
	switch c.Engine.Metric {
	case "", "euclidean":
		return metric.Options{Kind: metric.Euclidean}, nil
	case "manhattan":
		return metric.Options{Kind: metric.Manhattan}, nil
	case "minkowski":
		return metric.Options{Kind: metric.Minkowski, P: c.Engine.MinkowskiP}, nil
	default:
		return metric.Options{}, fmt.Errorf("config: unknown metric %q", c.Engine.Metric)
	}
}

// WriteDefault writes the embedded default config to path, failing if it
// already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, DefaultConfigYAML, 0o644)
}
