package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hackseek-app/hackseek/internal/telemetry"
)

// Config holds the server tunables. Flags override the listen address and
// database path; secrets stay in the environment.
type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Pipeline  PipelineConfig   `yaml:"pipeline"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

type ServerConfig struct {
	Addr            string `yaml:"addr"`
	DBPath          string `yaml:"db_path"`
	SessionTTLHours int    `yaml:"session_ttl_hours"`
}

type PipelineConfig struct {
	DefaultDepth int `yaml:"default_depth"`
	DefaultLevel int `yaml:"default_level"`
	// Seed fixes the generator stream; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8870",
			DBPath:          "hackseek.db",
			SessionTTLHours: 24,
		},
		Pipeline: PipelineConfig{
			DefaultDepth: 3,
			DefaultLevel: 3,
		},
		Telemetry: telemetry.Config{
			ServiceName: "hackseek",
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.SessionTTLHours <= 0 {
		return fmt.Errorf("server.session_ttl_hours must be positive")
	}
	if c.Pipeline.DefaultDepth < 1 || c.Pipeline.DefaultDepth > 5 {
		return fmt.Errorf("pipeline.default_depth must be in [1,5]")
	}
	if c.Pipeline.DefaultLevel < 1 || c.Pipeline.DefaultLevel > 5 {
		return fmt.Errorf("pipeline.default_level must be in [1,5]")
	}
	return nil
}
