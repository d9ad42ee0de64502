package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration. Every field has a working
// default; a config file is optional.
type Config struct {
	ListenAddr  string     `yaml:"listen_addr"`
	DatabaseURL string     `yaml:"database_url"`
	CORS        CORSConfig `yaml:"cors"`
}

// CORSConfig controls cross-origin access for the builder frontend.
type CORSConfig struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowCredentials bool     `yaml:"allow_credentials"`
}

// DefaultConfig returns the configuration used when no file is given:
// the port the original service listened on and the development
// frontend origin.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: ":8000",
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowCredentials: true,
		},
	}
}

// LoadConfig reads and parses the YAML configuration file at path,
// expanding environment variables first. Strict mode (KnownFields)
// rejects typo'd keys. An empty path yields the defaults. DATABASE_URL
// from the environment wins over the file either way.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read configuration file '%s': %w", path, err)
		}

		decoder := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("YAML syntax error in '%s': %w", path, err)
		}
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8000"
	}

	return cfg, nil
}
