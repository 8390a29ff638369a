package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Backends BackendsConfig `yaml:"backends"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

// BackendsConfig holds the base URLs of the two upstream services. They are
// independent origins; the tables service knows nothing about reservations
// and vice versa.
type BackendsConfig struct {
	TablesURL       string `yaml:"tables_url"`
	ReservationsURL string `yaml:"reservations_url"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
}

func (b BackendsConfig) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// Load reads an optional YAML file, then lets environment variables override
// individual fields. A missing file is fine; missing everything falls back to
// the local development defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{Address: ":3000"},
		Backends: BackendsConfig{
			TablesURL:       "http://localhost:5001",
			ReservationsURL: "http://localhost:5002",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("TABLES_API_URL"); v != "" {
		cfg.Backends.TablesURL = v
	}
	if v := os.Getenv("RESERVATIONS_API_URL"); v != "" {
		cfg.Backends.ReservationsURL = v
	}

	return cfg, nil
}
