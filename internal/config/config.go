package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"svw.info/setgame/internal/domain"
)

// Config carries server settings and an optional board literal, a 2D
// arrangement of card codes flattened row-major.
type Config struct {
	Addr     string     `yaml:"addr"`
	LogLevel string     `yaml:"log_level"`
	Grouper  string     `yaml:"grouper"` // "frontier" (default) or "exhaustive"
	Board    [][]string `yaml:"board"`
}

func Default() *Config {
	return &Config{Addr: ":8080", LogLevel: "info", Grouper: "frontier"}
}

// Load reads a YAML config file. Absent keys keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Grouper == "" {
		cfg.Grouper = "frontier"
	}
	return cfg, nil
}

// ParseBoard converts the board literal into domain cards. A config without
// a board yields a nil board.
func (c *Config) ParseBoard() (domain.Board, error) {
	if len(c.Board) == 0 {
		return nil, nil
	}
	return domain.ParseBoard(c.Board)
}
