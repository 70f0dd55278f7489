package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full server configuration, loaded from a TOML file.
// A missing file is not an error; defaults apply.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Addr      string `toml:"addr"`
	ClientDir string `toml:"client_dir"`
}

// GameConfig carries the tunables of the simulation. RoundDuration and Seed
// of zero mean "use the mode default" and "random per session".
type GameConfig struct {
	MoveSpeed     float64 `toml:"move_speed"`     // base speed, units/s
	DashCooldown  float64 `toml:"dash_cooldown"`  // seconds
	DashDuration  float64 `toml:"dash_duration"`  // seconds
	BotCount      int     `toml:"bot_count"`      // 0 = mode default
	RoundDuration float64 `toml:"round_duration"` // seconds, 0 = mode default
	Seed          int64   `toml:"seed"`           // 0 = random per session
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:      ":8080",
			ClientDir: "../client",
		},
		Game: GameConfig{
			MoveSpeed:    200.0,
			DashCooldown: 3.0,
			DashDuration: 0.3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a TOML config file on top of the defaults.
// An absent file yields the defaults; a malformed file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Game.MoveSpeed <= 0 {
		cfg.Game.MoveSpeed = 200.0
	}
	if cfg.Game.DashCooldown <= 0 {
		cfg.Game.DashCooldown = 3.0
	}
	if cfg.Game.DashDuration <= 0 {
		cfg.Game.DashDuration = 0.3
	}
	return cfg, nil
}
