package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/minesweeper/internal/game"
)

// Config represents the complete server configuration.
type Config struct {
	Server       Settings           `hcl:"server,block"`
	Difficulties []DifficultyConfig `hcl:"difficulty,block"`
}

// Settings contains server-level configuration.
type Settings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	MaxGames int    `hcl:"max_games,optional"`
}

// DifficultyConfig defines a named difficulty available to clients.
type DifficultyConfig struct {
	Name  string `hcl:"name,label"`
	Rows  int    `hcl:"rows"`
	Cols  int    `hcl:"cols"`
	Mines int    `hcl:"mines"`
}

// Difficulty converts the config block to an engine descriptor.
func (dc DifficultyConfig) Difficulty() game.Difficulty {
	return game.Difficulty{Rows: dc.Rows, Cols: dc.Cols, Mines: dc.Mines}
}

// DefaultConfig returns the default server configuration: the classic
// preset catalog on localhost:8080.
func DefaultConfig() *Config {
	return &Config{
		Server: Settings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
			MaxGames: 1000,
		},
		Difficulties: []DifficultyConfig{
			{Name: "beginner", Rows: 9, Cols: 9, Mines: 10},
			{Name: "intermediate", Rows: 16, Cols: 16, Mines: 40},
			{Name: "expert", Rows: 16, Cols: 30, Mines: 99},
		},
	}
}

// LoadConfig loads server configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Server.MaxGames == 0 {
		config.Server.MaxGames = 1000
	}
	if len(config.Difficulties) == 0 {
		config.Difficulties = DefaultConfig().Difficulties
	}

	return &config, nil
}

// Validate validates the server configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.MaxGames < 1 {
		return fmt.Errorf("max_games must be positive: %d", c.Server.MaxGames)
	}
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("at least one difficulty must be configured")
	}
	seen := make(map[string]bool)
	for _, dc := range c.Difficulties {
		if seen[dc.Name] {
			return fmt.Errorf("difficulty %s: defined twice", dc.Name)
		}
		seen[dc.Name] = true
		if err := dc.Difficulty().Validate(); err != nil {
			return fmt.Errorf("difficulty %s: %w", dc.Name, err)
		}
	}
	return nil
}

// Addr returns the full listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// DifficultyByName returns the named difficulty block, if configured.
func (c *Config) DifficultyByName(name string) (DifficultyConfig, bool) {
	for _, dc := range c.Difficulties {
		if dc.Name == name {
			return dc, true
		}
	}
	return DifficultyConfig{}, false
}
