package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "carte"

// Colour modes accepted by the color key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	DefaultTable string `toml:"default_table"`
	Color        string `toml:"color"`
	MaxCards     int    `toml:"max_cards"` // 0 means no registry limit
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{
		DefaultTable: "demo",
		Color:        ColorAuto,
	}
}

// Validate checks the color mode and the card limit.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", c.Color)
	}
	if c.MaxCards < 0 {
		return fmt.Errorf("max_cards must not be negative, got %d", c.MaxCards)
	}
	return nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetTableLibraryPath returns the directory holding named card tables
func GetTableLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "tables")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing.
// Keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig writes and returns the default config
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// GetTablePath resolves a table name to a file. The table library is
// searched first (with and without a .toml suffix), then the name is
// treated as a path.
func GetTablePath(tableName string) (string, error) {
	libraryPath := GetTableLibraryPath()
	candidates := []string{
		filepath.Join(libraryPath, tableName),
		filepath.Join(libraryPath, tableName+".toml"),
		tableName,
	}

	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", fmt.Errorf("table not found: %s", tableName)
}

// GetDefaultTable returns the default table name from config
func GetDefaultTable() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultTable, nil
}

// SetDefaultTable sets the default table in the config
func SetDefaultTable(tableName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultTable = tableName
	return writeConfig(config)
}
