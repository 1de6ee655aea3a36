package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

const appName = "richcard"

// Config represents the application configuration
type Config struct {
	DefaultCard         string   `toml:"default_card"`
	Width               int      `toml:"width"` // 0 detects the terminal width
	Color               bool     `toml:"color"`
	SurfaceCapabilities []string `toml:"surface_capabilities"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		DefaultCard:         "welcome",
		Color:               true,
		SurfaceCapabilities: []string{"WEB_LINK", "RICH_RESPONSE"},
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetCardLibraryPath returns the path to the card library
func GetCardLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "cards")
}

// GetCacheDir returns the directory for generated artifacts such as ANSI art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	log.WithField("path", configPath).Debug("loaded config")
	return config, nil
}

func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := Default()
	if err := writeConfig(configPath, config); err != nil {
		return nil, err
	}

	log.WithField("path", configPath).Debug("created default config")
	return config, nil
}

func writeConfig(path string, config *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// GetDefaultCard returns the default card name from config
func GetDefaultCard() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultCard, nil
}

// SetDefaultCard sets the default card in the config
func SetDefaultCard(cardName string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultCard = cardName
	return writeConfig(GetConfigFilePath(), config)
}
