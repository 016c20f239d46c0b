package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"diff2html/internal/textenc"
)

const (
	configDirName = "diff2html"
	tomlFileName  = "config.toml"
	jsonFileName  = "config.json"

	// PathEnv points at a config file and bypasses the XDG lookup.
	PathEnv = "DIFF2HTML_CONFIG"

	DefaultOutputPath = "diff.html"
)

type AppConfig struct {
	// OutputPath is where -f writes the document, relative to the working directory.
	OutputPath string   `toml:"output_path" json:"output_path"`
	Encodings  []string `toml:"encodings" json:"encodings"`
}

func Default() AppConfig {
	return AppConfig{
		OutputPath: DefaultOutputPath,
		Encodings:  append([]string(nil), textenc.DefaultEncodings...),
	}
}

// Load reads the first config file found: $DIFF2HTML_CONFIG, then
// config.toml and config.json under the XDG config directory. Errors name
// the file when one was chosen.
func Load() (AppConfig, string, error) {
	if path := strings.TrimSpace(os.Getenv(PathEnv)); path != "" {
		cfg, err := LoadFromPath(path)
		return cfg, path, loadError(path, err)
	}

	dir, err := DefaultDir()
	if err != nil {
		return AppConfig{}, "", loadError("", err)
	}
	for _, name := range []string{tomlFileName, jsonFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			cfg, err := LoadFromPath(path)
			return cfg, path, loadError(path, err)
		}
	}
	return Default(), "", nil
}

func loadError(path string, err error) error {
	if err == nil {
		return nil
	}
	if path == "" {
		return fmt.Errorf("load config: %w", err)
	}
	return fmt.Errorf("load config %s: %w", path, err)
}

func LoadFromPath(path string) (AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return AppConfig{}, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse config: %w", err)
		}
	} else if _, err := toml.Decode(string(data), &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c *AppConfig) normalize() error {
	c.OutputPath = strings.TrimSpace(c.OutputPath)
	if c.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	names := make([]string, 0, len(c.Encodings))
	for _, name := range c.Encodings {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := textenc.Lookup(name); err != nil {
			return fmt.Errorf("encodings: %w", err)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return fmt.Errorf("encodings must list at least one encoding")
	}
	c.Encodings = names
	return nil
}

func DefaultDir() (string, error) {
	home, err := configHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName), nil
}

func configHome() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
