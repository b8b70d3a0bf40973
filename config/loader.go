package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EmbeddedSource is reported by Load when no file on disk was found.
const EmbeddedSource = "embedded"

const fileName = "config.yaml"

// Load resolves the config file and returns it together with the path it came
// from. Search order: customPath -> ~/.bouncebox/config.yaml -> ./config.yaml
// -> embedded default. A file that exists but fails to decode is an error.
// The result is not validated.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return Config{}, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		cfg, err := LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, path, err
		}
		return cfg, path, nil
	}

	return Default(), EmbeddedSource, nil
}

// LoadFile reads and decodes one config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault writes the embedded default config to path, creating parent
// directories. An existing file is never overwritten.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	if _, err := f.Write(DefaultYAML()); err != nil {
		_ = f.Close()
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return f.Close()
}

func searchPaths() []string {
	var paths []string
	if p := UserConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, fileName)
}

// UserConfigPath returns the per-user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bouncebox", fileName)
}
