package config

import (
	_ "embed"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in settings.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		log.Fatal("config: decode embedded default.yaml", "err", err)
	}
	return cfg
}

// DefaultYAML returns the embedded default file, e.g. for writing a starter config.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}
