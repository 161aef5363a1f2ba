package cmd

import (
	"os"

	"github.com/larryhastings/big-sub001/bigerr"
	"gopkg.in/yaml.v2"
)

// Config holds the tab-width default and named separator-set presets
// a config file can override; loaded with a straightforward
// yaml.Unmarshal, nothing more elaborate.
type Config struct {
	TabWidth   int                 `yaml:"tab_width"`
	Separators map[string][]string `yaml:"separators"`
}

func defaultConfig() *Config {
	return &Config{TabWidth: 8}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bigerr.ArgumentValueErrorf("reading config %q: %v", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, bigerr.ArgumentValueErrorf("parsing config %q: %v", path, err)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 8
	}
	return cfg, nil
}
