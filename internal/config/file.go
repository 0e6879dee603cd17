package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadFile decodes a TOML file over cfg. Keys missing from the file keep
// their current values; unknown keys are an error.
func LoadFile(cfg *Config, path string) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return &ConfigError{Field: undecoded[0].String(), Message: "unknown configuration key in " + path}
	}
	return nil
}
