package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/foldprint/foldprint/pkg/errors"
)

// configFileName is the config file discovered in the working directory
// when --config is not given.
const configFileName = "foldprint.toml"

// Config holds optional defaults loaded from a foldprint.toml file.
// CLI flags take precedence over file values; file values take precedence
// over built-in defaults. The long-name font threshold is deliberately
// not configurable.
type Config struct {
	Output     string  `toml:"output"`
	LogoSizeMM float64 `toml:"logo_size_mm"`
	MarginMM   float64 `toml:"margin_mm"`
	FontLarge  float64 `toml:"font_large"`
	FontMedium float64 `toml:"font_medium"`
	FoldGuide  bool    `toml:"fold_guide"`
}

// loadConfig reads the config file at path. When path is empty, the
// working directory is probed for foldprint.toml; its absence is not an
// error. An explicitly given path must exist.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = configFileName
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.New(errors.ErrCodeFileNotFound, "config file %q not found", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %q", path)
	}

	return cfg, nil
}
