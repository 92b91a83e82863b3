package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// EnvVar points at an alternate config file.
	EnvVar    = "CALCPAD_CONFIG"
	fileName  = "config.toml"
	appSubdir = "calcpad"
	logPrefix = "[config]"
)

// Config holds the user-tunable options of the calculator program.
type Config struct {
	// Scientific opens the program with the scientific panel visible.
	Scientific bool `toml:"scientific"`
	// AltScreen renders into the terminal's alternate screen buffer.
	AltScreen bool `toml:"alt_screen"`
	// Mouse enables click-to-press on the button grid.
	Mouse bool `toml:"mouse"`
	// LogFile receives the debug log. Empty discards it.
	LogFile string `toml:"log_file,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		AltScreen: true,
		Mouse:     true,
	}
}

// DefaultPath resolves the config location from the environment, falling back
// to the user config directory.
func DefaultPath() string {
	if path := os.Getenv(EnvVar); path != "" {
		return path
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, appSubdir, fileName)
}

// Load decodes path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Printf("%s %s: ignoring unknown keys %v", logPrefix, path, undecoded)
	}
	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(filepath.Dir(path), cfg.LogFile)
	}
	return cfg, nil
}
