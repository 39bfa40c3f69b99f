// Package config loads the definitions file with sequences and
// combinations. Validation of the definitions themselves lives in the
// expand package; this package only locates and decodes the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/autotyper/internal/constants"
)

// Config is the decoded definitions file. Sequences map names to literal
// text; combinations map names to whitespace-separated reference tokens.
// Delay, when set, is the default pause between keystrokes in
// milliseconds and can be overridden by the -delay flag.
type Config struct {
	Sequences    map[string]string `json:"sequences" toml:"sequences"`
	Combinations map[string]string `json:"combinations" toml:"combinations"`
	Delay        *int              `json:"delay,omitempty" toml:"delay"`
}

// Load reads and decodes the definitions file at path. Files ending in
// .toml are decoded as TOML; everything else is treated as JSON, the
// original on-disk format.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if strings.HasSuffix(path, ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	log.Debug().
		Str("path", path).
		Int("sequences", len(cfg.Sequences)).
		Int("combinations", len(cfg.Combinations)).
		Msg("Loaded definitions")

	return &cfg, nil
}

// Resolve picks the definitions file to use. An explicit flag path wins
// and must exist; otherwise the working directory and the data directory
// are probed in order.
func Resolve(flagPath string) (string, error) {
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return flagPath, nil
	}

	candidates := []string{
		constants.ConfigFileJSON,
		constants.ConfigFileTOML,
	}
	if dataDir, err := DataDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(dataDir, constants.ConfigFileJSON),
			filepath.Join(dataDir, constants.ConfigFileTOML),
		)
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no definitions file found (tried %s)", strings.Join(candidates, ", "))
}

// DataDir returns the application data directory (~/.config/autotyper).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, constants.AppDataDir), nil
}
