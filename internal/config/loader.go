package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/g2048.yaml
var defaultYAML []byte

// Environment variables that override file values.
const (
	EnvAddr     = "G2048_ADDR"
	EnvRoot     = "G2048_ROOT"
	EnvSSHAddr  = "G2048_SSH_ADDR"
	EnvLogLevel = "G2048_LOG_LEVEL"
)

// Load reads configuration.
// Search order: customPath -> ~/.g2048/config.yaml -> ./configs/g2048.yaml -> embedded default.
// Files are layered over the embedded default, so a file only needs the
// keys it changes. Environment overrides are applied last.
func Load(customPath string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = Default() // Fallback to hardcoded if embed is broken
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		ApplyEnv(&cfg)
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "g2048.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		break
	}

	ApplyEnv(&cfg)
	return cfg, nil
}

// LoadDotEnv loads variables from .env files into the process environment.
// Missing files are not an error; variables already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides configuration values from G2048_* variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvRoot); v != "" {
		cfg.Server.Root = v
	}
	if v := os.Getenv(EnvSSHAddr); v != "" {
		cfg.SSH.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".g2048", filename)
}

// boardFile is the on-disk layout of a starting board.
type boardFile struct {
	Board [][]int `yaml:"board"`
}

// LoadBoard reads a starting board from a YAML file of the form
//
//	board:
//	  - [2, 0, 0, 0]
//	  - ...
//
// The grid is returned as written; its shape is checked by the engine.
func LoadBoard(path string) ([][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: board file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("config: cannot read board file %s: %w", path, err)
	}

	var bf boardFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("config: cannot parse board file %s: %w", path, err)
	}
	return bf.Board, nil
}
