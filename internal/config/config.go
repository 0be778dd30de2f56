// Package config provides YAML-based configuration loading for the game
// front ends and the development server.
package config

import (
	"time"
)

// Config is the top-level configuration file.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Server   ServerConfig `yaml:"server"`
	SSH      SSHConfig    `yaml:"ssh"`
	TUI      TUIConfig    `yaml:"tui"`
}

// ServerConfig configures the static development server.
type ServerConfig struct {
	Addr        string            `yaml:"addr"`
	Root        string            `yaml:"root"`  // Content root directory
	Index       string            `yaml:"index"` // Document served for "/"
	DefaultType string            `yaml:"default_type"`
	MIMETypes   map[string]string `yaml:"mime_types"` // Extension (with dot) -> content type
}

// SSHConfig configures the SSH front end.
type SSHConfig struct {
	Addr        string        `yaml:"addr"`
	HostKeyPath string        `yaml:"host_key"` // Empty means ~/.g2048/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// TUIConfig configures the terminal front end.
type TUIConfig struct {
	FPS           int    `yaml:"fps"`
	HighlightMS   int    `yaml:"highlight_ms"`   // How long new/merged/moved cells stay highlighted
	ScoreFlashMS  int    `yaml:"score_flash_ms"` // How long the "+N" score addition stays visible
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// Default returns the built-in configuration, used when no file and no
// embedded default can be read.
func Default() Config {
	return Config{
		LogLevel: "info",
		Server: ServerConfig{
			Addr:        ":3000",
			Root:        "web/static",
			Index:       "index.html",
			DefaultType: "application/octet-stream",
			MIMETypes:   DefaultMIMETypes(),
		},
		SSH: SSHConfig{
			Addr:        ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		TUI: TUIConfig{
			FPS:           60,
			HighlightMS:   300,
			ScoreFlashMS:  600,
			ScreenshotDir: "~/.g2048/screenshots",
		},
	}
}

// DefaultMIMETypes returns the extension table served by the dev server.
func DefaultMIMETypes() map[string]string {
	return map[string]string{
		".html": "text/html",
		".js":   "text/javascript",
		".css":  "text/css",
		".scss": "text/css", // SCSS is served as-is during development
		".png":  "image/png",
		".jpg":  "image/jpeg",
		".gif":  "image/gif",
		".wasm": "application/wasm",
	}
}
