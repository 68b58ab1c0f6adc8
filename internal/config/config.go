package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings relax reads at startup.
type Config struct {
	APIURL      string
	GalleryDir  string
	LogFile     string
	SessionPath string
}

const (
	defaultConfigPath  = "~/.config/relax/config.toml"
	defaultAPIURL      = "http://127.0.0.1:3000"
	defaultGalleryDir  = "~/Pictures"
	defaultLogFile     = "~/.local/state/relax/relax.log"
	defaultSessionPath = "~/.config/relax/session.toml"
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		APIURL:      defaultAPIURL,
		GalleryDir:  mustExpand(defaultGalleryDir),
		LogFile:     mustExpand(defaultLogFile),
		SessionPath: mustExpand(defaultSessionPath),
	}
}

// Load locates and parses the relax config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL      string `toml:"api_url"`
		GalleryDir  string `toml:"gallery_dir"`
		LogFile     string `toml:"log_file"`
		SessionPath string `toml:"session_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		APIURL:      orDefault(raw.APIURL, defaultAPIURL),
		GalleryDir:  mustExpand(orDefault(raw.GalleryDir, defaultGalleryDir)),
		LogFile:     mustExpand(orDefault(raw.LogFile, defaultLogFile)),
		SessionPath: mustExpand(orDefault(raw.SessionPath, defaultSessionPath)),
	}
	return cfg, nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Abs(expanded)
}
