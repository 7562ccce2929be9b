package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jharland/commit-pilot/internal/domain"
)

// ProviderOpenAI is the only supported provider.
const ProviderOpenAI = "openai"

// Config is the persisted per-user configuration record.
type Config struct {
	Provider    string              `json:"provider"`
	APIKey      string              `json:"apiKey"`
	CommitTypes []domain.CommitType `json:"commitTypes"`
}

// DefaultPath returns the per-user config file path.
//
// Typically:
// - Linux:   ~/.config/commit-pilot/config.json
// - macOS:   ~/Library/Application Support/commit-pilot/config.json
// - Windows: %AppData%/commit-pilot/config.json
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(dir, "commit-pilot", "config.json"), nil
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path. A missing file yields
// ErrMissing; unparseable content yields ErrCorrupt.
func LoadFrom(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &cfg, nil
}

// Save writes cfg to the default path and returns that path.
func Save(cfg *Config) (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", err
	}
	return path, SaveTo(path, cfg)
}

// SaveTo overwrites the configuration file at path wholesale (atomic
// temp-and-rename write). Creates directories as needed.
//
// NOTE: This includes the API key. The file is written with 0600 permissions.
func SaveTo(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config JSON: %w", err)
	}
	b = append(b, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(0o600); err != nil {
		return fmt.Errorf("chmod temp config: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp config: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		// Best-effort; don't fail after successful rename.
		_ = err
	}

	return nil
}
