package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config carries the resolved paths of the on-device store. Everything the
// app persists lives under one dot-directory.
type Config struct {
	DataDir      string
	HistoryPath  string
	ActivePath   string
	SettingsPath string
}

// New resolves the data directory, defaulting to ~/.breathe5 when dataDir
// is empty.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".breathe5")
	}
	return Config{
		DataDir:      dataDir,
		HistoryPath:  filepath.Join(dataDir, "meditation_history.json"),
		ActivePath:   filepath.Join(dataDir, "active-session.json"),
		SettingsPath: filepath.Join(dataDir, "settings.yaml"),
	}, nil
}
