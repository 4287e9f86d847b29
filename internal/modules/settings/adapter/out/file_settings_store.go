package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"breathe5/internal/modules/settings/domain"
	settingsout "breathe5/internal/modules/settings/port/out"
)

// FileSettingsStore keeps preferences in one YAML file. A missing file
// loads the defaults; a corrupt file is an error the caller can surface.
type FileSettingsStore struct {
	path string
}

func NewFileSettingsStore(settingsPath string) settingsout.SettingsStore {
	return &FileSettingsStore{path: settingsPath}
}

func (s *FileSettingsStore) Load(_ context.Context) (domain.Settings, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Defaults(), nil
		}
		return domain.Settings{}, fmt.Errorf("read settings: %w", err)
	}
	settings := domain.Defaults()
	if err := yaml.Unmarshal(payload, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if settings.Username == "" {
		settings.Username = domain.Defaults().Username
	}
	return settings, nil
}

func (s *FileSettingsStore) Save(_ context.Context, settings domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	payload, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
