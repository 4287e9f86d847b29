package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	out "breathe5/internal/modules/settings/adapter/out"
	"breathe5/internal/modules/settings/domain"
)

func TestSettingsStoreMissingFileLoadsDefaults(t *testing.T) {
	t.Parallel()
	store := out.NewFileSettingsStore(filepath.Join(t.TempDir(), "settings.yaml"))
	settings, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != domain.Defaults() {
		t.Fatalf("want defaults, got %+v", settings)
	}
}

func TestSettingsStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := out.NewFileSettingsStore(filepath.Join(t.TempDir(), "settings.yaml"))
	ctx := context.Background()

	want := domain.Settings{
		Username:           "Mina",
		DarkMode:           true,
		NotificationSounds: false,
		Vibration:          true,
		DailyReminders:     true,
	}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSettingsStoreCorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\n  - bad\nyaml"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	store := out.NewFileSettingsStore(path)
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("corrupt settings should error")
	}
}

func TestSettingsStoreBlankUsernameFallsBack(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("username: \"\"\ndark_mode: true\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store := out.NewFileSettingsStore(path)
	settings, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.Username != "Guest" {
		t.Fatalf("blank username should fall back to Guest, got %q", settings.Username)
	}
	if !settings.DarkMode {
		t.Fatalf("other fields should still load")
	}
}
