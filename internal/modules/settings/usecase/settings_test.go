package usecase_test

import (
	"context"
	"errors"
	"testing"

	"breathe5/internal/modules/settings/domain"
	"breathe5/internal/modules/settings/usecase"
	apperrors "breathe5/internal/platform/errors"
)

type memStore struct {
	settings domain.Settings
	saves    int
}

func (s *memStore) Load(context.Context) (domain.Settings, error) {
	return s.settings, nil
}

func (s *memStore) Save(_ context.Context, settings domain.Settings) error {
	s.settings = settings
	s.saves++
	return nil
}

func TestSetUsername(t *testing.T) {
	t.Parallel()
	store := &memStore{settings: domain.Defaults()}
	uc := usecase.NewInteractor(store)
	ctx := context.Background()

	out, err := uc.SetUsername(ctx, "  Mina  ")
	if err != nil {
		t.Fatalf("set username: %v", err)
	}
	if out.Username != "Mina" {
		t.Fatalf("username should be trimmed, got %q", out.Username)
	}
	if store.settings.Username != "Mina" {
		t.Fatalf("username not persisted: %q", store.settings.Username)
	}
}

func TestSetUsernameRejectsBlank(t *testing.T) {
	t.Parallel()
	store := &memStore{settings: domain.Defaults()}
	uc := usecase.NewInteractor(store)

	if _, err := uc.SetUsername(context.Background(), "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("rejected input must not save")
	}
}

func TestToggleDarkMode(t *testing.T) {
	t.Parallel()
	store := &memStore{settings: domain.Defaults()}
	uc := usecase.NewInteractor(store)
	ctx := context.Background()

	out, err := uc.ToggleDarkMode(ctx)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !out.DarkMode {
		t.Fatalf("first toggle should enable dark mode")
	}
	out, err = uc.ToggleDarkMode(ctx)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if out.DarkMode {
		t.Fatalf("second toggle should disable dark mode")
	}
	if store.saves != 2 {
		t.Fatalf("every toggle persists, got %d saves", store.saves)
	}
}

func TestNotificationFlags(t *testing.T) {
	t.Parallel()
	store := &memStore{settings: domain.Defaults()}
	uc := usecase.NewInteractor(store)
	ctx := context.Background()

	out, err := uc.SetNotificationSounds(ctx, false)
	if err != nil {
		t.Fatalf("sounds off: %v", err)
	}
	if out.NotificationSounds {
		t.Fatalf("sounds should be off")
	}
	out, err = uc.SetVibration(ctx, true)
	if err != nil {
		t.Fatalf("vibration on: %v", err)
	}
	if !out.Vibration {
		t.Fatalf("vibration should be on")
	}
	out, err = uc.SetDailyReminders(ctx, true)
	if err != nil {
		t.Fatalf("reminders on: %v", err)
	}
	if !out.DailyReminders {
		t.Fatalf("reminders should be on")
	}
	// Independent flags: toggling one leaves the others alone.
	if out.NotificationSounds || !out.Vibration {
		t.Fatalf("flags should not bleed into each other: %+v", out)
	}
}
