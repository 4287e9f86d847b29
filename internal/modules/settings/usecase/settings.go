package usecase

import (
	"context"
	"strings"

	"breathe5/internal/modules/settings/domain"
	settingsdto "breathe5/internal/modules/settings/dto"
	settingsin "breathe5/internal/modules/settings/port/in"
	settingsout "breathe5/internal/modules/settings/port/out"
	apperrors "breathe5/internal/platform/errors"
)

type Interactor struct {
	store settingsout.SettingsStore
}

func NewInteractor(store settingsout.SettingsStore) settingsin.Usecase {
	return &Interactor{store: store}
}

func (i *Interactor) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	settings, err := i.store.Load(ctx)
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) SetUsername(ctx context.Context, username string) (settingsdto.SettingsOutput, error) {
	if strings.TrimSpace(username) == "" {
		return settingsdto.SettingsOutput{}, apperrors.ErrInvalidInput
	}
	return i.mutate(ctx, func(s *domain.Settings) {
		s.Username = strings.TrimSpace(username)
	})
}

// ToggleDarkMode is the single mutation point for the theme flag.
func (i *Interactor) ToggleDarkMode(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return i.mutate(ctx, func(s *domain.Settings) {
		s.DarkMode = !s.DarkMode
	})
}

func (i *Interactor) SetNotificationSounds(ctx context.Context, on bool) (settingsdto.SettingsOutput, error) {
	return i.mutate(ctx, func(s *domain.Settings) {
		s.NotificationSounds = on
	})
}

func (i *Interactor) SetVibration(ctx context.Context, on bool) (settingsdto.SettingsOutput, error) {
	return i.mutate(ctx, func(s *domain.Settings) {
		s.Vibration = on
	})
}

func (i *Interactor) SetDailyReminders(ctx context.Context, on bool) (settingsdto.SettingsOutput, error) {
	return i.mutate(ctx, func(s *domain.Settings) {
		s.DailyReminders = on
	})
}

func (i *Interactor) mutate(ctx context.Context, apply func(*domain.Settings)) (settingsdto.SettingsOutput, error) {
	settings, err := i.store.Load(ctx)
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	apply(&settings)
	if err := i.store.Save(ctx, settings); err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func toOutput(s domain.Settings) settingsdto.SettingsOutput {
	return settingsdto.SettingsOutput{
		Username:           s.Username,
		DarkMode:           s.DarkMode,
		NotificationSounds: s.NotificationSounds,
		Vibration:          s.Vibration,
		DailyReminders:     s.DailyReminders,
	}
}
