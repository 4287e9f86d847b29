package in

import (
	"context"

	"breathe5/internal/modules/settings/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	SetUsername(ctx context.Context, username string) (dto.SettingsOutput, error)
	ToggleDarkMode(ctx context.Context) (dto.SettingsOutput, error)
	SetNotificationSounds(ctx context.Context, on bool) (dto.SettingsOutput, error)
	SetVibration(ctx context.Context, on bool) (dto.SettingsOutput, error)
	SetDailyReminders(ctx context.Context, on bool) (dto.SettingsOutput, error)
}
