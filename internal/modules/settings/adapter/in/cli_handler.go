package in

import (
	"context"
	"fmt"

	settingsdto "breathe5/internal/modules/settings/dto"
	settingsin "breathe5/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) SetUsername(ctx context.Context, username string) (settingsdto.SettingsOutput, error) {
	return h.usecase.SetUsername(ctx, username)
}

func (h CLIHandler) ToggleDarkMode(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return h.usecase.ToggleDarkMode(ctx)
}

func (h CLIHandler) Set(ctx context.Context, name string, on bool) (settingsdto.SettingsOutput, error) {
	switch name {
	case "sounds":
		return h.usecase.SetNotificationSounds(ctx, on)
	case "vibration":
		return h.usecase.SetVibration(ctx, on)
	case "reminders":
		return h.usecase.SetDailyReminders(ctx, on)
	}
	return settingsdto.SettingsOutput{}, fmt.Errorf("unknown setting %q (want sounds|vibration|reminders)", name)
}
