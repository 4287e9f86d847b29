package domain

// Settings is the device-local preference set. The dark-mode flag is
// process-wide configuration: it is loaded once at startup and mutated only
// through the settings usecase, never through a package-level singleton.
type Settings struct {
	Username           string `yaml:"username"`
	DarkMode           bool   `yaml:"dark_mode"`
	NotificationSounds bool   `yaml:"notification_sounds"`
	Vibration          bool   `yaml:"vibration"`
	DailyReminders     bool   `yaml:"daily_reminders"`
}

func Defaults() Settings {
	return Settings{
		Username:           "Guest",
		NotificationSounds: true,
	}
}
