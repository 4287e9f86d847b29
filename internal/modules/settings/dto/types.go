package dto

type SettingsOutput struct {
	Username           string
	DarkMode           bool
	NotificationSounds bool
	Vibration          bool
	DailyReminders     bool
}
