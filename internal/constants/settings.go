package constants

const (
	// Settings keys
	SettingEntriesPerPage = "entries_per_page"
	SettingTheme          = "theme"
	SettingLockEnabled    = "lock_enabled"
	SettingTimezone       = "timezone"

	// Default settings values
	DefaultEntriesPerPage = 10
	DefaultTheme          = "default"
	DefaultLockEnabled    = false
	DefaultTimezone       = "Local" // Use system local timezone by default
)
