package constants

const (
	AppName            = "quill"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/quill/quill.db"
	Version            = "v0.3.0"

	// DateFormat is the standard calendar-date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Entry field limits
	TitleMinLen   = 1
	TitleMaxLen   = 200
	ContentMinLen = 10
	ContentMaxLen = 10000

	// MaxSecondaryMoods is the number of optional secondary mood slots per entry
	MaxSecondaryMoods = 2

	// TagDelimiter separates tags in the persisted delimited-string encoding
	TagDelimiter = ","

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "quill-"
	BackupFileSuffix = ".db"
)

// PrebuiltTags is the fixed tag catalog seeded into the store at initialization.
var PrebuiltTags = []string{
	"Work",
	"Family",
	"Health",
	"Travel",
	"Gratitude",
	"Dreams",
	"Goals",
	"Memories",
}
