package storage

import "github.com/quilljournal/quill/internal/models"

// Provider is the storage contract for the journal. Both backends enforce
// the one-entry-per-calendar-date invariant with a UNIQUE constraint on
// entry_date; CreateEntry reports a constraint violation as ErrDuplicateDate
// rather than pre-checking existence.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entries
	CreateEntry(models.Entry) (int64, error)
	GetEntry(id int64) (models.Entry, error)
	GetEntryByDate(day string) (models.Entry, error)
	UpdateEntry(models.Entry) error
	DeleteEntry(id int64) error
	ListEntries(page, pageSize int) ([]models.Entry, error)
	GetAllEntries() ([]models.Entry, error)
	CountEntries() (int, error)
	DistinctEntryDates() ([]string, error)

	// Tags
	GetAllTags() ([]models.Tag, error)
	AddTag(name string) error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	GetConfigPath() string
}
