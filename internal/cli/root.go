package cli

import (
	"fmt"
	"strings"

	"github.com/quilljournal/quill/internal/backup"
	"github.com/quilljournal/quill/internal/constants"
	"github.com/quilljournal/quill/internal/logger"
	"github.com/quilljournal/quill/internal/models"
	"github.com/quilljournal/quill/internal/storage"
	"github.com/quilljournal/quill/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors. Only file-backed (SQLite) stores are backed up this way.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if storage.IsPostgresConnString(path) {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today returns the current calendar date in the user's configured timezone,
// falling back to the system timezone if settings are unavailable.
func (c *Context) Today() string {
	tz := constants.DefaultTimezone
	if settings, err := c.Store.GetSettings(); err == nil && settings.Timezone != "" {
		tz = settings.Timezone
	}
	today, err := utils.TodayInTimezone(tz)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using local", "timezone", tz)
		today, _ = utils.TodayInTimezone(constants.DefaultTimezone)
	}
	return today
}

// EntriesPerPage returns the configured page size, or the default when
// settings are unavailable or out of range.
func (c *Context) EntriesPerPage() int {
	settings, err := c.Store.GetSettings()
	if err != nil || settings.EntriesPerPage < 1 {
		return constants.DefaultEntriesPerPage
	}
	return settings.EntriesPerPage
}

// ParseMood parses a "name:category" pair into a mood, enforcing that name
// and category always arrive together.
func ParseMood(s string) (models.Mood, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return models.Mood{}, fmt.Errorf("invalid mood %q (expected name:category, e.g. Happy:positive)", s)
	}

	m := models.Mood{
		Name:     strings.TrimSpace(parts[0]),
		Category: models.MoodCategory(strings.ToLower(strings.TrimSpace(parts[1]))),
	}
	if m.Name == "" {
		return models.Mood{}, fmt.Errorf("mood name must not be blank")
	}
	if !m.Category.IsValid() {
		return models.Mood{}, fmt.Errorf("unknown mood category %q (expected positive, neutral, or negative)", parts[1])
	}
	return m, nil
}

// ParseMoods parses a list of "name:category" pairs.
func ParseMoods(pairs []string) ([]models.Mood, error) {
	var moods []models.Mood
	for _, p := range pairs {
		m, err := ParseMood(p)
		if err != nil {
			return nil, err
		}
		moods = append(moods, m)
	}
	return moods, nil
}
