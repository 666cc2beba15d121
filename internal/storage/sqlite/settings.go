package sqlite

import (
	"fmt"

	"github.com/quilljournal/quill/internal/constants"
	"github.com/quilljournal/quill/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingEntriesPerPage:
			if _, err := fmt.Sscanf(value, "%d", &settings.EntriesPerPage); err != nil {
				return models.Settings{}, fmt.Errorf("parsing entries_per_page: %w", err)
			}
		case constants.SettingTheme:
			settings.Theme = value
		case constants.SettingLockEnabled:
			settings.LockEnabled = value == "true"
		case constants.SettingTimezone:
			settings.Timezone = value
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.SettingEntriesPerPage, fmt.Sprintf("%d", settings.EntriesPerPage)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingTheme, settings.Theme); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingLockEnabled, fmt.Sprintf("%v", settings.LockEnabled)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingTimezone, settings.Timezone); err != nil {
		return err
	}

	return tx.Commit()
}
