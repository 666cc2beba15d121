package sqlite

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/quilljournal/quill/internal/errors"
	"github.com/quilljournal/quill/internal/logger"
	"github.com/quilljournal/quill/internal/models"
)

const entryColumns = `id, title, content, entry_date, created_at, updated_at,
	primary_mood, primary_mood_category,
	secondary_mood1, secondary_mood1_category,
	secondary_mood2, secondary_mood2_category,
	tags, word_count`

// CreateEntry inserts a new entry, assigning timestamps and the derived word
// count. The attempt is a plain INSERT: the UNIQUE constraint on entry_date
// decides duplicates, so two concurrent creates for the same date cannot
// both succeed.
func (s *Store) CreateEntry(entry models.Entry) (int64, error) {
	now := time.Now()
	sm1, sm1c, sm2, sm2c := secondaryMoodColumns(entry.SecondaryMoods)

	res, err := s.db.Exec(`
		INSERT INTO entries (
			title, content, entry_date, created_at, updated_at,
			primary_mood, primary_mood_category,
			secondary_mood1, secondary_mood1_category,
			secondary_mood2, secondary_mood2_category,
			tags, word_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Title, entry.Content, entry.EntryDate,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
		entry.Mood.Name, string(entry.Mood.Category),
		sm1, sm1c, sm2, sm2c,
		models.JoinTags(entry.Tags), models.CountWords(entry.Content))
	if err != nil {
		if isUniqueDateViolation(err) {
			return 0, errors.ErrDuplicateDate
		}
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}

	s.recordTags(entry.Tags)
	return id, nil
}

func (s *Store) GetEntry(id int64) (models.Entry, error) {
	row := s.db.QueryRow(`
		SELECT `+entryColumns+`
		FROM entries WHERE id = ?`, id)
	return scanEntry(row)
}

func (s *Store) GetEntryByDate(day string) (models.Entry, error) {
	row := s.db.QueryRow(`
		SELECT `+entryColumns+`
		FROM entries WHERE entry_date = ?`, day)
	return scanEntry(row)
}

// UpdateEntry overwrites the mutable fields of an existing entry and
// recomputes the word count. The entry date is immutable here: moving an
// entry to another day is a delete followed by a create.
func (s *Store) UpdateEntry(entry models.Entry) error {
	sm1, sm1c, sm2, sm2c := secondaryMoodColumns(entry.SecondaryMoods)

	res, err := s.db.Exec(`
		UPDATE entries SET
			title = ?, content = ?, updated_at = ?,
			primary_mood = ?, primary_mood_category = ?,
			secondary_mood1 = ?, secondary_mood1_category = ?,
			secondary_mood2 = ?, secondary_mood2_category = ?,
			tags = ?, word_count = ?
		WHERE id = ?`,
		entry.Title, entry.Content, time.Now().Format(time.RFC3339Nano),
		entry.Mood.Name, string(entry.Mood.Category),
		sm1, sm1c, sm2, sm2c,
		models.JoinTags(entry.Tags), models.CountWords(entry.Content),
		entry.ID)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.ErrNotFound
	}

	s.recordTags(entry.Tags)
	return nil
}

func (s *Store) DeleteEntry(id int64) error {
	res, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (s *Store) ListEntries(page, pageSize int) ([]models.Entry, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("page and page size must be at least 1")
	}

	rows, err := s.db.Query(`
		SELECT `+entryColumns+`
		FROM entries
		ORDER BY entry_date DESC
		LIMIT ? OFFSET ?`, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (s *Store) GetAllEntries() ([]models.Entry, error) {
	rows, err := s.db.Query(`
		SELECT ` + entryColumns + `
		FROM entries
		ORDER BY entry_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (s *Store) CountEntries() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT count(*) FROM entries`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) DistinctEntryDates() ([]string, error) {
	rows, err := s.db.Query(`SELECT entry_date FROM entries ORDER BY entry_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// recordTags upserts user-supplied tags into the catalog. Catalog bookkeeping
// never fails an entry write.
func (s *Store) recordTags(tags []string) {
	for _, t := range tags {
		if err := s.AddTag(t); err != nil {
			logger.Warn("Failed to record tag in catalog", "tag", t, "error", err)
		}
	}
}

func isUniqueDateViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: entries.entry_date")
}

func secondaryMoodColumns(moods []models.Mood) (sm1, sm1c, sm2, sm2c sql.NullString) {
	if len(moods) > 0 && !moods[0].IsZero() {
		sm1 = sql.NullString{String: moods[0].Name, Valid: true}
		sm1c = sql.NullString{String: string(moods[0].Category), Valid: true}
	}
	if len(moods) > 1 && !moods[1].IsZero() {
		sm2 = sql.NullString{String: moods[1].Name, Valid: true}
		sm2c = sql.NullString{String: string(moods[1].Category), Valid: true}
	}
	return
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var e models.Entry
	var createdAt, updatedAt, tags string
	var sm1, sm1c, sm2, sm2c sql.NullString

	err := row.Scan(&e.ID, &e.Title, &e.Content, &e.EntryDate, &createdAt, &updatedAt,
		&e.Mood.Name, (*string)(&e.Mood.Category),
		&sm1, &sm1c, &sm2, &sm2c,
		&tags, &e.WordCount)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, errors.ErrNotFound
		}
		return models.Entry{}, err
	}

	e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	if sm1.Valid && sm1c.Valid {
		e.SecondaryMoods = append(e.SecondaryMoods, models.Mood{
			Name:     sm1.String,
			Category: models.MoodCategory(sm1c.String),
		})
	}
	if sm2.Valid && sm2c.Valid {
		e.SecondaryMoods = append(e.SecondaryMoods, models.Mood{
			Name:     sm2.String,
			Category: models.MoodCategory(sm2c.String),
		})
	}

	e.Tags = models.SplitTags(tags)
	return e, nil
}

func scanEntries(rows *sql.Rows) ([]models.Entry, error) {
	var entries []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
