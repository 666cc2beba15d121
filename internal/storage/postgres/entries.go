package postgres

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/quilljournal/quill/internal/errors"
	"github.com/quilljournal/quill/internal/logger"
	"github.com/quilljournal/quill/internal/models"
)

const entryColumns = `id, title, content, entry_date, created_at, updated_at,
	primary_mood, primary_mood_category,
	secondary_mood1, secondary_mood1_category,
	secondary_mood2, secondary_mood2_category,
	tags, word_count`

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = "23505"

func (s *Store) CreateEntry(entry models.Entry) (int64, error) {
	now := time.Now()
	sm1, sm1c, sm2, sm2c := secondaryMoodColumns(entry.SecondaryMoods)

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO entries (
			title, content, entry_date, created_at, updated_at,
			primary_mood, primary_mood_category,
			secondary_mood1, secondary_mood1_category,
			secondary_mood2, secondary_mood2_category,
			tags, word_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		entry.Title, entry.Content, entry.EntryDate,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
		entry.Mood.Name, string(entry.Mood.Category),
		sm1, sm1c, sm2, sm2c,
		models.JoinTags(entry.Tags), models.CountWords(entry.Content)).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return 0, errors.ErrDuplicateDate
		}
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}

	s.recordTags(entry.Tags)
	return id, nil
}

func (s *Store) GetEntry(id int64) (models.Entry, error) {
	row := s.db.QueryRow(`
		SELECT `+entryColumns+`
		FROM entries WHERE id = $1`, id)
	return scanEntry(row)
}

func (s *Store) GetEntryByDate(day string) (models.Entry, error) {
	row := s.db.QueryRow(`
		SELECT `+entryColumns+`
		FROM entries WHERE entry_date = $1`, day)
	return scanEntry(row)
}

func (s *Store) UpdateEntry(entry models.Entry) error {
	sm1, sm1c, sm2, sm2c := secondaryMoodColumns(entry.SecondaryMoods)

	res, err := s.db.Exec(`
		UPDATE entries SET
			title = $1, content = $2, updated_at = $3,
			primary_mood = $4, primary_mood_category = $5,
			secondary_mood1 = $6, secondary_mood1_category = $7,
			secondary_mood2 = $8, secondary_mood2_category = $9,
			tags = $10, word_count = $11
		WHERE id = $12`,
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
	res, err := s.db.Exec(`DELETE FROM entries WHERE id = $1`, id)
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
		LIMIT $1 OFFSET $2`, pageSize, (page-1)*pageSize)
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

func (s *Store) recordTags(tags []string) {
	for _, t := range tags {
		if err := s.AddTag(t); err != nil {
			logger.Warn("Failed to record tag in catalog", "tag", t, "error", err)
		}
	}
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
