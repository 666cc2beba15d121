package sqlite

import "github.com/quilljournal/quill/internal/models"

func (s *Store) GetAllTags() ([]models.Tag, error) {
	rows, err := s.db.Query(`SELECT name, prebuilt FROM tags ORDER BY prebuilt DESC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.Name, &t.Prebuilt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// AddTag records a user-defined tag in the catalog. Adding an existing tag
// is a no-op.
func (s *Store) AddTag(name string) error {
	_, err := s.db.Exec(`
		INSERT INTO tags (name, prebuilt) VALUES (?, 0)
		ON CONFLICT(name) DO NOTHING`, name)
	return err
}
