// Package search is the read-only query layer over the entry store:
// substring search plus date-range, mood, and tag filters. It never mutates
// state; every method returns entries ordered by entry date descending,
// which is the order the store hands them out in.
package search

import (
	"fmt"
	"strings"

	"github.com/quilljournal/quill/internal/models"
	"github.com/quilljournal/quill/internal/storage"
)

type Service struct {
	store storage.Provider
}

func New(store storage.Provider) *Service {
	return &Service{store: store}
}

// Search returns entries whose title or content contains term as a
// case-sensitive substring. A blank term returns the unfiltered list.
func (s *Service) Search(term string) ([]models.Entry, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(term) == "" {
		return entries, nil
	}

	var matched []models.Entry
	for _, e := range entries {
		if strings.Contains(e.Title, term) || strings.Contains(e.Content, term) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// FilterByDateRange returns entries with start <= entryDate <= end, both
// inclusive. An end date before the start date is an error.
func (s *Service) FilterByDateRange(start, end string) ([]models.Entry, error) {
	if end < start {
		return nil, fmt.Errorf("end date %s is before start date %s", end, start)
	}

	entries, err := s.store.GetAllEntries()
	if err != nil {
		return nil, err
	}

	var matched []models.Entry
	for _, e := range entries {
		// YYYY-MM-DD strings compare lexicographically in date order.
		if e.EntryDate >= start && e.EntryDate <= end {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// FilterByMood returns entries whose primary or either secondary mood name
// equals moodName exactly.
func (s *Service) FilterByMood(moodName string) ([]models.Entry, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return nil, err
	}

	var matched []models.Entry
	for _, e := range entries {
		for _, m := range e.Moods() {
			if m.Name == moodName {
				matched = append(matched, e)
				break
			}
		}
	}
	return matched, nil
}

// FilterByMoodCategory returns entries with any mood slot in the given
// category.
func (s *Service) FilterByMoodCategory(category models.MoodCategory) ([]models.Entry, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return nil, err
	}

	var matched []models.Entry
	for _, e := range entries {
		for _, m := range e.Moods() {
			if m.Category == category {
				matched = append(matched, e)
				break
			}
		}
	}
	return matched, nil
}

// FilterByTag returns entries whose tag list contains the given tag as an
// exact trimmed token, never as a substring of a longer tag.
func (s *Service) FilterByTag(tag string) ([]models.Entry, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return nil, err
	}

	tag = strings.TrimSpace(tag)
	var matched []models.Entry
	for _, e := range entries {
		for _, t := range e.Tags {
			if t == tag {
				matched = append(matched, e)
				break
			}
		}
	}
	return matched, nil
}
