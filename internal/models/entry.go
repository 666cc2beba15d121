package models

import (
	"strings"
	"time"
)

// MoodCategory classifies a mood name into one of three sentiment buckets.
type MoodCategory string

const (
	MoodPositive MoodCategory = "positive"
	MoodNeutral  MoodCategory = "neutral"
	MoodNegative MoodCategory = "negative"
)

// MoodCategories lists all categories in display order.
var MoodCategories = []MoodCategory{MoodPositive, MoodNeutral, MoodNegative}

// IsValid reports whether the category is one of the known values.
func (c MoodCategory) IsValid() bool {
	switch c {
	case MoodPositive, MoodNeutral, MoodNegative:
		return true
	}
	return false
}

// Mood pairs a mood name with its category. The pairing is enforced at
// construction: a mood with a name always carries a category and vice versa.
type Mood struct {
	Name     string       `json:"name"`
	Category MoodCategory `json:"category"`
}

// IsZero reports whether the mood slot is unset.
func (m Mood) IsZero() bool {
	return m.Name == "" && m.Category == ""
}

// Entry is a single journal reflection filed under one calendar day.
// EntryDate is the uniqueness key; at most one entry exists per date.
type Entry struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	EntryDate      string    `json:"entry_date"` // YYYY-MM-DD format
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Mood           Mood      `json:"mood"`
	SecondaryMoods []Mood    `json:"secondary_moods,omitempty"` // at most two
	Tags           []string  `json:"tags,omitempty"`
	WordCount      int       `json:"word_count"` // derived from Content on every write
}

// Moods returns every non-empty mood slot on the entry, primary first.
func (e Entry) Moods() []Mood {
	moods := make([]Mood, 0, 1+len(e.SecondaryMoods))
	if !e.Mood.IsZero() {
		moods = append(moods, e.Mood)
	}
	for _, m := range e.SecondaryMoods {
		if !m.IsZero() {
			moods = append(moods, m)
		}
	}
	return moods
}

// CountWords returns the number of whitespace-delimited non-empty tokens
// in content. This is the canonical word-count rule for entries.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// SplitTags parses a delimited tag string into trimmed, non-empty tokens.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	var tags []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// JoinTags encodes a tag list into the persisted delimited-string form.
func JoinTags(tags []string) string {
	var kept []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, ", ")
}

// Tag is a named label, either pre-built (seeded at store initialization)
// or user-defined.
type Tag struct {
	Name     string `json:"name"`
	Prebuilt bool   `json:"prebuilt"`
}
