package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/quilljournal/quill/internal/constants"
	"github.com/quilljournal/quill/internal/errors"
	"github.com/quilljournal/quill/internal/models"
	"github.com/quilljournal/quill/internal/utils"
)

// ValidateEntry checks all field-level constraints on an entry before it
// reaches the store. The store re-enforces the date-uniqueness and existence
// invariants itself; this layer only covers shape and bounds.
func ValidateEntry(e models.Entry) error {
	title := strings.TrimSpace(e.Title)
	if utf8.RuneCountInString(title) < constants.TitleMinLen {
		return &errors.ValidationError{Field: "title", Message: "title is required"}
	}
	if utf8.RuneCountInString(title) > constants.TitleMaxLen {
		return &errors.ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", constants.TitleMaxLen),
		}
	}

	if n := utf8.RuneCountInString(e.Content); n < constants.ContentMinLen {
		return &errors.ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must be at least %d characters", constants.ContentMinLen),
		}
	} else if n > constants.ContentMaxLen {
		return &errors.ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("content must be at most %d characters", constants.ContentMaxLen),
		}
	}

	if !utils.ValidateDay(e.EntryDate) {
		return &errors.ValidationError{Field: "entry_date", Message: "entry date must be a valid YYYY-MM-DD date"}
	}

	if err := validateMood("mood", e.Mood, true); err != nil {
		return err
	}

	if len(e.SecondaryMoods) > constants.MaxSecondaryMoods {
		return &errors.ValidationError{
			Field:   "secondary_moods",
			Message: fmt.Sprintf("at most %d secondary moods are allowed", constants.MaxSecondaryMoods),
		}
	}
	for i, m := range e.SecondaryMoods {
		field := fmt.Sprintf("secondary_moods[%d]", i)
		if err := validateMood(field, m, false); err != nil {
			return err
		}
	}

	for _, t := range e.Tags {
		if strings.TrimSpace(t) == "" {
			return &errors.ValidationError{Field: "tags", Message: "tags must not be blank"}
		}
		if strings.Contains(t, constants.TagDelimiter) {
			return &errors.ValidationError{Field: "tags", Message: "tags must not contain commas"}
		}
	}

	return nil
}

// validateMood enforces the pairing invariant: a mood name always carries a
// valid category and vice versa. Secondary slots may be absent entirely but
// never half-set.
func validateMood(field string, m models.Mood, required bool) error {
	if m.IsZero() {
		if required {
			return &errors.ValidationError{Field: field, Message: "a primary mood is required"}
		}
		return nil
	}
	if strings.TrimSpace(m.Name) == "" {
		return &errors.ValidationError{Field: field, Message: "mood name must not be blank"}
	}
	if !m.Category.IsValid() {
		return &errors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("unknown mood category %q", m.Category),
		}
	}
	return nil
}
