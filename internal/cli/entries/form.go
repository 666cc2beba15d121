package entries

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/quilljournal/quill/internal/constants"
	"github.com/quilljournal/quill/internal/models"
)

// runEntryForm fills in the entry's user-editable fields interactively.
// Existing values pre-populate the form, so the same form serves add and
// edit.
func runEntryForm(e *models.Entry) error {
	moodName := e.Mood.Name
	moodCategory := string(e.Mood.Category)
	if moodCategory == "" {
		moodCategory = string(models.MoodNeutral)
	}
	tags := strings.Join(e.Tags, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				CharLimit(constants.TitleMaxLen).
				Value(&e.Title),
			huh.NewInput().
				Title("Mood").
				Description("A word for how today felt, e.g. Happy, Tired.").
				Value(&moodName),
			huh.NewSelect[string]().
				Title("Mood category").
				Options(huh.NewOptions(
					string(models.MoodPositive),
					string(models.MoodNeutral),
					string(models.MoodNegative),
				)...).
				Value(&moodCategory),
			huh.NewInput().
				Title("Tags").
				Description("Comma-separated, e.g. Work, Gratitude.").
				Value(&tags),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Reflection").
				CharLimit(constants.ContentMaxLen).
				Value(&e.Content),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	e.Mood = models.Mood{
		Name:     strings.TrimSpace(moodName),
		Category: models.MoodCategory(moodCategory),
	}
	e.Tags = models.SplitTags(tags)
	return nil
}
