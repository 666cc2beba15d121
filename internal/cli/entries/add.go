package entries

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
	"github.com/quilljournal/quill/internal/constants"
	"github.com/quilljournal/quill/internal/errors"
	"github.com/quilljournal/quill/internal/models"
	"github.com/quilljournal/quill/internal/utils"
	"github.com/quilljournal/quill/internal/validation"
)

type AddCmd struct {
	Title     string   `short:"t" help:"Entry title."`
	Content   string   `short:"c" help:"Entry content. Omit to compose interactively."`
	Date      string   `short:"d" help:"Entry date (YYYY-MM-DD). Defaults to today."`
	Mood      string   `short:"m" help:"Primary mood as name:category (e.g. Happy:positive)."`
	Secondary []string `short:"s" help:"Secondary mood as name:category. Repeatable, up to two."`
	Tags      []string `help:"Tags for the entry."`
}

func (c *AddCmd) Validate() error {
	if len(c.Secondary) > constants.MaxSecondaryMoods {
		return fmt.Errorf("at most %d secondary moods are allowed", constants.MaxSecondaryMoods)
	}
	if c.Date != "" && !utils.ValidateDay(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	entry := models.Entry{
		Title:     c.Title,
		Content:   c.Content,
		EntryDate: c.Date,
		Tags:      c.Tags,
	}
	if entry.EntryDate == "" {
		entry.EntryDate = ctx.Today()
	}

	if c.Mood != "" {
		mood, err := cli.ParseMood(c.Mood)
		if err != nil {
			return err
		}
		entry.Mood = mood
	}
	secondary, err := cli.ParseMoods(c.Secondary)
	if err != nil {
		return err
	}
	entry.SecondaryMoods = secondary

	// Missing any required field drops into the interactive form.
	if entry.Title == "" || entry.Content == "" || entry.Mood.IsZero() {
		if err := runEntryForm(&entry); err != nil {
			return err
		}
	}

	if err := validation.ValidateEntry(entry); err != nil {
		return err
	}

	id, err := ctx.Store.CreateEntry(entry)
	if err != nil {
		if errors.IsDuplicateDate(err) {
			return fmt.Errorf("an entry already exists for %s; edit it with 'quill edit' or pick another date", entry.EntryDate)
		}
		return err
	}

	ctx.PerformAutomaticBackup()
	fmt.Printf("Added entry #%d for %s.\n", id, entry.EntryDate)
	return nil
}
