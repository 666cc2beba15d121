package entries

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
	"github.com/quilljournal/quill/internal/constants"
	"github.com/quilljournal/quill/internal/errors"
	"github.com/quilljournal/quill/internal/validation"
)

type EditCmd struct {
	ID int64 `arg:"" help:"Entry id to edit."`

	Title     string   `short:"t" help:"New title."`
	Content   string   `short:"c" help:"New content."`
	Mood      string   `short:"m" help:"New primary mood as name:category."`
	Secondary []string `short:"s" help:"New secondary moods as name:category. Replaces existing ones."`
	Tags      []string `help:"New tags. Replaces existing ones."`
}

func (c *EditCmd) Validate() error {
	if len(c.Secondary) > constants.MaxSecondaryMoods {
		return fmt.Errorf("at most %d secondary moods are allowed", constants.MaxSecondaryMoods)
	}
	return nil
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Store.GetEntry(c.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return fmt.Errorf("no entry with id %d", c.ID)
		}
		return err
	}

	flagsGiven := false
	if c.Title != "" {
		entry.Title = c.Title
		flagsGiven = true
	}
	if c.Content != "" {
		entry.Content = c.Content
		flagsGiven = true
	}
	if c.Mood != "" {
		mood, err := cli.ParseMood(c.Mood)
		if err != nil {
			return err
		}
		entry.Mood = mood
		flagsGiven = true
	}
	if len(c.Secondary) > 0 {
		secondary, err := cli.ParseMoods(c.Secondary)
		if err != nil {
			return err
		}
		entry.SecondaryMoods = secondary
		flagsGiven = true
	}
	if len(c.Tags) > 0 {
		entry.Tags = c.Tags
		flagsGiven = true
	}

	// No flags means interactive editing of the existing entry.
	if !flagsGiven {
		if err := runEntryForm(&entry); err != nil {
			return err
		}
	}

	if err := validation.ValidateEntry(entry); err != nil {
		return err
	}

	if err := ctx.Store.UpdateEntry(entry); err != nil {
		if errors.IsNotFound(err) {
			return fmt.Errorf("no entry with id %d", c.ID)
		}
		return err
	}

	ctx.PerformAutomaticBackup()
	fmt.Printf("Updated entry #%d (%s).\n", entry.ID, entry.EntryDate)
	return nil
}
