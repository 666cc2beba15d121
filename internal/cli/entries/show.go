package entries

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
	"github.com/quilljournal/quill/internal/errors"
	"github.com/quilljournal/quill/internal/models"
	"github.com/quilljournal/quill/internal/utils"
)

type ShowCmd struct {
	ID   int64  `arg:"" optional:"" help:"Entry id to show."`
	Date string `short:"d" help:"Show the entry for a date (YYYY-MM-DD) instead of by id."`
}

func (c *ShowCmd) Validate() error {
	if c.ID == 0 && c.Date == "" {
		return fmt.Errorf("an entry id or --date is required")
	}
	if c.Date != "" && !utils.ValidateDay(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	var entry models.Entry
	var err error
	if c.Date != "" {
		entry, err = ctx.Store.GetEntryByDate(c.Date)
	} else {
		entry, err = ctx.Store.GetEntry(c.ID)
	}
	if err != nil {
		if errors.IsNotFound(err) {
			if c.Date != "" {
				return fmt.Errorf("no entry for %s", c.Date)
			}
			return fmt.Errorf("no entry with id %d", c.ID)
		}
		return err
	}

	fmt.Println(cli.RenderEntry(entry))
	return nil
}
