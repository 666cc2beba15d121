package entries

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
	"github.com/quilljournal/quill/internal/errors"
)

type DeleteCmd struct {
	ID int64 `arg:"" help:"Entry id to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Store.GetEntry(c.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return fmt.Errorf("no entry with id %d", c.ID)
		}
		return err
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteEntry(c.ID); err != nil {
		if errors.IsNotFound(err) {
			return fmt.Errorf("no entry with id %d", c.ID)
		}
		return err
	}

	fmt.Printf("Deleted entry #%d (%s).\n", entry.ID, entry.EntryDate)
	return nil
}
