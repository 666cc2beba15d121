package entries

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
)

type ListCmd struct {
	Page     int `short:"p" default:"1" help:"Page number (1-based)."`
	PageSize int `help:"Entries per page. Defaults to the entries_per_page setting."`
}

func (c *ListCmd) Validate() error {
	if c.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if c.PageSize < 0 {
		return fmt.Errorf("page size must be at least 1")
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	pageSize := c.PageSize
	if pageSize == 0 {
		pageSize = ctx.EntriesPerPage()
	}

	entries, err := ctx.Store.ListEntries(c.Page, pageSize)
	if err != nil {
		return err
	}

	total, err := ctx.Store.CountEntries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		if total == 0 {
			fmt.Println("No entries yet. Write your first with 'quill add'.")
		} else {
			fmt.Printf("No entries on page %d (%d entries total).\n", c.Page, total)
		}
		return nil
	}

	for _, e := range entries {
		fmt.Println(cli.RenderEntryLine(e))
	}
	fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("page %d · %d entries total", c.Page, total)))
	return nil
}
