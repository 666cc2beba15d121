package entries

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
	"github.com/quilljournal/quill/internal/export"
	"github.com/quilljournal/quill/internal/search"
	"github.com/quilljournal/quill/internal/utils"
)

type ExportCmd struct {
	From string `required:"" help:"Start date (YYYY-MM-DD), inclusive."`
	To   string `required:"" help:"End date (YYYY-MM-DD), inclusive."`
	Out  string `short:"o" required:"" help:"Output markdown file path."`
}

func (c *ExportCmd) Validate() error {
	if !utils.ValidateDay(c.From) || !utils.ValidateDay(c.To) {
		return fmt.Errorf("dates must be in YYYY-MM-DD format")
	}
	return nil
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	svc := search.New(ctx.Store)
	entries, err := svc.FilterByDateRange(c.From, c.To)
	if err != nil {
		return err
	}

	if err := export.WriteMarkdownFile(c.Out, entries); err != nil {
		return err
	}

	fmt.Printf("Exported %d entries to %s.\n", len(entries), c.Out)
	return nil
}
