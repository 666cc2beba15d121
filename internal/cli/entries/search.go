package entries

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
	"github.com/quilljournal/quill/internal/search"
)

type SearchCmd struct {
	Term string `arg:"" optional:"" help:"Text to search for in titles and content (case-sensitive)."`
}

func (c *SearchCmd) Run(ctx *cli.Context) error {
	svc := search.New(ctx.Store)
	entries, err := svc.Search(c.Term)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No entries match %q.\n", c.Term)
		return nil
	}

	for _, e := range entries {
		fmt.Println(cli.RenderEntryLine(e))
	}
	fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("%d matching entries", len(entries))))
	return nil
}
