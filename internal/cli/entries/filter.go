package entries

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
	"github.com/quilljournal/quill/internal/models"
	"github.com/quilljournal/quill/internal/search"
	"github.com/quilljournal/quill/internal/utils"
)

type FilterCmd struct {
	From     string `help:"Start date (YYYY-MM-DD), inclusive."`
	To       string `help:"End date (YYYY-MM-DD), inclusive."`
	Mood     string `short:"m" help:"Filter by exact mood name across all mood slots."`
	Category string `help:"Filter by mood category (positive|neutral|negative)."`
	Tag      string `help:"Filter by exact tag."`
}

func (c *FilterCmd) Validate() error {
	set := 0
	if c.From != "" || c.To != "" {
		if c.From == "" || c.To == "" {
			return fmt.Errorf("--from and --to must be given together")
		}
		if !utils.ValidateDay(c.From) || !utils.ValidateDay(c.To) {
			return fmt.Errorf("dates must be in YYYY-MM-DD format")
		}
		set++
	}
	if c.Mood != "" {
		set++
	}
	if c.Category != "" {
		if !models.MoodCategory(c.Category).IsValid() {
			return fmt.Errorf("unknown mood category %q", c.Category)
		}
		set++
	}
	if c.Tag != "" {
		set++
	}
	if set == 0 {
		return fmt.Errorf("at least one filter is required (--from/--to, --mood, --category, or --tag)")
	}
	if set > 1 {
		return fmt.Errorf("filters cannot be combined; use one at a time")
	}
	return nil
}

func (c *FilterCmd) Run(ctx *cli.Context) error {
	svc := search.New(ctx.Store)

	var entries []models.Entry
	var err error
	switch {
	case c.From != "":
		entries, err = svc.FilterByDateRange(c.From, c.To)
	case c.Mood != "":
		entries, err = svc.FilterByMood(c.Mood)
	case c.Category != "":
		entries, err = svc.FilterByMoodCategory(models.MoodCategory(c.Category))
	default:
		entries, err = svc.FilterByTag(c.Tag)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No entries match the filter.")
		return nil
	}

	for _, e := range entries {
		fmt.Println(cli.RenderEntryLine(e))
	}
	fmt.Println(cli.MutedStyle.Render(fmt.Sprintf("%d matching entries", len(entries))))
	return nil
}
