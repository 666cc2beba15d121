package stats

import (
	"fmt"

	"github.com/quilljournal/quill/internal/analytics"
	"github.com/quilljournal/quill/internal/cli"
	"github.com/quilljournal/quill/internal/models"
	"github.com/quilljournal/quill/internal/search"
	"github.com/quilljournal/quill/internal/utils"
)

type StatsCmd struct {
	From string `help:"Restrict distribution/tag/word stats to entries from this date (YYYY-MM-DD)."`
	To   string `help:"Restrict distribution/tag/word stats to entries up to this date (YYYY-MM-DD)."`
}

func (c *StatsCmd) Validate() error {
	if (c.From == "") != (c.To == "") {
		return fmt.Errorf("--from and --to must be given together")
	}
	if c.From != "" && (!utils.ValidateDay(c.From) || !utils.ValidateDay(c.To)) {
		return fmt.Errorf("dates must be in YYYY-MM-DD format")
	}
	return nil
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	var entries []models.Entry
	var err error
	if c.From != "" {
		entries, err = search.New(ctx.Store).FilterByDateRange(c.From, c.To)
	} else {
		entries, err = ctx.Store.GetAllEntries()
	}
	if err != nil {
		return err
	}

	// Streaks always run over the full history, not the window.
	allDates, err := ctx.Store.DistinctEntryDates()
	if err != nil {
		return err
	}

	snap := analytics.Compute(entries, allDates, ctx.Today())
	printSnapshot(snap, len(entries))
	return nil
}

func printSnapshot(snap analytics.Snapshot, entryCount int) {
	fmt.Println(cli.HeadingStyle.Render("Journal statistics"))
	fmt.Printf("Entries analyzed: %d\n\n", entryCount)

	fmt.Println(cli.HeadingStyle.Render("Streaks"))
	fmt.Printf("  Current streak: %d days\n", snap.CurrentStreak)
	fmt.Printf("  Longest streak: %d days\n", snap.LongestStreak)
	fmt.Printf("  Missed days:    %d\n\n", snap.MissedDays)

	fmt.Println(cli.HeadingStyle.Render("Moods"))
	for _, cat := range models.MoodCategories {
		fmt.Printf("  %-8s %3d mentions (%.2f%%)\n", cat, snap.MoodCounts[cat], snap.MoodPercentages[cat])
	}
	if snap.MostFrequentMood != "" {
		fmt.Printf("  Most frequent: %s (%d mentions)\n", snap.MostFrequentMood, snap.MostFrequentMoodCount)
	}
	fmt.Println()

	if len(snap.TagUsage) > 0 {
		fmt.Println(cli.HeadingStyle.Render("Tags"))
		for _, t := range snap.TagUsage {
			fmt.Printf("  %-20s %3d (%.2f%%)\n", t.Name, t.Count, t.Percentage)
		}
		fmt.Println()
	}

	fmt.Println(cli.HeadingStyle.Render("Writing volume"))
	fmt.Printf("  Total words:   %d\n", snap.TotalWordCount)
	fmt.Printf("  Average words: %.2f\n", snap.AverageWordCount)
}
