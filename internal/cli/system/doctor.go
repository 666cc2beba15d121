package system

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
)

type DoctorCmd struct{}

// Run performs health checks against the configured store and reports a
// summary. It never mutates state.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	failures := 0

	// Load already rejected unsupported schema versions before we got here.
	fmt.Println("✓ schema version supported")

	count, countErr := ctx.Store.CountEntries()
	if countErr != nil {
		fmt.Printf("✗ entry table unreachable: %v\n", countErr)
		failures++
	} else {
		fmt.Printf("✓ entry table reachable (%d entries)\n", count)
	}

	dates, err := ctx.Store.DistinctEntryDates()
	switch {
	case err != nil:
		fmt.Printf("✗ could not read entry dates: %v\n", err)
		failures++
	case countErr == nil && len(dates) != count:
		fmt.Printf("✗ date uniqueness violated: %d entries over %d distinct dates\n", count, len(dates))
		failures++
	default:
		fmt.Printf("✓ one entry per calendar date (%d dates)\n", len(dates))
	}

	if _, err := ctx.Store.GetSettings(); err != nil {
		fmt.Printf("✗ settings missing: %v\n", err)
		failures++
	} else {
		fmt.Println("✓ settings present")
	}

	tags, err := ctx.Store.GetAllTags()
	if err != nil {
		fmt.Printf("✗ tag catalog unreachable: %v\n", err)
		failures++
	} else {
		fmt.Printf("✓ tag catalog present (%d tags)\n", len(tags))
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	fmt.Println("All checks passed.")
	return nil
}
