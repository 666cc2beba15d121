package settings

import (
	"fmt"

	"github.com/quilljournal/quill/internal/cli"
	"github.com/quilljournal/quill/internal/keyring"
	"github.com/quilljournal/quill/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	EntriesPerPage *int    `help:"Entries shown per page in listings."`
	Theme          *string `help:"Display theme name."`
	Lock           *bool   `help:"Enable or disable the journal lock."`
	Timezone       *string `help:"IANA timezone used to determine 'today' (or 'Local')."`

	SetConnectionString    string `help:"Store a PostgreSQL connection string in the OS keyring." placeholder:"CONN"`
	DeleteConnectionString bool   `help:"Remove the stored PostgreSQL connection string from the OS keyring."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	// Keyring operations don't touch the store.
	if c.SetConnectionString != "" {
		if err := keyring.SetConnectionString(c.SetConnectionString); err != nil {
			return err
		}
		fmt.Println("Connection string stored in OS keyring.")
		return nil
	}
	if c.DeleteConnectionString {
		if err := keyring.DeleteConnectionString(); err != nil {
			return err
		}
		fmt.Println("Connection string removed from OS keyring.")
		return nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Entries Per Page: %d\n", settings.EntriesPerPage)
		fmt.Printf("  Theme:            %s\n", settings.Theme)
		fmt.Printf("  Lock Enabled:     %v\n", settings.LockEnabled)
		fmt.Printf("  Timezone:         %s\n", settings.Timezone)
		return nil
	}

	updated := false
	if c.EntriesPerPage != nil {
		if *c.EntriesPerPage < 1 {
			return fmt.Errorf("entries per page must be at least 1")
		}
		settings.EntriesPerPage = *c.EntriesPerPage
		updated = true
	}
	if c.Theme != nil {
		settings.Theme = *c.Theme
		updated = true
	}
	if c.Lock != nil {
		settings.LockEnabled = *c.Lock
		updated = true
	}
	if c.Timezone != nil {
		if _, err := utils.LoadLocation(*c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", *c.Timezone, err)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
