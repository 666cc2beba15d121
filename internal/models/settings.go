package models

// Settings holds the persisted application preferences. The core reads
// EntriesPerPage as the default page size for listings; theme and lock
// state belong to the presentation layer and are stored opaquely.
type Settings struct {
	EntriesPerPage int    `json:"entries_per_page"`
	Theme          string `json:"theme"`
	LockEnabled    bool   `json:"lock_enabled"`
	Timezone       string `json:"timezone"`
}
