package sqlite

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/quilljournal/quill/internal/constants"
	"github.com/quilljournal/quill/internal/errors"
	"github.com/quilljournal/quill/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "quill.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testEntry(date string) models.Entry {
	return models.Entry{
		Title:     "Entry for " + date,
		Content:   "Wrote a little about the day and what stood out.",
		EntryDate: date,
		Mood:      models.Mood{Name: "calm", Category: models.MoodNeutral},
		Tags:      []string{"work"},
	}
}

func TestCreateAndGetEntry(t *testing.T) {
	store := newTestStore(t)

	e := testEntry("2026-08-27")
	e.SecondaryMoods = []models.Mood{
		{Name: "hopeful", Category: models.MoodPositive},
		{Name: "tired", Category: models.MoodNegative},
	}
	e.Tags = []string{"work", "health"}

	id, err := store.CreateEntry(e)
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}
	if id <= 0 {
		t.Fatalf("CreateEntry() id = %d, want positive", id)
	}

	got, err := store.GetEntry(id)
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if got.Title != e.Title || got.Content != e.Content || got.EntryDate != e.EntryDate {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.Mood.Name != "calm" || got.Mood.Category != models.MoodNeutral {
		t.Errorf("primary mood = %+v", got.Mood)
	}
	if len(got.SecondaryMoods) != 2 || got.SecondaryMoods[0].Name != "hopeful" || got.SecondaryMoods[1].Name != "tired" {
		t.Errorf("secondary moods = %+v", got.SecondaryMoods)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "work" || got.Tags[1] != "health" {
		t.Errorf("tags = %v", got.Tags)
	}
	if got.WordCount != models.CountWords(e.Content) {
		t.Errorf("word count = %d, want %d", got.WordCount, models.CountWords(e.Content))
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not assigned on create")
	}

	byDate, err := store.GetEntryByDate("2026-08-27")
	if err != nil {
		t.Fatalf("GetEntryByDate() error = %v", err)
	}
	if byDate.ID != id {
		t.Errorf("GetEntryByDate() id = %d, want %d", byDate.ID, id)
	}
}

func TestCreateEntryDuplicateDate(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.CreateEntry(testEntry("2026-08-27")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := store.CreateEntry(testEntry("2026-08-27"))
	if !errors.IsDuplicateDate(err) {
		t.Fatalf("second create error = %v, want ErrDuplicateDate", err)
	}

	// The existing entry is untouched and still the only one.
	count, err := store.CountEntries()
	if err != nil {
		t.Fatalf("CountEntries() error = %v", err)
	}
	if count != 1 {
		t.Errorf("entry count = %d, want 1", count)
	}
}

func TestConcurrentCreateSameDate(t *testing.T) {
	store := newTestStore(t)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.CreateEntry(testEntry("2026-08-27"))
		}(i)
	}
	wg.Wait()

	var created, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.IsDuplicateDate(err):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Errorf("%d creates succeeded, want exactly 1", created)
	}
	if duplicates != attempts-1 {
		t.Errorf("%d duplicate errors, want %d", duplicates, attempts-1)
	}
}

func TestUpdateEntry(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreateEntry(testEntry("2026-08-27"))
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}
	before, err := store.GetEntry(id)
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}

	time.Sleep(5 * time.Millisecond) // let updated_at advance

	updated := before
	updated.Title = "Revised title"
	updated.Content = "A longer revision with quite a few more words than before."
	updated.Mood = models.Mood{Name: "happy", Category: models.MoodPositive}
	updated.Tags = []string{"health"}
	if err := store.UpdateEntry(updated); err != nil {
		t.Fatalf("UpdateEntry() error = %v", err)
	}

	after, err := store.GetEntry(id)
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if after.Title != "Revised title" || after.Mood.Name != "happy" {
		t.Errorf("update not applied: %+v", after)
	}
	if after.WordCount != models.CountWords(updated.Content) {
		t.Errorf("word count = %d, want recomputed %d", after.WordCount, models.CountWords(updated.Content))
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("updated_at did not advance: before=%v after=%v", before.UpdatedAt, after.UpdatedAt)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at changed: before=%v after=%v", before.CreatedAt, after.CreatedAt)
	}
	if after.EntryDate != before.EntryDate {
		t.Errorf("entry_date changed: %q -> %q", before.EntryDate, after.EntryDate)
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	store := newTestStore(t)

	e := testEntry("2026-08-27")
	e.ID = 12345
	if err := store.UpdateEntry(e); !errors.IsNotFound(err) {
		t.Fatalf("UpdateEntry() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreateEntry(testEntry("2026-08-27"))
	if err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	if err := store.DeleteEntry(id); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}
	if _, err := store.GetEntry(id); !errors.IsNotFound(err) {
		t.Errorf("GetEntry() after delete = %v, want ErrNotFound", err)
	}
	if err := store.DeleteEntry(id); !errors.IsNotFound(err) {
		t.Errorf("second DeleteEntry() = %v, want ErrNotFound", err)
	}

	// The date is free again.
	if _, err := store.CreateEntry(testEntry("2026-08-27")); err != nil {
		t.Errorf("create after delete: %v", err)
	}
}

func TestListEntriesPagination(t *testing.T) {
	store := newTestStore(t)

	dates := []string{"2026-08-21", "2026-08-22", "2026-08-23", "2026-08-24", "2026-08-25"}
	for _, d := range dates {
		if _, err := store.CreateEntry(testEntry(d)); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}

	page1, err := store.ListEntries(1, 2)
	if err != nil {
		t.Fatalf("ListEntries(1, 2) error = %v", err)
	}
	if len(page1) != 2 || page1[0].EntryDate != "2026-08-25" || page1[1].EntryDate != "2026-08-24" {
		t.Errorf("page 1 = %v, want newest first", entryDates(page1))
	}

	page3, err := store.ListEntries(3, 2)
	if err != nil {
		t.Fatalf("ListEntries(3, 2) error = %v", err)
	}
	if len(page3) != 1 || page3[0].EntryDate != "2026-08-21" {
		t.Errorf("page 3 = %v, want the single oldest entry", entryDates(page3))
	}

	empty, err := store.ListEntries(4, 2)
	if err != nil {
		t.Fatalf("ListEntries(4, 2) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("page past the end = %v, want empty", entryDates(empty))
	}

	if _, err := store.ListEntries(0, 2); err == nil {
		t.Error("ListEntries(0, 2) = nil error, want rejection")
	}
}

func TestGetAllEntriesOrder(t *testing.T) {
	store := newTestStore(t)

	for _, d := range []string{"2026-08-23", "2026-08-25", "2026-08-21"} {
		if _, err := store.CreateEntry(testEntry(d)); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}

	all, err := store.GetAllEntries()
	if err != nil {
		t.Fatalf("GetAllEntries() error = %v", err)
	}
	want := []string{"2026-08-25", "2026-08-23", "2026-08-21"}
	got := entryDates(all)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GetAllEntries() order = %v, want %v", got, want)
		}
	}
}

func TestDistinctEntryDates(t *testing.T) {
	store := newTestStore(t)

	for _, d := range []string{"2026-08-25", "2026-08-21", "2026-08-23"} {
		if _, err := store.CreateEntry(testEntry(d)); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}

	dates, err := store.DistinctEntryDates()
	if err != nil {
		t.Fatalf("DistinctEntryDates() error = %v", err)
	}
	want := []string{"2026-08-21", "2026-08-23", "2026-08-25"}
	if len(dates) != len(want) {
		t.Fatalf("dates = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("dates = %v, want ascending %v", dates, want)
		}
	}
}

func TestTagCatalog(t *testing.T) {
	store := newTestStore(t)

	tags, err := store.GetAllTags()
	if err != nil {
		t.Fatalf("GetAllTags() error = %v", err)
	}
	if len(tags) != len(constants.PrebuiltTags) {
		t.Fatalf("seeded %d tags, want %d", len(tags), len(constants.PrebuiltTags))
	}
	for _, tag := range tags {
		if !tag.Prebuilt {
			t.Errorf("seeded tag %q not marked prebuilt", tag.Name)
		}
	}

	// Writing an entry with a new tag grows the catalog.
	e := testEntry("2026-08-27")
	e.Tags = []string{"sourdough"}
	if _, err := store.CreateEntry(e); err != nil {
		t.Fatalf("CreateEntry() error = %v", err)
	}

	tags, err = store.GetAllTags()
	if err != nil {
		t.Fatalf("GetAllTags() error = %v", err)
	}
	var found bool
	for _, tag := range tags {
		if tag.Name == "sourdough" {
			found = true
			if tag.Prebuilt {
				t.Error("user tag marked prebuilt")
			}
		}
	}
	if !found {
		t.Error("user tag missing from catalog")
	}

	// Re-initializing does not duplicate or demote seeded tags.
	if err := store.Init(); err != nil {
		t.Fatalf("re-Init() error = %v", err)
	}
	tags, err = store.GetAllTags()
	if err != nil {
		t.Fatalf("GetAllTags() error = %v", err)
	}
	if len(tags) != len(constants.PrebuiltTags)+1 {
		t.Errorf("catalog size after re-init = %d, want %d", len(tags), len(constants.PrebuiltTags)+1)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.EntriesPerPage != constants.DefaultEntriesPerPage {
		t.Errorf("default entries per page = %d, want %d",
			settings.EntriesPerPage, constants.DefaultEntriesPerPage)
	}

	settings.EntriesPerPage = 25
	settings.Theme = "dark"
	settings.LockEnabled = true
	settings.Timezone = "America/New_York"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got != settings {
		t.Errorf("settings round trip = %+v, want %+v", got, settings)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("Load() on uninitialized path = nil, want error")
	}
}

func entryDates(entries []models.Entry) []string {
	dates := make([]string, len(entries))
	for i, e := range entries {
		dates[i] = e.EntryDate
	}
	return dates
}
