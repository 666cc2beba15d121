// Package analytics computes behavioral statistics over the journal
// history: mood distribution, streaks, tag usage, and writing volume.
// Compute is pure; it never mutates the entries it is given and never
// fails, returning a zeroed snapshot for empty input.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/quilljournal/quill/internal/constants"
	"github.com/quilljournal/quill/internal/models"
)

// TagUsage is one tag's occurrence count across the supplied entries, with
// its share of total tag mentions.
type TagUsage struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Snapshot is the immutable result of one analytics computation. It is
// built fresh from the entry set on every request and never persisted.
type Snapshot struct {
	MoodCounts      map[models.MoodCategory]int     `json:"mood_counts"`
	MoodPercentages map[models.MoodCategory]float64 `json:"mood_percentages"`

	MostFrequentMood      string `json:"most_frequent_mood"`
	MostFrequentMoodCount int    `json:"most_frequent_mood_count"`

	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	MissedDays    int `json:"missed_days"`

	TagUsage []TagUsage `json:"tag_usage"`

	TotalWordCount   int            `json:"total_word_count"`
	AverageWordCount float64        `json:"average_word_count"`
	DailyWordCounts  map[string]int `json:"daily_word_counts"`
}

// Compute builds an analytics snapshot. entries may be a date-windowed
// subset and feeds the distribution, tag, and word statistics; allDates is
// the full unwindowed set of entry dates (sorted ascending) and feeds the
// streak and missed-day figures, so a windowed view never shortens a streak.
// today is the caller's current calendar date (YYYY-MM-DD).
func Compute(entries []models.Entry, allDates []string, today string) Snapshot {
	snap := Snapshot{
		MoodCounts:      make(map[models.MoodCategory]int),
		MoodPercentages: make(map[models.MoodCategory]float64),
		DailyWordCounts: make(map[string]int),
	}
	for _, c := range models.MoodCategories {
		snap.MoodCounts[c] = 0
		snap.MoodPercentages[c] = 0
	}

	computeMoodStats(&snap, entries)
	computeTagUsage(&snap, entries)
	computeWordStats(&snap, entries)

	snap.CurrentStreak = currentStreak(allDates, today)
	snap.LongestStreak = longestStreak(allDates)
	snap.MissedDays = missedDays(allDates)

	return snap
}

func computeMoodStats(snap *Snapshot, entries []models.Entry) {
	nameCounts := make(map[string]int)
	firstSeen := make(map[string]int)
	totalMentions := 0

	for _, e := range entries {
		for _, m := range e.Moods() {
			snap.MoodCounts[m.Category]++
			if _, seen := nameCounts[m.Name]; !seen {
				firstSeen[m.Name] = totalMentions
			}
			nameCounts[m.Name]++
			totalMentions++
		}
	}

	if totalMentions > 0 {
		for c, n := range snap.MoodCounts {
			snap.MoodPercentages[c] = round2(float64(n) / float64(totalMentions) * 100)
		}
	}

	// Highest count wins; ties go to the name encountered first. The
	// tie-break is a stable implementation choice, not a guarantee.
	for name, count := range nameCounts {
		if count > snap.MostFrequentMoodCount ||
			(count == snap.MostFrequentMoodCount && snap.MostFrequentMood != "" && firstSeen[name] < firstSeen[snap.MostFrequentMood]) {
			snap.MostFrequentMood = name
			snap.MostFrequentMoodCount = count
		}
	}
}

func computeTagUsage(snap *Snapshot, entries []models.Entry) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	totalMentions := 0

	for _, e := range entries {
		for _, t := range e.Tags {
			if _, seen := counts[t]; !seen {
				firstSeen[t] = totalMentions
			}
			counts[t]++
			totalMentions++
		}
	}
	if totalMentions == 0 {
		return
	}

	usage := make([]TagUsage, 0, len(counts))
	for name, count := range counts {
		usage = append(usage, TagUsage{
			Name:       name,
			Count:      count,
			Percentage: round2(float64(count) / float64(totalMentions) * 100),
		})
	}
	// Descending by count; ties by first mention for a stable listing.
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Count != usage[j].Count {
			return usage[i].Count > usage[j].Count
		}
		return firstSeen[usage[i].Name] < firstSeen[usage[j].Name]
	})
	snap.TagUsage = usage
}

func computeWordStats(snap *Snapshot, entries []models.Entry) {
	for _, e := range entries {
		snap.TotalWordCount += e.WordCount
		// Summed per date rather than assigned, so the stat stays correct
		// even if the one-entry-per-date invariant is ever relaxed.
		snap.DailyWordCounts[e.EntryDate] += e.WordCount
	}
	if len(entries) > 0 {
		snap.AverageWordCount = round2(float64(snap.TotalWordCount) / float64(len(entries)))
	}
}

// currentStreak walks backward day by day from today. Missing today alone
// does not break the streak; missing today and yesterday does.
func currentStreak(allDates []string, today string) int {
	if len(allDates) == 0 {
		return 0
	}

	dates := make(map[string]bool, len(allDates))
	var latest string
	for _, d := range allDates {
		dates[d] = true
		if d > latest {
			latest = d
		}
	}

	todayT, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return 0
	}

	// Broken if the most recent entry is older than yesterday.
	if latest < todayT.AddDate(0, 0, -1).Format(constants.DateFormat) {
		return 0
	}

	day := todayT
	if !dates[day.Format(constants.DateFormat)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for dates[day.Format(constants.DateFormat)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak finds the longest run of consecutive dates in the sorted
// distinct date set.
func longestStreak(allDates []string) int {
	if len(allDates) == 0 {
		return 0
	}

	longest, run := 1, 1
	prev, err := time.Parse(constants.DateFormat, allDates[0])
	if err != nil {
		return 0
	}

	for _, d := range allDates[1:] {
		cur, err := time.Parse(constants.DateFormat, d)
		if err != nil {
			return 0
		}
		if cur.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = cur
	}
	return longest
}

// missedDays is the number of days inside the first-to-last entry span
// that have no entry.
func missedDays(allDates []string) int {
	if len(allDates) < 2 {
		return 0
	}

	first, err := time.Parse(constants.DateFormat, allDates[0])
	if err != nil {
		return 0
	}
	last, err := time.Parse(constants.DateFormat, allDates[len(allDates)-1])
	if err != nil {
		return 0
	}

	span := int(last.Sub(first).Hours()/24) + 1
	return span - len(allDates)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
