package models

import (
	"reflect"
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"   ", 0},
		{"hello", 1},
		{"hello world", 2},
		{"  spaced   out\twords\nhere  ", 4},
	}

	for _, tt := range tests {
		if got := CountWords(tt.content); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"work", []string{"work"}},
		{"work, health", []string{"work", "health"}},
		{" work ,, health ,", []string{"work", "health"}},
	}

	for _, tt := range tests {
		if got := SplitTags(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestJoinTagsRoundTrip(t *testing.T) {
	tags := []string{"work", "health", "travel"}
	if got := SplitTags(JoinTags(tags)); !reflect.DeepEqual(got, tags) {
		t.Errorf("round trip = %v, want %v", got, tags)
	}
}

func TestMoods(t *testing.T) {
	e := Entry{
		Mood: Mood{Name: "happy", Category: MoodPositive},
		SecondaryMoods: []Mood{
			{Name: "tired", Category: MoodNegative},
			{},
		},
	}

	moods := e.Moods()
	if len(moods) != 2 {
		t.Fatalf("Moods() returned %d moods, want 2", len(moods))
	}
	if moods[0].Name != "happy" {
		t.Errorf("first mood = %q, want primary mood first", moods[0].Name)
	}
	if moods[1].Name != "tired" {
		t.Errorf("second mood = %q, want tired", moods[1].Name)
	}
}
