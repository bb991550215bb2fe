package filters

import (
	"regexp"
	"testing"
	"time"
)

func TestZeroValueMatchesEverything(t *testing.T) {
	var f Filters
	if err := f.ValidateArgs(); err != nil {
		t.Fatalf("Failed to validate zero-value filters: %v", err)
	}
	if !f.MatchesPost("Any Title", time.Now(), nil) {
		t.Error("Expected the zero-value filter to match any post")
	}
}

func TestValidateArgsRejectsInvertedDateRange(t *testing.T) {
	f := Filters{
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := f.ValidateArgs(); err == nil {
		t.Error("Expected an error for an inverted date range, got nil")
	}
}

func TestDateFilter(t *testing.T) {
	f := Filters{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	if !f.IsPostDateValid(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected a date inside the range to be valid")
	}
	if f.IsPostDateValid(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected a date before the range to be invalid")
	}
	if !f.IsPostDateValid(time.Time{}) {
		t.Error("Expected a zero date to be ignored by the date filter")
	}
}

func TestTitleAndTagFilters(t *testing.T) {
	f := Filters{
		TitleRegex: regexp.MustCompile(`(?i)golang`),
		TagIds:     []string{"golang", "programming"},
	}

	if !f.MatchesPost("Golang Generics", time.Time{}, []string{"programming"}) {
		t.Error("Expected a matching title and tag to pass")
	}
	if f.MatchesPost("Rust Notes", time.Time{}, []string{"programming"}) {
		t.Error("Expected a non-matching title to fail")
	}
	if f.MatchesPost("Golang Generics", time.Time{}, []string{"rustlang"}) {
		t.Error("Expected a non-matching tag to fail")
	}
}
