package domain

import (
	"testing"
	"time"
)

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusUnplayed, true},
		{StatusPlaying, true},
		{StatusCompleted, true},
		{StatusOnHold, true},
		{Status(""), false},
		{Status("abandoned"), false},
		{Status("Completed"), false}, // case matters, the enum is closed
	}

	for _, test := range tests {
		if got := test.status.Valid(); got != test.expected {
			t.Errorf("Status(%q).Valid() = %v, expected %v", test.status, got, test.expected)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected Status
	}{
		{"playing", StatusPlaying},
		{"on-hold", StatusOnHold},
		{"", StatusUnplayed},
		{"someday", StatusUnplayed},
	}

	for _, test := range tests {
		if got := ParseStatus(test.raw); got != test.expected {
			t.Errorf("ParseStatus(%q) = %q, expected %q", test.raw, got, test.expected)
		}
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		raw      string
		expected Theme
	}{
		{"dark", ThemeDark},
		{"light", ThemeLight},
		{"", ThemeLight},
		{"Dark", ThemeLight}, // only the literal "dark" counts
		{"solarized", ThemeLight},
	}

	for _, test := range tests {
		if got := ParseTheme(test.raw); got != test.expected {
			t.Errorf("ParseTheme(%q) = %q, expected %q", test.raw, got, test.expected)
		}
	}
}

func TestNewEntry(t *testing.T) {
	addedAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	entry := NewEntry(42, Draft{Title: "Zelda", Platform: "Switch"}, addedAt)

	if entry.ID != 42 {
		t.Errorf("NewEntry() ID = %d, expected 42", entry.ID)
	}
	if entry.Status != StatusUnplayed {
		t.Errorf("NewEntry() Status = %q, expected default unplayed", entry.Status)
	}
	if entry.AddedDate != "2026-03-14T09:26:53Z" {
		t.Errorf("NewEntry() AddedDate = %q, expected RFC 3339 UTC", entry.AddedDate)
	}

	entry = NewEntry(43, Draft{Title: "Hades", Platform: "PC", Status: StatusPlaying}, addedAt)
	if entry.Status != StatusPlaying {
		t.Errorf("NewEntry() Status = %q, expected draft status preserved", entry.Status)
	}
}
