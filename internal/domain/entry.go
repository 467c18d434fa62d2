package domain

import "time"

// Entry represents one game in the catalog.
type Entry struct {
	ID           int64  `json:"id"`           // Unique identifier, assigned at creation
	Title        string `json:"title"`        // Display title (required)
	Platform     string `json:"platform"`     // Platform name, e.g. "Switch", "PC" (required)
	Genre        string `json:"genre"`        // Optional genre label
	Status       Status `json:"status"`       // Play status
	PurchaseDate string `json:"purchaseDate"` // Optional ISO date (YYYY-MM-DD)
	Notes        string `json:"notes"`        // Optional free-form notes
	AddedDate    string `json:"addedDate"`    // RFC 3339 timestamp, set once at creation
}

// Draft holds the user-submitted fields of an entry before the store
// assigns an ID and AddedDate.
type Draft struct {
	Title        string
	Platform     string
	Genre        string
	Status       Status
	PurchaseDate string
	Notes        string
}

// NewEntry builds an Entry from a draft with the given identity fields.
// Status defaults to unplayed when the draft leaves it empty.
func NewEntry(id int64, draft Draft, addedAt time.Time) Entry {
	status := draft.Status
	if status == "" {
		status = StatusUnplayed
	}
	return Entry{
		ID:           id,
		Title:        draft.Title,
		Platform:     draft.Platform,
		Genre:        draft.Genre,
		Status:       status,
		PurchaseDate: draft.PurchaseDate,
		Notes:        draft.Notes,
		AddedDate:    addedAt.UTC().Format(time.RFC3339),
	}
}
