package collection

import (
	"encoding/json"
	"log/slog"
	"time"

	"ludex/internal/domain"
)

// Persisted keys
const (
	KeyEntries = "entries"
	KeyTheme   = "theme"
)

// Store owns the authoritative in-memory catalog and the theme flag,
// mediating every mutation and writing the full collection through to the
// key-value store on each one. The in-memory copy is the single source of
// truth for reads; a failed write leaves it ahead of durable state until
// the next successful save or reload.
type Store struct {
	kv     domain.KeyValue
	logger *slog.Logger

	entries []domain.Entry
	theme   domain.Theme
}

// NewStore creates a collection store over the given key-value adapter.
func NewStore(kv domain.KeyValue, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger, theme: domain.ThemeLight}
}

// Load reads the persisted collection. Absent or malformed data initializes
// an empty collection; neither is an error.
func (s *Store) Load() {
	data, ok := s.kv.Get(KeyEntries)
	if !ok {
		s.entries = nil
		s.logger.Debug("no stored collection, starting empty")
		return
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.entries = nil
		s.logger.Warn("stored collection unreadable, starting empty", "error", err)
		return
	}

	// Coerce any out-of-range status so the in-memory invariant holds.
	// Storage is left as-is until the next save rewrites it.
	for i := range entries {
		entries[i].Status = domain.ParseStatus(string(entries[i].Status))
	}

	s.entries = entries
	s.logger.Debug("loaded collection", "count", len(entries))
}

// LoadTheme reads the persisted theme flag, defaulting to light.
func (s *Store) LoadTheme() {
	data, ok := s.kv.Get(KeyTheme)
	if !ok {
		s.theme = domain.ThemeLight
		return
	}
	s.theme = domain.ParseTheme(string(data))
}

// SetTheme sets the theme in memory, then writes it through. The in-memory
// flag is not rolled back on write failure; the next load reverts it if the
// write truly failed.
func (s *Store) SetTheme(theme domain.Theme) error {
	s.theme = domain.ParseTheme(string(theme))
	if err := s.kv.Set(KeyTheme, []byte(s.theme)); err != nil {
		s.logger.Error("failed to persist theme", "theme", s.theme, "error", err)
		return &domain.PersistenceError{Op: "save theme", Key: KeyTheme, Err: err}
	}
	return nil
}

// Add validates the draft, assigns identity and appends the new entry,
// then persists the full collection. Validation happens before any state
// change; persistence failure keeps the appended entry in memory.
func (s *Store) Add(draft domain.Draft) (domain.Entry, error) {
	if draft.Title == "" {
		return domain.Entry{}, &domain.ValidationError{Field: "title"}
	}
	if draft.Platform == "" {
		return domain.Entry{}, &domain.ValidationError{Field: "platform"}
	}
	if draft.Status != "" && !draft.Status.Valid() {
		return domain.Entry{}, &domain.ValidationError{Field: "status"}
	}

	entry := domain.NewEntry(s.nextID(), draft, time.Now())
	s.entries = append(s.entries, entry)
	s.logger.Info("added entry", "id", entry.ID, "title", entry.Title)

	return entry, s.persist()
}

// Remove deletes the entry with the given id and persists. Removing an
// absent id is a no-op, not an error.
func (s *Store) Remove(id int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.logger.Info("removed entry", "id", id)
	return s.persist()
}

// UpdateStatus replaces only the status field of the matching entry and
// persists. An absent id is a no-op.
func (s *Store) UpdateStatus(id int64, status domain.Status) error {
	if !status.Valid() {
		return &domain.ValidationError{Field: "status"}
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.entries[idx].Status = status
	s.logger.Info("updated status", "id", id, "status", status)
	return s.persist()
}

// Entries returns a copy of the collection in insertion order.
func (s *Store) Entries() []domain.Entry {
	out := make([]domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Theme returns the current theme flag.
func (s *Store) Theme() domain.Theme {
	return s.theme
}

// Len returns the number of entries in the collection.
func (s *Store) Len() int {
	return len(s.entries)
}

// --- Private helpers ---

// persist writes the entire collection as one document. Mutations never
// write deltas; callers must not assume partial-write semantics.
func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err == nil {
		err = s.kv.Set(KeyEntries, data)
	}
	if err != nil {
		s.logger.Error("failed to persist collection", "count", len(s.entries), "error", err)
		return &domain.PersistenceError{Op: "save", Key: KeyEntries, Err: err}
	}
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// nextID assigns a millisecond-timestamp id, bumped past any collision so
// ids stay unique even for back-to-back adds within the same millisecond.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	for s.indexOf(id) >= 0 {
		id++
	}
	return id
}
