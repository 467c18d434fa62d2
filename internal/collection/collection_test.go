package collection

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"ludex/internal/domain"
)

// fakeKV is an in-memory key-value store with a switchable write failure.
type fakeKV struct {
	data    map[string][]byte
	failSet bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(key string) ([]byte, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeKV) Set(key string, value []byte) error {
	if f.failSet {
		return errors.New("disk full")
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Close() error { return nil }

func newTestStore(t *testing.T) (*Store, *fakeKV) {
	t.Helper()
	kv := newFakeKV()
	return NewStore(kv, nil), kv
}

func TestAdd_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.Draft
		field string
	}{
		{"missing title", domain.Draft{Platform: "PC"}, "title"},
		{"missing platform", domain.Draft{Title: "Hades"}, "platform"},
		{"invalid status", domain.Draft{Title: "Hades", Platform: "PC", Status: "abandoned"}, "status"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, kv := newTestStore(t)
			_, err := s.Add(test.draft)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Add() error = %v, expected *ValidationError", err)
			}
			if verr.Field != test.field {
				t.Errorf("ValidationError.Field = %q, expected %q", verr.Field, test.field)
			}
			if s.Len() != 0 {
				t.Errorf("collection has %d entries after failed add, expected 0", s.Len())
			}
			if _, ok := kv.Get(KeyEntries); ok {
				t.Error("failed add must not write to storage")
			}
		})
	}
}

func TestAdd_AssignsIdentity(t *testing.T) {
	s, _ := newTestStore(t)

	titles := []string{"Zelda", "Chess", "Hades"}
	seen := make(map[int64]bool)
	for _, title := range titles {
		entry, err := s.Add(domain.Draft{Title: title, Platform: "PC"})
		if err != nil {
			t.Fatalf("Add(%q) error = %v", title, err)
		}
		if entry.ID == 0 {
			t.Errorf("Add(%q) assigned zero id", title)
		}
		if seen[entry.ID] {
			t.Errorf("Add(%q) reused id %d", title, entry.ID)
		}
		seen[entry.ID] = true
		if entry.AddedDate == "" {
			t.Errorf("Add(%q) left AddedDate empty", title)
		}
		if entry.Status != domain.StatusUnplayed {
			t.Errorf("Add(%q) status = %q, expected default unplayed", title, entry.Status)
		}
	}

	// Insertion order preserved, last added at the end
	entries := s.Entries()
	for i, title := range titles {
		if entries[i].Title != title {
			t.Errorf("entries[%d].Title = %q, expected %q", i, entries[i].Title, title)
		}
	}
}

func TestAdd_PersistFailureKeepsMemory(t *testing.T) {
	s, kv := newTestStore(t)
	kv.failSet = true

	_, err := s.Add(domain.Draft{Title: "Hades", Platform: "PC"})

	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Add() error = %v, expected *PersistenceError", err)
	}
	if s.Len() != 1 {
		t.Errorf("collection has %d entries, expected 1 (no rollback on write failure)", s.Len())
	}
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)
	entry, err := s.Add(domain.Draft{Title: "Hades", Platform: "PC"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Unknown id is a no-op, not an error
	if err := s.Remove(entry.ID + 999); err != nil {
		t.Errorf("Remove(unknown) error = %v, expected nil", err)
	}
	if s.Len() != 1 {
		t.Errorf("collection has %d entries after no-op remove, expected 1", s.Len())
	}

	if err := s.Remove(entry.ID); err != nil {
		t.Errorf("Remove() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("collection has %d entries after remove, expected 0", s.Len())
	}
}

func TestUpdateStatus_ChangesOnlyStatus(t *testing.T) {
	s, _ := newTestStore(t)
	entry, err := s.Add(domain.Draft{
		Title:        "Hades",
		Platform:     "PC",
		Genre:        "Roguelike",
		PurchaseDate: "2024-01-15",
		Notes:        "bundle purchase",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := s.UpdateStatus(entry.ID, domain.StatusPlaying); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	expected := entry
	expected.Status = domain.StatusPlaying
	got := s.Entries()[0]
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("entry after UpdateStatus = %+v, expected %+v", got, expected)
	}

	// Unknown id is a no-op
	if err := s.UpdateStatus(entry.ID+999, domain.StatusCompleted); err != nil {
		t.Errorf("UpdateStatus(unknown) error = %v, expected nil", err)
	}
	if s.Entries()[0].Status != domain.StatusPlaying {
		t.Error("no-op UpdateStatus modified an entry")
	}

	// Invalid status is rejected before any change
	var verr *domain.ValidationError
	if err := s.UpdateStatus(entry.ID, "abandoned"); !errors.As(err, &verr) {
		t.Errorf("UpdateStatus(invalid) error = %v, expected *ValidationError", err)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv, nil)
	s.Load()

	for _, title := range []string{"Zelda", "Chess"} {
		if _, err := s.Add(domain.Draft{Title: title, Platform: "PC"}); err != nil {
			t.Fatalf("Add(%q) error = %v", title, err)
		}
	}

	reloaded := NewStore(kv, nil)
	reloaded.Load()

	if !reflect.DeepEqual(reloaded.Entries(), s.Entries()) {
		t.Errorf("reloaded entries = %+v, expected %+v", reloaded.Entries(), s.Entries())
	}
}

func TestLoad_AbsentAndCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"absent", nil},
		{"corrupt json", []byte(`{"not":"an array"`)},
		{"wrong shape", []byte(`{"entries": 42}`)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kv := newFakeKV()
			if test.data != nil {
				kv.data[KeyEntries] = test.data
			}

			s := NewStore(kv, nil)
			s.Load()

			if s.Len() != 0 {
				t.Errorf("Len() = %d after loading %s, expected empty collection", s.Len(), test.name)
			}
		})
	}
}

func TestLoad_CoercesUnknownStatus(t *testing.T) {
	kv := newFakeKV()
	raw, _ := json.Marshal([]domain.Entry{
		{ID: 1, Title: "Zelda", Platform: "Switch", Status: "someday"},
	})
	kv.data[KeyEntries] = raw

	s := NewStore(kv, nil)
	s.Load()

	if got := s.Entries()[0].Status; got != domain.StatusUnplayed {
		t.Errorf("loaded status = %q, expected coercion to unplayed", got)
	}
}

func TestTheme(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv, nil)

	// No stored value defaults to light
	s.LoadTheme()
	if s.Theme() != domain.ThemeLight {
		t.Errorf("Theme() = %q, expected light default", s.Theme())
	}

	if err := s.SetTheme(domain.ThemeDark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}

	// Reload through the same adapter round-trips the preference
	reloaded := NewStore(kv, nil)
	reloaded.LoadTheme()
	if reloaded.Theme() != domain.ThemeDark {
		t.Errorf("Theme() after reload = %q, expected dark", reloaded.Theme())
	}

	// Anything but the literal "dark" is light
	kv.data[KeyTheme] = []byte("solarized")
	reloaded.LoadTheme()
	if reloaded.Theme() != domain.ThemeLight {
		t.Errorf("Theme() = %q for unknown stored value, expected light", reloaded.Theme())
	}
}

func TestSetTheme_OptimisticOnWriteFailure(t *testing.T) {
	s, kv := newTestStore(t)
	kv.failSet = true

	err := s.SetTheme(domain.ThemeDark)

	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("SetTheme() error = %v, expected *PersistenceError", err)
	}
	if s.Theme() != domain.ThemeDark {
		t.Errorf("Theme() = %q after failed write, expected optimistic dark", s.Theme())
	}
}
