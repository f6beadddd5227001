package todo

// Store owns the application state: the entry list, the active filter
// and the draft text of the not-yet-submitted entry. Entries keep
// insertion order; removing one shifts later positions down.
//
// Remove and Toggle take positions in the *filtered* view, not in
// storage: the filtered subsequence is materialized first and the
// position resolved against it before anything mutates.
//
// Not safe for concurrent use. The UI loop serializes intents, so no
// locking is needed.
type Store struct {
	entries []Entry
	filter  FilterMode
	draft   string
}

// NewStore returns an empty store showing all entries.
func NewStore() *Store {
	return &Store{filter: All}
}

// Add appends a new entry built from the draft and clears the draft.
// An empty draft still adds an entry; empty descriptions are legal.
func (s *Store) Add() {
	s.entries = append(s.entries, Entry{Description: s.draft})
	s.draft = ""
}

// UpdateDraft replaces the pending input text.
func (s *Store) UpdateDraft(text string) {
	s.draft = text
}

// SetFilter switches the active filter. Storage is untouched; only
// queries change.
func (s *Store) SetFilter(mode FilterMode) {
	s.filter = mode
}

// Remove deletes the entry at position i of the filtered view.
func (s *Store) Remove(i int) error {
	idx, err := s.resolve(i)
	if err != nil {
		return err
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	return nil
}

// Toggle flips the completed flag of the entry at position i of the
// filtered view.
func (s *Store) Toggle(i int) error {
	idx, err := s.resolve(i)
	if err != nil {
		return err
	}
	s.entries[idx].Completed = !s.entries[idx].Completed
	return nil
}

// ToggleAll drives every entry matching the current filter to the
// opposite of IsAllCompleted: if any visible entry is still active they
// all complete, otherwise they all reopen.
func (s *Store) ToggleAll() {
	target := !s.IsAllCompleted()
	for i := range s.entries {
		if s.filter.Fit(s.entries[i]) {
			s.entries[i].Completed = target
		}
	}
}

// ClearCompleted drops every completed entry, whatever the filter.
func (s *Store) ClearCompleted() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if Active.Fit(e) {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// Total counts all entries, filter-independent.
func (s *Store) Total() int {
	return len(s.entries)
}

// TotalActive counts entries not yet completed.
func (s *Store) TotalActive() int {
	n := 0
	for _, e := range s.entries {
		if Active.Fit(e) {
			n++
		}
	}
	return n
}

// TotalCompleted counts completed entries.
func (s *Store) TotalCompleted() int {
	n := 0
	for _, e := range s.entries {
		if Completed.Fit(e) {
			n++
		}
	}
	return n
}

// IsAllCompleted reports whether the filtered view is non-empty and
// every entry in it is completed. An empty view is never "all
// completed".
func (s *Store) IsAllCompleted() bool {
	any := false
	for _, e := range s.entries {
		if !s.filter.Fit(e) {
			continue
		}
		if !e.Completed {
			return false
		}
		any = true
	}
	return any
}

// Visible returns the entries matching the current filter, in storage
// order. The position of an entry in the returned slice is the index
// Remove and Toggle expect.
func (s *Store) Visible() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if s.filter.Fit(e) {
			out = append(out, e)
		}
	}
	return out
}

// Draft returns the pending input text.
func (s *Store) Draft() string { return s.draft }

// Filter returns the active filter mode.
func (s *Store) Filter() FilterMode { return s.filter }

// resolve maps a filtered-view position to a storage index.
func (s *Store) resolve(i int) (int, error) {
	seen := 0
	for idx, e := range s.entries {
		if !s.filter.Fit(e) {
			continue
		}
		if seen == i {
			return idx, nil
		}
		seen++
	}
	return 0, &IndexError{Index: i, Len: seen}
}
