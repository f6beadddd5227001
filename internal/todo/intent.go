package todo

// Intent is one discrete user action dispatched by the renderer. The
// set is closed: only the types in this file implement it.
type Intent interface {
	isIntent()
}

type (
	// AddIntent appends a new entry from the current draft.
	AddIntent struct{}

	// UpdateDraftIntent replaces the pending input text.
	UpdateDraftIntent struct{ Text string }

	// RemoveIntent deletes the entry at a filtered-view position.
	RemoveIntent struct{ Index int }

	// SetFilterIntent switches the active filter.
	SetFilterIntent struct{ Mode FilterMode }

	// ToggleAllIntent flips every visible entry to the opposite of
	// IsAllCompleted.
	ToggleAllIntent struct{}

	// ToggleIntent flips completion at a filtered-view position.
	ToggleIntent struct{ Index int }

	// ClearCompletedIntent drops all completed entries.
	ClearCompletedIntent struct{}

	// NoOpIntent does nothing. Unbound input maps here.
	NoOpIntent struct{}
)

func (AddIntent) isIntent()            {}
func (UpdateDraftIntent) isIntent()    {}
func (RemoveIntent) isIntent()         {}
func (SetFilterIntent) isIntent()      {}
func (ToggleAllIntent) isIntent()      {}
func (ToggleIntent) isIntent()         {}
func (ClearCompletedIntent) isIntent() {}
func (NoOpIntent) isIntent()           {}

// Apply executes one intent against the store. Only RemoveIntent and
// ToggleIntent can fail, and only with an *IndexError.
func (s *Store) Apply(in Intent) error {
	switch in := in.(type) {
	case AddIntent:
		s.Add()
	case UpdateDraftIntent:
		s.UpdateDraft(in.Text)
	case RemoveIntent:
		return s.Remove(in.Index)
	case SetFilterIntent:
		s.SetFilter(in.Mode)
	case ToggleAllIntent:
		s.ToggleAll()
	case ToggleIntent:
		return s.Toggle(in.Index)
	case ClearCompletedIntent:
		s.ClearCompleted()
	case NoOpIntent:
	}
	return nil
}
