package todo

// Entry is the domain model for one to-do item.
type Entry struct {
	Description string
	Completed   bool
}

// FilterMode selects which entries the view shows.
type FilterMode int

const (
	All FilterMode = iota
	Active
	Completed
)

// Fit reports whether e belongs in the view for mode f.
func (f FilterMode) Fit(e Entry) bool {
	switch f {
	case Active:
		return !e.Completed
	case Completed:
		return e.Completed
	default:
		return true
	}
}

// String returns the display label used by the filter selector.
func (f FilterMode) String() string {
	switch f {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "All"
	}
}
