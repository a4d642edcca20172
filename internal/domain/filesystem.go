package domain

// DeleteOutcome reports what Delete did when it did not fail.
type DeleteOutcome int

const (
	// DeleteRemoved means the entry existed and was removed.
	DeleteRemoved DeleteOutcome = iota
	// DeleteMissing means nothing existed at the path.
	DeleteMissing
)

func (o DeleteOutcome) String() string {
	switch o {
	case DeleteRemoved:
		return "removed"
	case DeleteMissing:
		return "missing"
	default:
		return "unknown"
	}
}
