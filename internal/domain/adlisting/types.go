package adlisting

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

func (s Status) String() string {
	return string(s)
}

// IsKnown reports whether s is one of the statuses this service transitions between.
// Statuses set by other systems are carried through untouched.
func (s Status) IsKnown() bool {
	switch s {
	case StatusPending, StatusActive:
		return true
	default:
		return false
	}
}
