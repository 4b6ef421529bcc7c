package adlisting

import (
	"errors"
	"time"
)

// ThrottleWindow is the minimum gap between two payment reminders for the same listing.
const ThrottleWindow = 24 * time.Hour

const UnknownTitle = "Unknown"

var (
	ErrMissingAdUnitID     = errors.New("listing has no ad unit id")
	ErrMissingAdminContact = errors.New("listing has no admin contact")
)
