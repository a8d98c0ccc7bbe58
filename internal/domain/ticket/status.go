package ticket

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the server-assigned ticket status. The set is open-ended:
// the server may introduce values the client has never seen, so unknown
// statuses render as-is instead of failing.
type Status string

const (
	StatusPending           Status = "Pending"
	StatusInProgress        Status = "In Progress"
	StatusMarkAsCompleted   Status = "Mark as Completed"
	StatusReOpened          Status = "ReOpened"
	StatusCompleted         Status = "Completed"
	StatusUnderVerification Status = "Under Verification"
)

var titleCaser = cases.Title(language.English)

// Normalize maps the loose casing the API emits onto the known constants.
// Unrecognized values pass through unchanged.
func Normalize(raw string) Status {
	trimmed := strings.TrimSpace(raw)
	for _, known := range []Status{
		StatusPending,
		StatusInProgress,
		StatusMarkAsCompleted,
		StatusReOpened,
		StatusCompleted,
		StatusUnderVerification,
	} {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return Status(trimmed)
}

// Label returns the human display form of the status.
func (s Status) Label() string {
	if s == "" {
		return "Unknown"
	}
	return titleCaser.String(string(s))
}

// IsOpen reports whether the ticket still needs attention. Anything that
// is not completed counts as open; unknown statuses are treated as open.
func (s Status) IsOpen() bool {
	switch Normalize(string(s)) {
	case StatusCompleted, StatusMarkAsCompleted:
		return false
	default:
		return true
	}
}

func (s Status) String() string {
	return string(s)
}
