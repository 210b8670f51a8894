// Package lifecycle holds the rules that govern how a case moves between
// review states and what each state means for citizens and reviewers.
package lifecycle

import "blightwatch-be/models"

// Badge is the display triple for a status.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Classify returns the badge for s. The second result is false for a value
// outside models.AllStatuses, in which case no badge should be drawn.
func Classify(s models.CaseStatus) (Badge, bool) {
	switch s {
	case models.StatusApproved:
		return Badge{Label: "Approved", Color: "bg-green-100 text-green-800", Icon: "check-circle"}, true
	case models.StatusPending:
		return Badge{Label: "Pending", Color: "bg-amber-100 text-amber-800", Icon: "clock"}, true
	case models.StatusRevision:
		return Badge{Label: "Needs Revision", Color: "bg-red-100 text-red-800", Icon: "alert-circle"}, true
	case models.StatusAdded:
		return Badge{Label: "Added", Color: "bg-indigo-100 text-indigo-800", Icon: "plus-circle"}, true
	case models.StatusClosed:
		return Badge{Label: "Closed", Color: "bg-gray-100 text-gray-800", Icon: "x-circle"}, true
	default:
		return Badge{}, false
	}
}

// BadgeFor is Classify for JSON payloads: nil means "no badge".
func BadgeFor(s models.CaseStatus) *Badge {
	b, ok := Classify(s)
	if !ok {
		return nil
	}
	return &b
}
