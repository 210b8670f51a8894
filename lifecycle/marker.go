package lifecycle

import (
	"strconv"

	"blightwatch-be/models"
)

// Marker is a case pin on the citizen map. Left and Top are percentages of
// the map viewport; there is no real projection behind them.
type Marker struct {
	CaseID       string              `json:"caseId"`
	Category     models.CaseCategory `json:"category"`
	Status       models.CaseStatus   `json:"status"`
	Organization string              `json:"organization"`
	Points       int                 `json:"points"`
	Left         float64             `json:"left"`
	Top          float64             `json:"top"`
	Icon         string              `json:"icon"`
	Color        string              `json:"color"`
	Visited      bool                `json:"visited"`
	Clickable    bool                `json:"clickable"`
	Hint         string              `json:"hint"`
}

// PlaceMarker lays out c on a fixed grid keyed by its issue number so pins
// never move between renders.
func PlaceMarker(c *models.Case, visited bool) Marker {
	n, err := strconv.Atoi(c.IssueNumber())
	if err != nil {
		n = 0
	}
	pos := n % 100

	m := Marker{
		CaseID:       c.ID,
		Category:     c.Category,
		Status:       c.Status,
		Organization: c.Organization,
		Points:       c.Points,
		Left:         float64(30 + (pos%10)*4),
		Top:          float64(30 + (pos/10)*4),
		Icon:         c.Category.Icon(),
		Color:        markerColor(c.Status),
		Visited:      visited,
		Clickable:    CanClaim(c.Status),
	}
	if m.Clickable {
		m.Hint = "Available - click to claim"
	} else {
		m.Hint = "Under review - cannot be claimed"
	}
	return m
}

func markerColor(s models.CaseStatus) string {
	switch s {
	case models.StatusPending:
		return "text-amber-500"
	case models.StatusRevision:
		return "text-red-500"
	default:
		return "text-indigo-600"
	}
}
