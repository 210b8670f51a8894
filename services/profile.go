package services

import (
	"fmt"

	"blightwatch-be/listing"
	"blightwatch-be/models"
)

const pointsPerLevel = 100

// Achievement is a profile badge and whether the reporter has earned it.
type Achievement struct {
	Name   string `json:"name"`
	Earned bool   `json:"earned"`
}

// Profile is a reporter's standing and submission history.
type Profile struct {
	Name           string                    `json:"name"`
	Title          string                    `json:"title"`
	Points         int                       `json:"points"`
	Rank           int                       `json:"rank"`
	Level          int                       `json:"level"`
	LevelProgress  int                       `json:"levelProgress"`
	TotalSubmitted int                       `json:"totalSubmitted"`
	ByStatus       map[models.CaseStatus]int `json:"byStatus"`
	Achievements   []Achievement             `json:"achievements"`
	Submissions    []*models.Submission      `json:"submissions"`
}

// earnedPoints counts submissions that made it onto the case list.
func earnedPoints(subs []*models.Submission) (points, accepted int) {
	for _, s := range subs {
		if s.Status == models.StatusApproved || s.Status == models.StatusAdded {
			points += s.Points
			accepted++
		}
	}
	return points, accepted
}

func distinctAreas(subs []*models.Submission) int {
	seen := make(map[string]bool)
	for _, s := range subs {
		seen[s.Area] = true
	}
	return len(seen)
}

// Profile builds the demo reporter's profile. status filters the listed
// submissions only; totals and achievements always cover the full history.
func (s *CaseService) Profile(status string) (*Profile, error) {
	if listing.ByStatus(status) != nil {
		if _, err := models.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	subs := models.SampleSubmissions()
	points, accepted := earnedPoints(subs)

	rank := 0
	for _, e := range s.Leaderboard(models.Daily) {
		if e.IsCurrentUser {
			rank = e.Rank
		}
	}

	byStatus := make(map[models.CaseStatus]int, len(models.AllStatuses))
	for _, st := range models.AllStatuses {
		byStatus[st] = 0
	}
	for _, sub := range subs {
		byStatus[sub.Status]++
	}

	return &Profile{
		Name:           models.DemoReporter,
		Title:          "Community Leader",
		Points:         points,
		Rank:           rank,
		Level:          points/pointsPerLevel + 1,
		LevelProgress:  points % pointsPerLevel,
		TotalSubmitted: len(subs),
		ByStatus:       byStatus,
		Achievements: []Achievement{
			{Name: "First Report", Earned: len(subs) >= 1},
			{Name: "5 Reports", Earned: len(subs) >= 5},
			{Name: "10 Approved", Earned: accepted >= 10},
			{Name: "Explorer", Earned: distinctAreas(subs) >= 5},
			{Name: "Top 10", Earned: rank > 0 && rank <= 10},
			{Name: "25 Reports", Earned: len(subs) >= 25},
		},
		Submissions: listing.FilterSubmissions(subs, status),
	}, nil
}
