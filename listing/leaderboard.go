package listing

import (
	"sort"

	"blightwatch-be/models"
)

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Points        int    `json:"points"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

// Rank orders standings by points and numbers them from 1. The same
// function serves every leaderboard period and view.
func Rank(standings []models.Standing, currentUser string) []LeaderboardEntry {
	sorted := append([]models.Standing(nil), standings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].Name < sorted[j].Name
	})

	out := make([]LeaderboardEntry, len(sorted))
	for i, s := range sorted {
		out[i] = LeaderboardEntry{
			Rank:          i + 1,
			Name:          s.Name,
			Points:        s.Points,
			IsCurrentUser: currentUser != "" && s.Name == currentUser,
		}
	}
	return out
}
