package models

import (
	"strings"
	"time"
	"unicode"
)

// ReviewComment is an admin's note left while reviewing a case.
type ReviewComment struct {
	ID         string     `bson:"_id" json:"id"`
	CaseID     string     `bson:"caseId" json:"caseId"`
	ReviewerID string     `bson:"reviewerId" json:"reviewer"`
	Status     CaseStatus `bson:"status" json:"status"`
	Body       string     `bson:"body" json:"text"`
	CreatedAt  time.Time  `bson:"createdAt" json:"timestamp"`
}

type Presence string

const (
	Online  Presence = "online"
	Offline Presence = "offline"
)

// Reviewer is an admin-side staff member who evaluates cases.
type Reviewer struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Department    string   `json:"department"`
	Avatar        string   `json:"avatar,omitempty"`
	Status        Presence `json:"status"`
	CasesReviewed int      `json:"casesReviewed"`
}

func (r *Reviewer) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(r.Name) {
		b.WriteRune(unicode.ToUpper([]rune(part)[0]))
	}
	if b.Len() == 0 {
		return "RV"
	}
	return b.String()
}
