package models

import "time"

type AccountStatus string

const (
	Active   AccountStatus = "active"
	Inactive AccountStatus = "inactive"
)

// StaffMember is an entry in the admin users directory.
type StaffMember struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Role       string        `json:"role"`
	Department string        `json:"department"`
	Status     AccountStatus `json:"status"`
	LastLogin  time.Time     `json:"lastLogin"`
	Avatar     string        `json:"avatar,omitempty"`
}

// StaffRole lists what a directory role may do.
type StaffRole struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// Organization is a partner body that takes ownership of cases.
type Organization struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	Address       string        `json:"address"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Status        AccountStatus `json:"status"`
	ContactPerson string        `json:"contactPerson"`
	Description   string        `json:"description"`
}

// Submission is one of a citizen's reports as their profile lists it.
type Submission struct {
	CaseID         string       `json:"caseId"`
	Category       CaseCategory `json:"category"`
	Organization   string       `json:"organization"`
	Area           string       `json:"area"`
	SubmittedAt    time.Time    `json:"submittedAt"`
	LastUpdated    time.Time    `json:"lastUpdated"`
	Status         CaseStatus   `json:"status"`
	DetailedStatus string       `json:"detailedStatus"`
	Points         int          `json:"points"`
}
