package models

import (
	"regexp"
	"strings"
	"time"
)

var caseIDPattern = regexp.MustCompile(`^[A-Z]+-[A-Z]+-[0-9]+$`)

// Case represents a blight issue reported by a citizen
type Case struct {
	ID           string       `bson:"_id" json:"id"`
	Category     CaseCategory `bson:"category" json:"category"`
	Latitude     float64      `bson:"latitude" json:"latitude"`
	Longitude    float64      `bson:"longitude" json:"longitude"`
	Points       int          `bson:"points" json:"points"`
	Description  string       `bson:"description" json:"description"`
	Images       []string     `bson:"images" json:"images"`
	Status       CaseStatus   `bson:"status" json:"status"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	Area         string       `bson:"area" json:"area"`
	Organization string       `bson:"organization" json:"organization"`
}

// ValidCaseID reports whether id has the <PREFIX>-<PREFIX>-<digits> shape.
func ValidCaseID(id string) bool {
	return caseIDPattern.MatchString(id)
}

// IssueNumber returns the numeric segment of the case ID.
func (c *Case) IssueNumber() string {
	parts := strings.Split(c.ID, "-")
	if len(parts) < 3 {
		return c.ID
	}
	return parts[2]
}

// Clone returns a deep copy so callers cannot alias stored slices.
func (c *Case) Clone() *Case {
	out := *c
	out.Images = append([]string{}, c.Images...)
	return &out
}
