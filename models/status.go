package models

import (
	"errors"
	"fmt"
	"strings"
)

// CaseStatus is the review stage of a case.
type CaseStatus string

const (
	StatusPending  CaseStatus = "pending"
	StatusApproved CaseStatus = "approved"
	StatusRevision CaseStatus = "revision"
	StatusAdded    CaseStatus = "added"
	StatusClosed   CaseStatus = "closed"
)

// AllStatuses is the closed set of statuses, in the order review screens list them.
var AllStatuses = []CaseStatus{
	StatusPending,
	StatusApproved,
	StatusRevision,
	StatusAdded,
	StatusClosed,
}

var ErrInvalidStatus = errors.New("invalid status")

// ParseStatus normalises and validates an incoming status string.
func ParseStatus(raw string) (CaseStatus, error) {
	status := CaseStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return status, nil
}

func (s CaseStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRevision, StatusAdded, StatusClosed:
		return true
	}
	return false
}

// IsTerminal reports the intended end states. Nothing enforces it: any
// status may still move to any other.
func (s CaseStatus) IsTerminal() bool {
	return s == StatusAdded || s == StatusClosed
}

func (s CaseStatus) String() string { return string(s) }
