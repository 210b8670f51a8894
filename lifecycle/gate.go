package lifecycle

import (
	"errors"
	"fmt"

	"blightwatch-be/models"
)

var ErrAwaitingReview = errors.New("case is awaiting review")

const (
	LabelAwaitingReview = "Awaiting Review"
	LabelSubmitRevision = "Submit Revision"
	LabelSubmitReport   = "Submit Report"
)

// Gate describes which citizen actions a case currently allows.
type Gate struct {
	Claimable   bool   `json:"claimable"`
	Submittable bool   `json:"submittable"`
	SubmitLabel string `json:"submitLabel"`
	Notice      string `json:"notice,omitempty"`
}

// CanClaim is false while a case is pending and for unknown statuses.
func CanClaim(s models.CaseStatus) bool {
	return s.Valid() && s != models.StatusPending
}

func CanSubmit(s models.CaseStatus) bool {
	return CanClaim(s)
}

func Evaluate(s models.CaseStatus) Gate {
	g := Gate{
		Claimable:   CanClaim(s),
		Submittable: CanSubmit(s),
		SubmitLabel: SubmitLabel(s),
	}
	switch s {
	case models.StatusPending:
		g.Notice = "This issue is still being reviewed"
	case models.StatusRevision:
		g.Notice = "This report needs revision"
	}
	return g
}

func SubmitLabel(s models.CaseStatus) string {
	switch s {
	case models.StatusPending:
		return LabelAwaitingReview
	case models.StatusRevision:
		return LabelSubmitRevision
	default:
		return LabelSubmitReport
	}
}

// SubmissionMessage is the acknowledgement a citizen sees after submitting.
func SubmissionMessage(s models.CaseStatus) string {
	if s == models.StatusRevision {
		return "Thank you for submitting your revision!"
	}
	return "Thank you for your report!"
}

// CheckClaim returns ErrAwaitingReview when c cannot be claimed.
func CheckClaim(c *models.Case) error {
	if !CanClaim(c.Status) {
		return fmt.Errorf("%w: %s", ErrAwaitingReview, c.ID)
	}
	return nil
}
