package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"blightwatch-be/models"
)

var (
	ErrInvalidReview    = errors.New("invalid review")
	ErrReviewerRequired = fmt.Errorf("%w: reviewer is required", ErrInvalidReview)
	ErrCommentRequired  = fmt.Errorf("%w: comment is required", ErrInvalidReview)
)

// ReviewRequest is an admin's decision on a case.
type ReviewRequest struct {
	CaseID     string
	Status     models.CaseStatus
	ReviewerID string
	Comment    string
}

// CanSaveReview mirrors the review form: saving stays disabled until both a
// reviewer and a comment are present.
func CanSaveReview(reviewerID, comment string) bool {
	return strings.TrimSpace(reviewerID) != "" && strings.TrimSpace(comment) != ""
}

func (r ReviewRequest) Validate() error {
	if strings.TrimSpace(r.ReviewerID) == "" {
		return ErrReviewerRequired
	}
	if strings.TrimSpace(r.Comment) == "" {
		return ErrCommentRequired
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidReview, models.ErrInvalidStatus)
	}
	return nil
}

// Transition checks a status change. Every valid status is reachable from
// every other; only the target is checked.
func Transition(from, to models.CaseStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: cannot move %s to %q", models.ErrInvalidStatus, from, to)
	}
	return nil
}

// ConfirmationMessage is shown once a review is saved.
func ConfirmationMessage(caseID string, s models.CaseStatus) string {
	return fmt.Sprintf("Case %s has been marked as %s", caseID, s)
}
