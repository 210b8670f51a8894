package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"blightwatch-be/lifecycle"
	"blightwatch-be/listing"
	"blightwatch-be/models"
	"blightwatch-be/repository"
)

// ReviewOutcome reports what a saved review changed. StatusApplied is false
// when the case keeps its previous status and only the comment was stored.
type ReviewOutcome struct {
	Comment       *models.ReviewComment `json:"comment"`
	Case          *models.Case          `json:"case"`
	StatusApplied bool                  `json:"statusApplied"`
	Message       string                `json:"message"`
}

func (s *CaseService) SaveReview(ctx context.Context, req lifecycle.ReviewRequest) (*ReviewOutcome, error) {
	req.Comment = strings.TrimSpace(req.Comment)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.cases.Get(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}
	if _, err := s.reviewers.Get(ctx, req.ReviewerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown reviewer %s", lifecycle.ErrInvalidReview, req.ReviewerID)
		}
		return nil, err
	}
	if err := lifecycle.Transition(c.Status, req.Status); err != nil {
		return nil, fmt.Errorf("%w: %w", lifecycle.ErrInvalidReview, err)
	}

	comment := &models.ReviewComment{
		ID:         uuid.NewString(),
		CaseID:     c.ID,
		ReviewerID: req.ReviewerID,
		Status:     req.Status,
		Body:       req.Comment,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.reviews.Add(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	applied := false
	if s.applyReviewStatus && c.Status != req.Status {
		if err := s.cases.UpdateStatus(ctx, c.ID, req.Status); err != nil {
			return nil, fmt.Errorf("failed to update case status: %w", err)
		}
		c.Status = req.Status
		applied = true
	}

	s.logger.Info("review saved",
		zap.String("case_id", c.ID),
		zap.String("reviewer_id", req.ReviewerID),
		zap.String("requested_status", req.Status.String()),
		zap.Bool("status_applied", applied),
	)

	return &ReviewOutcome{
		Comment:       comment,
		Case:          c,
		StatusApplied: applied,
		Message:       lifecycle.ConfirmationMessage(c.ID, req.Status),
	}, nil
}

func (s *CaseService) Reviews(ctx context.Context, caseID string) ([]*models.ReviewComment, error) {
	if _, err := s.cases.Get(ctx, caseID); err != nil {
		return nil, err
	}
	return s.reviews.ListByCase(ctx, caseID)
}

func (s *CaseService) Reviewers(ctx context.Context) ([]*models.Reviewer, error) {
	return s.reviewers.List(ctx)
}

// Summary counts the cases that pass f.
func (s *CaseService) Summary(ctx context.Context, f listing.Filter) (listing.Summary, error) {
	cases, err := s.cases.List(ctx)
	if err != nil {
		return listing.Summary{}, fmt.Errorf("failed to list cases: %w", err)
	}
	return listing.Summarize(listing.Apply(cases, f)), nil
}
