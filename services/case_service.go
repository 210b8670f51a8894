package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"blightwatch-be/lifecycle"
	"blightwatch-be/listing"
	"blightwatch-be/models"
	"blightwatch-be/repository"
	"blightwatch-be/session"
	"blightwatch-be/utils"
)

var ErrInvalidInput = errors.New("invalid input")

const maxIDAttempts = 3

type CaseService struct {
	cases     repository.CaseRepository
	reviews   repository.ReviewRepository
	reviewers repository.ReviewerRepository
	// applyReviewStatus makes SaveReview write the chosen status back to the
	// case. Off by default: reviews only record a comment.
	applyReviewStatus bool
	logger            *zap.Logger
	now               func() time.Time
	newCaseID         func() (string, error)
}

func NewCaseService(
	cases repository.CaseRepository,
	reviews repository.ReviewRepository,
	reviewers repository.ReviewerRepository,
	applyReviewStatus bool,
	logger *zap.Logger,
) *CaseService {
	return &CaseService{
		cases:             cases,
		reviews:           reviews,
		reviewers:         reviewers,
		applyReviewStatus: applyReviewStatus,
		logger:            logger,
		now:               time.Now,
		newCaseID:         utils.NewCaseID,
	}
}

func (s *CaseService) ListCases(ctx context.Context, q listing.Query) (listing.Page, error) {
	cases, err := s.cases.List(ctx)
	if err != nil {
		return listing.Page{}, fmt.Errorf("failed to list cases: %w", err)
	}
	return listing.Run(cases, q), nil
}

func (s *CaseService) GetCase(ctx context.Context, id string) (*models.Case, error) {
	return s.cases.Get(ctx, id)
}

// CaseDetail is everything the citizen detail view needs for one case.
type CaseDetail struct {
	Case                 *models.Case     `json:"case"`
	IssueNumber          string           `json:"issueNumber"`
	Badge                *lifecycle.Badge `json:"badge"`
	Gate                 lifecycle.Gate   `json:"gate"`
	SafetyTips           []string         `json:"safetyTips"`
	RevisionInstructions []string         `json:"revisionInstructions,omitempty"`
	Visited              bool             `json:"visited"`
}

func (s *CaseService) Detail(ctx context.Context, id string, sess *session.Session) (*CaseDetail, error) {
	c, err := s.cases.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &CaseDetail{
		Case:        c,
		IssueNumber: c.IssueNumber(),
		Badge:       lifecycle.BadgeFor(c.Status),
		Gate:        lifecycle.Evaluate(c.Status),
		SafetyTips:  c.Category.SafetyTips(),
		Visited:     sess != nil && sess.HasVisited(c.ID),
	}
	if c.Status == models.StatusRevision {
		d.RevisionInstructions = c.Category.RevisionInstructions()
	}
	return d, nil
}

// Markers lays out the filtered cases for the map, tinting the ones this
// session has already claimed.
func (s *CaseService) Markers(ctx context.Context, f listing.Filter, sess *session.Session) ([]lifecycle.Marker, error) {
	cases, err := s.cases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	filtered := listing.Apply(cases, f)
	markers := make([]lifecycle.Marker, 0, len(filtered))
	for _, c := range filtered {
		markers = append(markers, lifecycle.PlaceMarker(c, sess != nil && sess.HasVisited(c.ID)))
	}
	return markers, nil
}

// Claim opens a case for a citizen submission and records it in the
// session's visited set. Pending cases return lifecycle.ErrAwaitingReview.
func (s *CaseService) Claim(ctx context.Context, sess *session.Session, id string) (*models.Case, error) {
	c, err := s.cases.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.CheckClaim(c); err != nil {
		return nil, err
	}
	if sess.Visit(c.ID) {
		s.logger.Debug("case claimed", zap.String("case_id", c.ID), zap.String("session_id", sess.ID))
	}
	return c, nil
}

// Submission acknowledges a citizen report against an existing case.
type Submission struct {
	CaseID      string `json:"caseId"`
	IssueNumber string `json:"issueNumber"`
	Message     string `json:"message"`
	Revision    bool   `json:"revision"`
}

func (s *CaseService) Submit(ctx context.Context, sess *session.Session, id, notes string) (*Submission, error) {
	c, err := s.cases.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !lifecycle.CanSubmit(c.Status) {
		return nil, fmt.Errorf("%w: %s", lifecycle.ErrAwaitingReview, c.ID)
	}
	sess.Visit(c.ID)

	s.logger.Info("report submitted",
		zap.String("case_id", c.ID),
		zap.String("status", c.Status.String()),
		zap.Int("notes_len", len(strings.TrimSpace(notes))),
	)
	return &Submission{
		CaseID:      c.ID,
		IssueNumber: c.IssueNumber(),
		Message:     lifecycle.SubmissionMessage(c.Status),
		Revision:    c.Status == models.StatusRevision,
	}, nil
}

// NewCaseInput is a citizen's report of a new blight issue.
type NewCaseInput struct {
	Category     string
	Description  string
	Latitude     float64
	Longitude    float64
	Images       []string
	Area         string
	Organization string
}

func (in NewCaseInput) validate() (models.CaseCategory, error) {
	category, err := models.ParseCategory(in.Category)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if strings.TrimSpace(in.Description) == "" {
		return "", fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if category.RequiresImage() && len(in.Images) == 0 {
		return "", fmt.Errorf("%w: at least one image is required", ErrInvalidInput)
	}
	if in.Latitude < -90 || in.Latitude > 90 || in.Longitude < -180 || in.Longitude > 180 {
		return "", fmt.Errorf("%w: location is out of range", ErrInvalidInput)
	}
	return category, nil
}

// CreateCase files a new case. New cases always start pending.
func (s *CaseService) CreateCase(ctx context.Context, in NewCaseInput) (*models.Case, error) {
	category, err := in.validate()
	if err != nil {
		return nil, err
	}

	c := &models.Case{
		Category:     category,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Points:       category.DefaultPoints(),
		Description:  strings.TrimSpace(in.Description),
		Images:       append([]string{}, in.Images...),
		Status:       models.StatusPending,
		CreatedAt:    s.now().UTC(),
		Area:         strings.TrimSpace(in.Area),
		Organization: strings.TrimSpace(in.Organization),
	}

	for attempt := 1; ; attempt++ {
		id, err := s.newCaseID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate case id: %w", err)
		}
		c.ID = id
		err = s.cases.Create(ctx, c)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicate) || attempt == maxIDAttempts {
			return nil, fmt.Errorf("failed to create case: %w", err)
		}
		s.logger.Warn("case id collision, retrying", zap.String("case_id", id))
	}

	s.logger.Info("case created", zap.String("case_id", c.ID), zap.String("category", string(c.Category)))
	return c, nil
}

// Options lists the values the filter controls offer.
type Options struct {
	Statuses      []models.CaseStatus   `json:"statuses"`
	Categories    []models.CaseCategory `json:"categories"`
	Organizations []string              `json:"organizations"`
	Areas         []string              `json:"areas"`
}

func (s *CaseService) FilterOptions(ctx context.Context) (*Options, error) {
	cases, err := s.cases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return &Options{
		Statuses:      models.AllStatuses,
		Categories:    models.AllCategories,
		Organizations: listing.Organizations(cases),
		Areas:         listing.Areas(cases),
	}, nil
}

func (s *CaseService) Leaderboard(period models.Period) []listing.LeaderboardEntry {
	return listing.Rank(models.SampleStandings()[period], models.DemoReporter)
}
