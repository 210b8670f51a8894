package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blightwatch-be/lifecycle"
	"blightwatch-be/listing"
	"blightwatch-be/models"
	"blightwatch-be/repository"
	"blightwatch-be/session"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, applyReviewStatus bool) (*CaseService, *repository.MemoryCaseStore) {
	t.Helper()
	cases := repository.NewMemoryCaseStore(models.SampleCases())
	svc := NewCaseService(
		cases,
		repository.NewMemoryReviewStore(),
		repository.NewMemoryReviewerStore(models.SampleReviewers()),
		applyReviewStatus,
		zap.NewNop(),
	)
	svc.now = func() time.Time { return fixedNow }
	return svc, cases
}

func TestListCasesPendingAcrossOrganizations(t *testing.T) {
	svc, _ := newTestService(t, false)

	q := listing.NewQuery().WithStatus("pending").WithOrganization(listing.All)
	page, err := svc.ListCases(context.Background(), q)
	require.NoError(t, err)

	require.Len(t, page.Cases, 1)
	assert.Equal(t, "M-M-23456790", page.Cases[0].ID)
	assert.Equal(t, 1, page.Total)
}

func TestListCasesNewestFirst(t *testing.T) {
	svc, _ := newTestService(t, false)

	page, err := svc.ListCases(context.Background(), listing.NewQuery())
	require.NoError(t, err)
	require.Len(t, page.Cases, 5)
	assert.Equal(t, "M-M-23456793", page.Cases[0].ID)
	assert.Equal(t, "M-M-23456789", page.Cases[4].ID)
}

func TestDetail(t *testing.T) {
	svc, _ := newTestService(t, false)
	sess := session.New()
	sess.Visit("M-M-23456791")

	d, err := svc.Detail(context.Background(), "M-M-23456791", sess)
	require.NoError(t, err)
	assert.Equal(t, "23456791", d.IssueNumber)
	require.NotNil(t, d.Badge)
	assert.Equal(t, "Needs Revision", d.Badge.Label)
	assert.True(t, d.Gate.Claimable)
	assert.Equal(t, lifecycle.LabelSubmitRevision, d.Gate.SubmitLabel)
	assert.NotEmpty(t, d.RevisionInstructions)
	assert.NotEmpty(t, d.SafetyTips)
	assert.True(t, d.Visited)

	d, err = svc.Detail(context.Background(), "M-M-23456789", nil)
	require.NoError(t, err)
	assert.Empty(t, d.RevisionInstructions)
	assert.False(t, d.Visited)

	_, err = svc.Detail(context.Background(), "M-M-00000000", nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClaimPendingCaseIsRejected(t *testing.T) {
	svc, _ := newTestService(t, false)
	sess := session.New()

	_, err := svc.Claim(context.Background(), sess, "M-M-23456790")
	assert.ErrorIs(t, err, lifecycle.ErrAwaitingReview)
	assert.False(t, sess.HasVisited("M-M-23456790"))

	d, err := svc.Detail(context.Background(), "M-M-23456790", sess)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.LabelAwaitingReview, d.Gate.SubmitLabel)
}

func TestClaimRecordsVisit(t *testing.T) {
	svc, _ := newTestService(t, false)
	sess := session.New()

	c, err := svc.Claim(context.Background(), sess, "M-M-23456789")
	require.NoError(t, err)
	assert.Equal(t, "M-M-23456789", c.ID)
	assert.True(t, sess.HasVisited("M-M-23456789"))

	markers, err := svc.Markers(context.Background(), listing.Filter{}, sess)
	require.NoError(t, err)
	require.Len(t, markers, 5)
	for _, m := range markers {
		assert.Equal(t, m.CaseID == "M-M-23456789", m.Visited, m.CaseID)
	}
}

func TestSubmit(t *testing.T) {
	svc, _ := newTestService(t, false)
	sess := session.New()

	sub, err := svc.Submit(context.Background(), sess, "M-M-23456791", "cleared the debris")
	require.NoError(t, err)
	assert.True(t, sub.Revision)
	assert.Equal(t, "Thank you for submitting your revision!", sub.Message)
	assert.True(t, sess.HasVisited("M-M-23456791"))

	sub, err = svc.Submit(context.Background(), sess, "M-M-23456792", "")
	require.NoError(t, err)
	assert.False(t, sub.Revision)
	assert.Equal(t, "Thank you for your report!", sub.Message)

	_, err = svc.Submit(context.Background(), sess, "M-M-23456790", "")
	assert.ErrorIs(t, err, lifecycle.ErrAwaitingReview)
}

func TestCreateCase(t *testing.T) {
	svc, cases := newTestService(t, false)
	svc.newCaseID = func() (string, error) { return "M-M-11111111", nil }

	c, err := svc.CreateCase(context.Background(), NewCaseInput{
		Category:     "Graffiti",
		Description:  "  tagged bus shelter  ",
		Latitude:     33.51,
		Longitude:    -86.81,
		Images:       []string{"/uploads/1.jpg"},
		Area:         "Downtown",
		Organization: "City Beautification",
	})
	require.NoError(t, err)
	assert.Equal(t, "M-M-11111111", c.ID)
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, models.CategoryGraffiti.DefaultPoints(), c.Points)
	assert.Equal(t, "tagged bus shelter", c.Description)
	assert.Equal(t, fixedNow, c.CreatedAt)

	stored, err := cases.Get(context.Background(), "M-M-11111111")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestCreateCaseValidation(t *testing.T) {
	svc, _ := newTestService(t, false)

	tests := []struct {
		name string
		in   NewCaseInput
	}{
		{"unknown category", NewCaseInput{Category: "Noise", Description: "loud", Images: []string{"a"}}},
		{"missing description", NewCaseInput{Category: "Pothole", Images: []string{"a"}}},
		{"missing image", NewCaseInput{Category: "Pothole", Description: "deep"}},
		{"bad latitude", NewCaseInput{Category: "Pothole", Description: "deep", Images: []string{"a"}, Latitude: 91}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCase(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := svc.CreateCase(context.Background(), NewCaseInput{Category: "Other", Description: "something odd"})
	assert.NoError(t, err)
}

func TestCreateCaseRetriesOnCollision(t *testing.T) {
	svc, _ := newTestService(t, false)
	ids := []string{"M-M-23456789", "M-M-22222222"}
	svc.newCaseID = func() (string, error) {
		id := ids[0]
		ids = ids[1:]
		return id, nil
	}

	c, err := svc.CreateCase(context.Background(), NewCaseInput{Category: "Pothole", Description: "deep", Images: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "M-M-22222222", c.ID)
}

func TestCreateCaseGivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, _ := newTestService(t, false)
	svc.newCaseID = func() (string, error) { return "M-M-23456789", nil }

	_, err := svc.CreateCase(context.Background(), NewCaseInput{Category: "Pothole", Description: "deep", Images: []string{"a"}})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	svc.newCaseID = func() (string, error) { return "", errors.New("entropy exhausted") }
	_, err = svc.CreateCase(context.Background(), NewCaseInput{Category: "Pothole", Description: "deep", Images: []string{"a"}})
	assert.Error(t, err)
}

func TestSaveReviewRequiresReviewerAndComment(t *testing.T) {
	svc, _ := newTestService(t, true)

	_, err := svc.SaveReview(context.Background(), lifecycle.ReviewRequest{
		CaseID: "M-M-23456790", Status: models.StatusApproved, Comment: "looks good",
	})
	assert.ErrorIs(t, err, lifecycle.ErrReviewerRequired)

	_, err = svc.SaveReview(context.Background(), lifecycle.ReviewRequest{
		CaseID: "M-M-23456790", Status: models.StatusApproved, ReviewerID: "rev-001", Comment: "   ",
	})
	assert.ErrorIs(t, err, lifecycle.ErrCommentRequired)

	_, err = svc.SaveReview(context.Background(), lifecycle.ReviewRequest{
		CaseID: "M-M-23456790", Status: models.StatusApproved, ReviewerID: "rev-999", Comment: "ok",
	})
	assert.ErrorIs(t, err, lifecycle.ErrInvalidReview)

	_, err = svc.SaveReview(context.Background(), lifecycle.ReviewRequest{
		CaseID: "M-M-00000000", Status: models.StatusApproved, ReviewerID: "rev-001", Comment: "ok",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	reviews, err := svc.Reviews(context.Background(), "M-M-23456790")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestSaveReviewKeepsStatusByDefault(t *testing.T) {
	svc, cases := newTestService(t, false)

	out, err := svc.SaveReview(context.Background(), lifecycle.ReviewRequest{
		CaseID: "M-M-23456790", Status: models.StatusApproved, ReviewerID: "rev-002", Comment: "verified on site",
	})
	require.NoError(t, err)
	assert.False(t, out.StatusApplied)
	assert.Equal(t, "Case M-M-23456790 has been marked as approved", out.Message)
	assert.Equal(t, models.StatusApproved, out.Comment.Status)
	assert.Equal(t, fixedNow, out.Comment.CreatedAt)

	stored, err := cases.Get(context.Background(), "M-M-23456790")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestSaveReviewAppliesStatusWhenEnabled(t *testing.T) {
	svc, cases := newTestService(t, true)
	ctx := context.Background()

	out, err := svc.SaveReview(ctx, lifecycle.ReviewRequest{
		CaseID: "M-M-23456790", Status: models.StatusRevision, ReviewerID: "rev-002", Comment: "need a clearer photo",
	})
	require.NoError(t, err)
	assert.True(t, out.StatusApplied)
	assert.Equal(t, models.StatusRevision, out.Case.Status)

	stored, err := cases.Get(ctx, "M-M-23456790")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRevision, stored.Status)

	out, err = svc.SaveReview(ctx, lifecycle.ReviewRequest{
		CaseID: "M-M-23456790", Status: models.StatusRevision, ReviewerID: "rev-001", Comment: "still waiting",
	})
	require.NoError(t, err)
	assert.False(t, out.StatusApplied)
}

func TestReviewsNewestFirst(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := svc.SaveReview(ctx, lifecycle.ReviewRequest{
			CaseID:     "M-M-23456791",
			Status:     models.StatusRevision,
			ReviewerID: "rev-001",
			Comment:    fmt.Sprintf("note %d", i),
		})
		require.NoError(t, err)
	}

	reviews, err := svc.Reviews(ctx, "M-M-23456791")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "note 3", reviews[0].Body)
	assert.Equal(t, "note 1", reviews[2].Body)
}

func TestSummaryAndFilterOptions(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	sum, err := svc.Summary(ctx, listing.Filter{Area: "Downtown"})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 2, sum.ByStatus[models.StatusApproved])

	opts, err := svc.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Len(t, opts.Organizations, 6)
	assert.Equal(t, listing.All, opts.Organizations[0])
	assert.Contains(t, opts.Areas, "Southside")
}

func TestLeaderboard(t *testing.T) {
	svc, _ := newTestService(t, false)

	entries := svc.Leaderboard(models.Weekly)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Jane Smith", entries[0].Name)
	assert.Equal(t, models.DemoReporter, entries[1].Name)
	assert.True(t, entries[1].IsCurrentUser)
}
