package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blightwatch-be/models"
)

// MemoryCaseStore holds cases in insertion order. Reads return copies.
type MemoryCaseStore struct {
	mu    sync.RWMutex
	order []string
	cases map[string]*models.Case
}

func NewMemoryCaseStore(seed []*models.Case) *MemoryCaseStore {
	s := &MemoryCaseStore{cases: make(map[string]*models.Case)}
	for _, c := range seed {
		s.order = append(s.order, c.ID)
		s.cases[c.ID] = c.Clone()
	}
	return s
}

func (s *MemoryCaseStore) List(_ context.Context) ([]*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Case, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.cases[id].Clone())
	}
	return out, nil
}

func (s *MemoryCaseStore) Get(_ context.Context, id string) (*models.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[id]
	if !ok {
		return nil, fmt.Errorf("case %s: %w", id, ErrNotFound)
	}
	return c.Clone(), nil
}

func (s *MemoryCaseStore) Create(_ context.Context, c *models.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cases[c.ID]; ok {
		return fmt.Errorf("case %s: %w", c.ID, ErrDuplicate)
	}
	s.order = append(s.order, c.ID)
	s.cases[c.ID] = c.Clone()
	return nil
}

func (s *MemoryCaseStore) UpdateStatus(_ context.Context, id string, status models.CaseStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cases[id]
	if !ok {
		return fmt.Errorf("case %s: %w", id, ErrNotFound)
	}
	c.Status = status
	return nil
}

type MemoryReviewStore struct {
	mu     sync.RWMutex
	byCase map[string][]*models.ReviewComment
}

func NewMemoryReviewStore() *MemoryReviewStore {
	return &MemoryReviewStore{byCase: make(map[string][]*models.ReviewComment)}
}

// Add prepends the comment so the newest one is listed first.
func (s *MemoryReviewStore) Add(_ context.Context, comment *models.ReviewComment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *comment
	s.byCase[comment.CaseID] = append([]*models.ReviewComment{&cp}, s.byCase[comment.CaseID]...)
	return nil
}

func (s *MemoryReviewStore) ListByCase(_ context.Context, caseID string) ([]*models.ReviewComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.byCase[caseID]
	out := make([]*models.ReviewComment, len(stored))
	for i, c := range stored {
		cp := *c
		out[i] = &cp
	}
	return out, nil
}

// MemoryReviewerStore serves the static reviewer roster.
type MemoryReviewerStore struct {
	reviewers []*models.Reviewer
}

func NewMemoryReviewerStore(reviewers []*models.Reviewer) *MemoryReviewerStore {
	return &MemoryReviewerStore{reviewers: reviewers}
}

func (s *MemoryReviewerStore) List(_ context.Context) ([]*models.Reviewer, error) {
	out := make([]*models.Reviewer, len(s.reviewers))
	for i, r := range s.reviewers {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (s *MemoryReviewerStore) Get(_ context.Context, id string) (*models.Reviewer, error) {
	for _, r := range s.reviewers {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("reviewer %s: %w", id, ErrNotFound)
}

// MemoryDirectory serves static staff and organization rosters.
type MemoryDirectory struct {
	staff []*models.StaffMember
	orgs  []*models.Organization
}

func NewMemoryDirectory(staff []*models.StaffMember, orgs []*models.Organization) *MemoryDirectory {
	return &MemoryDirectory{staff: staff, orgs: orgs}
}

func (d *MemoryDirectory) Staff(_ context.Context) ([]*models.StaffMember, error) {
	out := make([]*models.StaffMember, len(d.staff))
	for i, m := range d.staff {
		cp := *m
		out[i] = &cp
	}
	return out, nil
}

func (d *MemoryDirectory) Organizations(_ context.Context) ([]*models.Organization, error) {
	out := make([]*models.Organization, len(d.orgs))
	for i, o := range d.orgs {
		cp := *o
		out[i] = &cp
	}
	return out, nil
}

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[emailKey(email)]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id.Hex(), ErrNotFound)
}

func (s *MemoryUserStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := emailKey(u.Email)
	if _, ok := s.users[key]; ok {
		return fmt.Errorf("user %s: %w", u.Email, ErrDuplicate)
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	cp := *u
	s.users[key] = &cp
	return nil
}
