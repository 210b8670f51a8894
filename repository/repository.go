// Package repository stores cases, review comments, reviewers and admin
// users. Memory implementations are seeded from the bundled fixtures; Mongo
// implementations back a deployed instance.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blightwatch-be/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

type CaseRepository interface {
	List(ctx context.Context) ([]*models.Case, error)
	Get(ctx context.Context, id string) (*models.Case, error)
	Create(ctx context.Context, c *models.Case) error
	UpdateStatus(ctx context.Context, id string, status models.CaseStatus) error
}

// ReviewRepository lists comments newest first.
type ReviewRepository interface {
	Add(ctx context.Context, comment *models.ReviewComment) error
	ListByCase(ctx context.Context, caseID string) ([]*models.ReviewComment, error)
}

type ReviewerRepository interface {
	List(ctx context.Context) ([]*models.Reviewer, error)
	Get(ctx context.Context, id string) (*models.Reviewer, error)
}

// DirectoryRepository serves the staff and partner organization rosters.
type DirectoryRepository interface {
	Staff(ctx context.Context) ([]*models.StaffMember, error)
	Organizations(ctx context.Context) ([]*models.Organization, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}
