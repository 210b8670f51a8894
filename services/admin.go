package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blightwatch-be/models"
	"blightwatch-be/repository"
)

// EnsureAdmin creates the bootstrap administrator unless an account with
// that email already exists. It reports whether an account was created.
func EnsureAdmin(ctx context.Context, users repository.UserRepository, email, password string) (*models.User, bool, error) {
	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up admin: %w", err)
	}

	admin := &models.User{
		FirstName:    "Site",
		LastName:     "Administrator",
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Password:     password,
		Organization: "City of Memphis",
		Role:         models.RoleAdmin,
	}
	if err := admin.HashPassword(); err != nil {
		return nil, false, fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := users.Create(ctx, admin); err != nil {
		return nil, false, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, true, nil
}
