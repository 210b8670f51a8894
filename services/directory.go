package services

import (
	"context"
	"fmt"

	"blightwatch-be/listing"
	"blightwatch-be/models"
	"blightwatch-be/repository"
)

// DirectoryService backs the admin users and organizations pages.
type DirectoryService struct {
	directory repository.DirectoryRepository
	cases     repository.CaseRepository
}

func NewDirectoryService(directory repository.DirectoryRepository, cases repository.CaseRepository) *DirectoryService {
	return &DirectoryService{directory: directory, cases: cases}
}

// StaffDirectory is a searched users list. The counts always cover the
// whole roster, not just the matches.
type StaffDirectory struct {
	Users        []*models.StaffMember        `json:"users"`
	Total        int                          `json:"total"`
	Departments  []listing.DepartmentCount    `json:"departments"`
	StatusCounts map[models.AccountStatus]int `json:"statusCounts"`
	Roles        []models.StaffRole           `json:"roles"`
}

func (s *DirectoryService) Users(ctx context.Context, query string) (*StaffDirectory, error) {
	staff, err := s.directory.Staff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return &StaffDirectory{
		Users:        listing.SearchStaff(staff, query),
		Total:        len(staff),
		Departments:  listing.CountByDepartment(staff, models.Departments),
		StatusCounts: listing.CountByAccountStatus(staff),
		Roles:        models.StaffRoles(),
	}, nil
}

// OrganizationEntry is a directory organization with its live case count.
type OrganizationEntry struct {
	*models.Organization
	CasesCount int `json:"casesCount"`
}

// Organizations searches the organization directory. Organizations named
// on cases but missing from the directory are listed with only a name.
func (s *DirectoryService) Organizations(ctx context.Context, query string) ([]OrganizationEntry, error) {
	orgs, err := s.directory.Organizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	cases, err := s.cases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	counts := make(map[string]int)
	for _, oc := range listing.CountByOrganization(cases) {
		counts[oc.Name] = oc.Count
	}
	known := make(map[string]bool, len(orgs))
	for _, o := range orgs {
		known[o.Name] = true
	}
	for _, oc := range listing.CountByOrganization(cases) {
		if oc.Name != "" && !known[oc.Name] {
			orgs = append(orgs, &models.Organization{Name: oc.Name, Status: models.Active})
		}
	}

	matched := listing.SearchOrganizations(orgs, query)
	out := make([]OrganizationEntry, len(matched))
	for i, o := range matched {
		out[i] = OrganizationEntry{Organization: o, CasesCount: counts[o.Name]}
	}
	return out, nil
}
