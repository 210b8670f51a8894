// Package listing filters, sorts, pages and summarises case lists.
package listing

import (
	"sort"
	"strings"

	"blightwatch-be/models"
)

// All disables a filter dimension, the same as leaving it empty.
const All = "all"

// Filter selects cases by status, organization, area and free-text query.
// Active dimensions combine with logical AND.
type Filter struct {
	Status       string `form:"status" json:"status,omitempty"`
	Organization string `form:"organization" json:"organization,omitempty"`
	Area         string `form:"area" json:"area,omitempty"`
	Query        string `form:"search" json:"search,omitempty"`
}

// Predicate reports whether a case passes one filter dimension.
type Predicate func(*models.Case) bool

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

func ByStatus(status string) Predicate {
	if !active(status) {
		return nil
	}
	want := models.CaseStatus(strings.ToLower(strings.TrimSpace(status)))
	return func(c *models.Case) bool { return c.Status == want }
}

func ByOrganization(org string) Predicate {
	if !active(org) {
		return nil
	}
	return func(c *models.Case) bool { return c.Organization == org }
}

func ByArea(area string) Predicate {
	if !active(area) {
		return nil
	}
	return func(c *models.Case) bool { return c.Area == area }
}

// ByQuery matches the query case-insensitively as a substring of the case ID,
// category, area or organization.
func ByQuery(query string) Predicate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(c *models.Case) bool {
		for _, field := range []string{c.ID, string(c.Category), c.Area, c.Organization} {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
		return false
	}
}

// Predicates returns the active dimensions of f. Inactive ones are omitted.
func (f Filter) Predicates() []Predicate {
	var out []Predicate
	for _, p := range []Predicate{
		ByStatus(f.Status),
		ByOrganization(f.Organization),
		ByArea(f.Area),
		ByQuery(f.Query),
	} {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (f Filter) Matches(c *models.Case) bool {
	for _, p := range f.Predicates() {
		if !p(c) {
			return false
		}
	}
	return true
}

// Select keeps the cases p accepts, preserving order. A nil p keeps all.
func Select(cases []*models.Case, p Predicate) []*models.Case {
	out := make([]*models.Case, 0, len(cases))
	for _, c := range cases {
		if p == nil || p(c) {
			out = append(out, c)
		}
	}
	return out
}

// Apply returns the cases matching every active dimension of f.
func Apply(cases []*models.Case, f Filter) []*models.Case {
	return Select(cases, f.Matches)
}

// SortNewestFirst orders by creation time descending, then by ID.
func SortNewestFirst(cases []*models.Case) {
	sort.SliceStable(cases, func(i, j int) bool {
		if !cases[i].CreatedAt.Equal(cases[j].CreatedAt) {
			return cases[i].CreatedAt.After(cases[j].CreatedAt)
		}
		return cases[i].ID > cases[j].ID
	})
}

// Organizations returns "all" followed by each distinct organization in
// first-seen order.
func Organizations(cases []*models.Case) []string {
	return distinct(cases, func(c *models.Case) string { return c.Organization })
}

func Areas(cases []*models.Case) []string {
	return distinct(cases, func(c *models.Case) string { return c.Area })
}

func distinct(cases []*models.Case, field func(*models.Case) string) []string {
	seen := make(map[string]bool)
	out := []string{All}
	for _, c := range cases {
		v := field(c)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
