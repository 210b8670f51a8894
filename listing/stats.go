package listing

import (
	"sort"

	"blightwatch-be/models"
)

const topOrganizations = 5

type OrganizationCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary backs the admin dashboard and report views.
type Summary struct {
	Total            int                       `json:"total"`
	ByStatus         map[models.CaseStatus]int `json:"byStatus"`
	TopOrganizations []OrganizationCount       `json:"topOrganizations"`
}

// Summarize counts cases per status (every status is present, possibly 0)
// and ranks the busiest organizations, ties broken by name.
func Summarize(cases []*models.Case) Summary {
	s := Summary{
		Total:    len(cases),
		ByStatus: make(map[models.CaseStatus]int, len(models.AllStatuses)),
	}
	for _, st := range models.AllStatuses {
		s.ByStatus[st] = 0
	}

	counts := CountByOrganization(cases)
	for _, c := range cases {
		if c.Status.Valid() {
			s.ByStatus[c.Status]++
		}
	}

	if len(counts) > topOrganizations {
		counts = counts[:topOrganizations]
	}
	s.TopOrganizations = counts
	return s
}

// CountByOrganization returns every organization with its case count,
// busiest first.
func CountByOrganization(cases []*models.Case) []OrganizationCount {
	byOrg := make(map[string]int)
	for _, c := range cases {
		byOrg[c.Organization]++
	}
	out := make([]OrganizationCount, 0, len(byOrg))
	for name, n := range byOrg {
		out = append(out, OrganizationCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
