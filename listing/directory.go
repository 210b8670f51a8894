package listing

import (
	"strings"

	"blightwatch-be/models"
)

func containsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// SearchStaff matches query against name, email, role and department.
func SearchStaff(staff []*models.StaffMember, query string) []*models.StaffMember {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*models.StaffMember, 0, len(staff))
	for _, m := range staff {
		if q == "" || containsFold(q, m.Name, m.Email, m.Role, m.Department) {
			out = append(out, m)
		}
	}
	return out
}

type DepartmentCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountByDepartment counts staff for each listed department, in list order.
// Departments with no staff are kept with a zero count.
func CountByDepartment(staff []*models.StaffMember, departments []string) []DepartmentCount {
	out := make([]DepartmentCount, len(departments))
	for i, d := range departments {
		out[i].Name = d
		for _, m := range staff {
			if m.Department == d {
				out[i].Count++
			}
		}
	}
	return out
}

func CountByAccountStatus(staff []*models.StaffMember) map[models.AccountStatus]int {
	counts := map[models.AccountStatus]int{models.Active: 0, models.Inactive: 0}
	for _, m := range staff {
		counts[m.Status]++
	}
	return counts
}

// SearchOrganizations matches query against name, type, address, contact
// person and contact email.
func SearchOrganizations(orgs []*models.Organization, query string) []*models.Organization {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*models.Organization, 0, len(orgs))
	for _, o := range orgs {
		if q == "" || containsFold(q, o.Name, o.Type, o.Address, o.ContactPerson, o.Email) {
			out = append(out, o)
		}
	}
	return out
}

// FilterSubmissions keeps submissions with the given status; "all" or empty
// keeps everything.
func FilterSubmissions(subs []*models.Submission, status string) []*models.Submission {
	want := models.CaseStatus(strings.ToLower(strings.TrimSpace(status)))
	out := make([]*models.Submission, 0, len(subs))
	for _, s := range subs {
		if !active(status) || s.Status == want {
			out = append(out, s)
		}
	}
	return out
}
